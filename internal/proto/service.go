package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const ServiceName = "restaurant.v1.Console"

const (
	ConsoleService_Ping_FullMethodName               = "/restaurant.v1.Console/Ping"
	ConsoleService_Login_FullMethodName              = "/restaurant.v1.Console/Login"
	ConsoleService_RefreshToken_FullMethodName       = "/restaurant.v1.Console/RefreshToken"
	ConsoleService_Logout_FullMethodName             = "/restaurant.v1.Console/Logout"
	ConsoleService_EnsureProfile_FullMethodName      = "/restaurant.v1.Console/EnsureProfile"
	ConsoleService_GetProfile_FullMethodName         = "/restaurant.v1.Console/GetProfile"
	ConsoleService_MergeProfile_FullMethodName       = "/restaurant.v1.Console/MergeProfile"
	ConsoleService_AppendGalleryItem_FullMethodName  = "/restaurant.v1.Console/AppendGalleryItem"
	ConsoleService_DeleteGalleryItem_FullMethodName  = "/restaurant.v1.Console/DeleteGalleryItem"
	ConsoleService_AppendPasswordItem_FullMethodName = "/restaurant.v1.Console/AppendPasswordItem"
	ConsoleService_UpdatePasswordItem_FullMethodName = "/restaurant.v1.Console/UpdatePasswordItem"
	ConsoleService_DeletePasswordItem_FullMethodName = "/restaurant.v1.Console/DeletePasswordItem"
	ConsoleService_RequestUpload_FullMethodName      = "/restaurant.v1.Console/RequestUpload"
	ConsoleService_FinalizeUpload_FullMethodName     = "/restaurant.v1.Console/FinalizeUpload"
	ConsoleService_SubscribeProfile_FullMethodName   = "/restaurant.v1.Console/SubscribeProfile"
	ConsoleService_SubscribeGallery_FullMethodName   = "/restaurant.v1.Console/SubscribeGallery"
	ConsoleService_SubscribePasswords_FullMethodName = "/restaurant.v1.Console/SubscribePasswords"
)

// ConsoleServiceServer is the server API for the console service.
type ConsoleServiceServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error)
	Logout(context.Context, *LogoutRequest) (*emptypb.Empty, error)
	EnsureProfile(context.Context, *TenantRequest) (*EnsureProfileResponse, error)
	GetProfile(context.Context, *TenantRequest) (*Profile, error)
	MergeProfile(context.Context, *MergeProfileRequest) (*emptypb.Empty, error)
	AppendGalleryItem(context.Context, *AppendGalleryItemRequest) (*IDResponse, error)
	DeleteGalleryItem(context.Context, *DeleteItemRequest) (*emptypb.Empty, error)
	AppendPasswordItem(context.Context, *AppendPasswordItemRequest) (*IDResponse, error)
	UpdatePasswordItem(context.Context, *UpdatePasswordItemRequest) (*emptypb.Empty, error)
	DeletePasswordItem(context.Context, *DeleteItemRequest) (*emptypb.Empty, error)
	RequestUpload(context.Context, *RequestUploadRequest) (*RequestUploadResponse, error)
	FinalizeUpload(context.Context, *FinalizeUploadRequest) (*FinalizeUploadResponse, error)
	SubscribeProfile(*TenantRequest, grpc.ServerStreamingServer[Profile]) error
	SubscribeGallery(*TenantRequest, grpc.ServerStreamingServer[GalleryList]) error
	SubscribePasswords(*TenantRequest, grpc.ServerStreamingServer[PasswordList]) error
}

// UnimplementedConsoleServiceServer answers every method with Unimplemented.
// Embed it to stay forward compatible.
type UnimplementedConsoleServiceServer struct{}

func (UnimplementedConsoleServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedConsoleServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedConsoleServiceServer) RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RefreshToken not implemented")
}
func (UnimplementedConsoleServiceServer) Logout(context.Context, *LogoutRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Logout not implemented")
}
func (UnimplementedConsoleServiceServer) EnsureProfile(context.Context, *TenantRequest) (*EnsureProfileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EnsureProfile not implemented")
}
func (UnimplementedConsoleServiceServer) GetProfile(context.Context, *TenantRequest) (*Profile, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProfile not implemented")
}
func (UnimplementedConsoleServiceServer) MergeProfile(context.Context, *MergeProfileRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method MergeProfile not implemented")
}
func (UnimplementedConsoleServiceServer) AppendGalleryItem(context.Context, *AppendGalleryItemRequest) (*IDResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AppendGalleryItem not implemented")
}
func (UnimplementedConsoleServiceServer) DeleteGalleryItem(context.Context, *DeleteItemRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteGalleryItem not implemented")
}
func (UnimplementedConsoleServiceServer) AppendPasswordItem(context.Context, *AppendPasswordItemRequest) (*IDResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AppendPasswordItem not implemented")
}
func (UnimplementedConsoleServiceServer) UpdatePasswordItem(context.Context, *UpdatePasswordItemRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdatePasswordItem not implemented")
}
func (UnimplementedConsoleServiceServer) DeletePasswordItem(context.Context, *DeleteItemRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeletePasswordItem not implemented")
}
func (UnimplementedConsoleServiceServer) RequestUpload(context.Context, *RequestUploadRequest) (*RequestUploadResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RequestUpload not implemented")
}
func (UnimplementedConsoleServiceServer) FinalizeUpload(context.Context, *FinalizeUploadRequest) (*FinalizeUploadResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method FinalizeUpload not implemented")
}
func (UnimplementedConsoleServiceServer) SubscribeProfile(*TenantRequest, grpc.ServerStreamingServer[Profile]) error {
	return status.Error(codes.Unimplemented, "method SubscribeProfile not implemented")
}
func (UnimplementedConsoleServiceServer) SubscribeGallery(*TenantRequest, grpc.ServerStreamingServer[GalleryList]) error {
	return status.Error(codes.Unimplemented, "method SubscribeGallery not implemented")
}
func (UnimplementedConsoleServiceServer) SubscribePasswords(*TenantRequest, grpc.ServerStreamingServer[PasswordList]) error {
	return status.Error(codes.Unimplemented, "method SubscribePasswords not implemented")
}

// RegisterConsoleServiceServer registers srv on s.
func RegisterConsoleServiceServer(s grpc.ServiceRegistrar, srv ConsoleServiceServer) {
	s.RegisterService(&ConsoleService_ServiceDesc, srv)
}

// unary adapts a typed server method to a grpc.MethodHandler, running the
// unary interceptor chain when one is installed.
func unary[Req, Resp any](fullMethod string, call func(ConsoleServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ConsoleServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ConsoleServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// serverStream adapts a typed server-streaming method to a grpc.StreamHandler.
func serverStream[Resp any](call func(ConsoleServiceServer, *TenantRequest, grpc.ServerStreamingServer[Resp]) error) grpc.StreamHandler {
	return func(srv any, stream grpc.ServerStream) error {
		in := new(TenantRequest)
		if err := stream.RecvMsg(in); err != nil {
			return err
		}
		return call(srv.(ConsoleServiceServer), in, &grpc.GenericServerStream[TenantRequest, Resp]{ServerStream: stream})
	}
}

// ConsoleService_ServiceDesc is the grpc.ServiceDesc for the console service.
var ConsoleService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ConsoleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: unary(ConsoleService_Ping_FullMethodName, ConsoleServiceServer.Ping)},
		{MethodName: "Login", Handler: unary(ConsoleService_Login_FullMethodName, ConsoleServiceServer.Login)},
		{MethodName: "RefreshToken", Handler: unary(ConsoleService_RefreshToken_FullMethodName, ConsoleServiceServer.RefreshToken)},
		{MethodName: "Logout", Handler: unary(ConsoleService_Logout_FullMethodName, ConsoleServiceServer.Logout)},
		{MethodName: "EnsureProfile", Handler: unary(ConsoleService_EnsureProfile_FullMethodName, ConsoleServiceServer.EnsureProfile)},
		{MethodName: "GetProfile", Handler: unary(ConsoleService_GetProfile_FullMethodName, ConsoleServiceServer.GetProfile)},
		{MethodName: "MergeProfile", Handler: unary(ConsoleService_MergeProfile_FullMethodName, ConsoleServiceServer.MergeProfile)},
		{MethodName: "AppendGalleryItem", Handler: unary(ConsoleService_AppendGalleryItem_FullMethodName, ConsoleServiceServer.AppendGalleryItem)},
		{MethodName: "DeleteGalleryItem", Handler: unary(ConsoleService_DeleteGalleryItem_FullMethodName, ConsoleServiceServer.DeleteGalleryItem)},
		{MethodName: "AppendPasswordItem", Handler: unary(ConsoleService_AppendPasswordItem_FullMethodName, ConsoleServiceServer.AppendPasswordItem)},
		{MethodName: "UpdatePasswordItem", Handler: unary(ConsoleService_UpdatePasswordItem_FullMethodName, ConsoleServiceServer.UpdatePasswordItem)},
		{MethodName: "DeletePasswordItem", Handler: unary(ConsoleService_DeletePasswordItem_FullMethodName, ConsoleServiceServer.DeletePasswordItem)},
		{MethodName: "RequestUpload", Handler: unary(ConsoleService_RequestUpload_FullMethodName, ConsoleServiceServer.RequestUpload)},
		{MethodName: "FinalizeUpload", Handler: unary(ConsoleService_FinalizeUpload_FullMethodName, ConsoleServiceServer.FinalizeUpload)},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "SubscribeProfile", Handler: serverStream(ConsoleServiceServer.SubscribeProfile), ServerStreams: true},
		{StreamName: "SubscribeGallery", Handler: serverStream(ConsoleServiceServer.SubscribeGallery), ServerStreams: true},
		{StreamName: "SubscribePasswords", Handler: serverStream(ConsoleServiceServer.SubscribePasswords), ServerStreams: true},
	},
	Metadata: "restaurant/v1/console",
}

// ConsoleServiceClient is the client API for the console service.
type ConsoleServiceClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error)
	Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	EnsureProfile(ctx context.Context, in *TenantRequest, opts ...grpc.CallOption) (*EnsureProfileResponse, error)
	GetProfile(ctx context.Context, in *TenantRequest, opts ...grpc.CallOption) (*Profile, error)
	MergeProfile(ctx context.Context, in *MergeProfileRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	AppendGalleryItem(ctx context.Context, in *AppendGalleryItemRequest, opts ...grpc.CallOption) (*IDResponse, error)
	DeleteGalleryItem(ctx context.Context, in *DeleteItemRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	AppendPasswordItem(ctx context.Context, in *AppendPasswordItemRequest, opts ...grpc.CallOption) (*IDResponse, error)
	UpdatePasswordItem(ctx context.Context, in *UpdatePasswordItemRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	DeletePasswordItem(ctx context.Context, in *DeleteItemRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	RequestUpload(ctx context.Context, in *RequestUploadRequest, opts ...grpc.CallOption) (*RequestUploadResponse, error)
	FinalizeUpload(ctx context.Context, in *FinalizeUploadRequest, opts ...grpc.CallOption) (*FinalizeUploadResponse, error)
	SubscribeProfile(ctx context.Context, in *TenantRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Profile], error)
	SubscribeGallery(ctx context.Context, in *TenantRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[GalleryList], error)
	SubscribePasswords(ctx context.Context, in *TenantRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[PasswordList], error)
}

type consoleServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewConsoleServiceClient binds the console API to cc. Every call asks for
// the JSON codec, so no dial option is needed for it.
func NewConsoleServiceClient(cc grpc.ClientConnInterface) ConsoleServiceClient {
	return &consoleServiceClient{cc}
}

func callOpts(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}

func invoke[Req, Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in *Req, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, method, in, out, callOpts(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func subscribe[Resp any](ctx context.Context, cc grpc.ClientConnInterface, desc *grpc.StreamDesc, method string, in *TenantRequest, opts []grpc.CallOption) (grpc.ServerStreamingClient[Resp], error) {
	stream, err := cc.NewStream(ctx, desc, method, callOpts(opts)...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[TenantRequest, Resp]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *consoleServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingRequest, PingResponse](ctx, c.cc, ConsoleService_Ping_FullMethodName, in, opts)
}

func (c *consoleServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginRequest, LoginResponse](ctx, c.cc, ConsoleService_Login_FullMethodName, in, opts)
}

func (c *consoleServiceClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error) {
	return invoke[RefreshTokenRequest, RefreshTokenResponse](ctx, c.cc, ConsoleService_RefreshToken_FullMethodName, in, opts)
}

func (c *consoleServiceClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[LogoutRequest, emptypb.Empty](ctx, c.cc, ConsoleService_Logout_FullMethodName, in, opts)
}

func (c *consoleServiceClient) EnsureProfile(ctx context.Context, in *TenantRequest, opts ...grpc.CallOption) (*EnsureProfileResponse, error) {
	return invoke[TenantRequest, EnsureProfileResponse](ctx, c.cc, ConsoleService_EnsureProfile_FullMethodName, in, opts)
}

func (c *consoleServiceClient) GetProfile(ctx context.Context, in *TenantRequest, opts ...grpc.CallOption) (*Profile, error) {
	return invoke[TenantRequest, Profile](ctx, c.cc, ConsoleService_GetProfile_FullMethodName, in, opts)
}

func (c *consoleServiceClient) MergeProfile(ctx context.Context, in *MergeProfileRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[MergeProfileRequest, emptypb.Empty](ctx, c.cc, ConsoleService_MergeProfile_FullMethodName, in, opts)
}

func (c *consoleServiceClient) AppendGalleryItem(ctx context.Context, in *AppendGalleryItemRequest, opts ...grpc.CallOption) (*IDResponse, error) {
	return invoke[AppendGalleryItemRequest, IDResponse](ctx, c.cc, ConsoleService_AppendGalleryItem_FullMethodName, in, opts)
}

func (c *consoleServiceClient) DeleteGalleryItem(ctx context.Context, in *DeleteItemRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[DeleteItemRequest, emptypb.Empty](ctx, c.cc, ConsoleService_DeleteGalleryItem_FullMethodName, in, opts)
}

func (c *consoleServiceClient) AppendPasswordItem(ctx context.Context, in *AppendPasswordItemRequest, opts ...grpc.CallOption) (*IDResponse, error) {
	return invoke[AppendPasswordItemRequest, IDResponse](ctx, c.cc, ConsoleService_AppendPasswordItem_FullMethodName, in, opts)
}

func (c *consoleServiceClient) UpdatePasswordItem(ctx context.Context, in *UpdatePasswordItemRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[UpdatePasswordItemRequest, emptypb.Empty](ctx, c.cc, ConsoleService_UpdatePasswordItem_FullMethodName, in, opts)
}

func (c *consoleServiceClient) DeletePasswordItem(ctx context.Context, in *DeleteItemRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[DeleteItemRequest, emptypb.Empty](ctx, c.cc, ConsoleService_DeletePasswordItem_FullMethodName, in, opts)
}

func (c *consoleServiceClient) RequestUpload(ctx context.Context, in *RequestUploadRequest, opts ...grpc.CallOption) (*RequestUploadResponse, error) {
	return invoke[RequestUploadRequest, RequestUploadResponse](ctx, c.cc, ConsoleService_RequestUpload_FullMethodName, in, opts)
}

func (c *consoleServiceClient) FinalizeUpload(ctx context.Context, in *FinalizeUploadRequest, opts ...grpc.CallOption) (*FinalizeUploadResponse, error) {
	return invoke[FinalizeUploadRequest, FinalizeUploadResponse](ctx, c.cc, ConsoleService_FinalizeUpload_FullMethodName, in, opts)
}

func (c *consoleServiceClient) SubscribeProfile(ctx context.Context, in *TenantRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Profile], error) {
	return subscribe[Profile](ctx, c.cc, &ConsoleService_ServiceDesc.Streams[0], ConsoleService_SubscribeProfile_FullMethodName, in, opts)
}

func (c *consoleServiceClient) SubscribeGallery(ctx context.Context, in *TenantRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[GalleryList], error) {
	return subscribe[GalleryList](ctx, c.cc, &ConsoleService_ServiceDesc.Streams[1], ConsoleService_SubscribeGallery_FullMethodName, in, opts)
}

func (c *consoleServiceClient) SubscribePasswords(ctx context.Context, in *TenantRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[PasswordList], error) {
	return subscribe[PasswordList](ctx, c.cc, &ConsoleService_ServiceDesc.Streams[2], ConsoleService_SubscribePasswords_FullMethodName, in, opts)
}
