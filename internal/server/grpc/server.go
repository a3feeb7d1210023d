package grpc

import (
	"context"
	"net"

	"github.com/FBurak/Restaurant-Web/internal/logging"
	pb "github.com/FBurak/Restaurant-Web/internal/proto"
	"github.com/FBurak/Restaurant-Web/internal/server/models"
	"github.com/FBurak/Restaurant-Web/internal/server/services"
	"google.golang.org/grpc"
)

type userSvc interface {
	Login(ctx context.Context, email string, password []byte) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

type restaurantSvc interface {
	Ensure(ctx context.Context, id string) (*models.Restaurant, bool, error)
	Get(ctx context.Context, id string) (*models.Restaurant, error)
	Merge(ctx context.Context, id string, patch models.RestaurantPatch) error
	Gallery(ctx context.Context, id string) ([]models.GalleryItem, error)
	AppendGalleryItem(ctx context.Context, id, url string, sortOrder int) (string, error)
	DeleteGalleryItem(ctx context.Context, id, itemID string) error
	Passwords(ctx context.Context, id string) ([]models.PasswordItem, error)
	AppendPasswordItem(ctx context.Context, id string, item models.PasswordItem) (string, error)
	UpdatePasswordItem(ctx context.Context, id, itemID string, patch models.PasswordPatch) error
	DeletePasswordItem(ctx context.Context, id, itemID string) error
}

type blobSvc interface {
	RequestUpload(ctx context.Context, userID, tenant, kind, fileName, contentType string) (*services.PresignedUpload, error)
	FinalizeUpload(ctx context.Context, tenant, key string) (string, error)
}

// subscriber is the push side of the hub.
type subscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan struct{}, string)
	Unsubscribe(topic, subID string)
	Done() <-chan struct{}
}

type GRPCServer struct {
	pb.UnimplementedConsoleServiceServer
	address     string
	users       userSvc
	restaurants restaurantSvc
	blobs       blobSvc
	hub         subscriber
	logger      logging.Logger
	jwtSecret   []byte
}

func NewGRPCServer(a string, l logging.Logger, us userSvc, rs restaurantSvc, bs blobSvc, h subscriber, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:     a,
		logger:      l.With("module", "grpc_server"),
		users:       us,
		restaurants: rs,
		blobs:       bs,
		hub:         h,
		jwtSecret:   []byte(secretKey),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.accessTokenInterceptor),
		grpc.ChainStreamInterceptor(s.streamAccessTokenInterceptor),
	)
	pb.RegisterConsoleServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	return nil
}
