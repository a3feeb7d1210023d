package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/FBurak/Restaurant-Web/internal/client/models"
	"github.com/FBurak/Restaurant-Web/internal/common"
	pb "github.com/FBurak/Restaurant-Web/internal/proto"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// refreshLeeway is how close to expiry an access token is refreshed
// before a call is made.
const refreshLeeway = 30 * time.Second

var nowFunc = time.Now

// methods that never carry an access token
var publicMethods = map[string]bool{
	pb.ConsoleService_Ping_FullMethodName:         true,
	pb.ConsoleService_Login_FullMethodName:        true,
	pb.ConsoleService_RefreshToken_FullMethodName: true,
}

var _ Client = (*GRPCClient)(nil)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.ConsoleServiceClient

	mu           sync.Mutex
	session      models.Session
	onSession    func(models.Session)
	refreshMu    sync.Mutex
	extraDialOps []grpc.DialOption
}

// NewGRPCClient dials endpointURL. timeout bounds every unary call; zero
// means no extra deadline. opts are appended to the dial options.
func NewGRPCClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout, extraDialOps: opts}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(s.timeoutInterceptor, s.accessTokenInterceptor),
		grpc.WithChainStreamInterceptor(s.streamAccessTokenInterceptor),
	}, s.extraDialOps...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewConsoleServiceClient(conn)
	return nil
}

// OnSession registers fn to run whenever the token pair changes, so a
// rotated refresh token can be persisted.
func (s *GRPCClient) OnSession(fn func(models.Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSession = fn
}

// Session returns the current identity and tokens.
func (s *GRPCClient) Session() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *GRPCClient) setSession(sess models.Session) {
	s.mu.Lock()
	s.session = sess
	fn := s.onSession
	s.mu.Unlock()

	if fn != nil {
		fn(sess)
	}
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.AccessToken, s.session.RefreshToken
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// expiresSoon reports whether tok expires within refreshLeeway. The
// signature is not checked; the server does that.
func expiresSoon(tok string) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return nowFunc().Add(refreshLeeway).After(claims.ExpiresAt.Time)
}

// refresh exchanges the refresh token unless another caller already
// replaced stale.
func (s *GRPCClient) refresh(ctx context.Context, stale string) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	access, refreshToken := s.tokens()
	if access != stale {
		return nil
	}
	if refreshToken == "" {
		return ErrUnauthorized
	}

	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return err
	}

	s.setSession(models.Session{
		UserID:       resp.UserID,
		Email:        resp.Email,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	})
	return nil
}

// freshToken returns an access token, refreshing it first when it is
// about to expire.
func (s *GRPCClient) freshToken(ctx context.Context) string {
	access, _ := s.tokens()
	if access != "" && expiresSoon(access) {
		if err := s.refresh(ctx, access); err == nil {
			access, _ = s.tokens()
		}
	}
	return access
}

func (s *GRPCClient) timeoutInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if publicMethods[method] {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	access := s.freshToken(ctx)
	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}

	if rerr := s.refresh(ctx, access); rerr != nil {
		return err
	}

	access, _ = s.tokens()
	return invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
}

// streamAccessTokenInterceptor attaches a fresh token when a stream opens.
// The server checks it only then, so a long-lived stream survives expiry.
func (s *GRPCClient) streamAccessTokenInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	return streamer(withAccessToken(ctx, s.freshToken(ctx)), desc, cc, method, opts...)
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}

	sess := models.Session{UserID: resp.UserID, Email: resp.Email, AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}
	s.setSession(sess)
	return &sess, nil
}

// Resume signs in with a stored refresh token.
func (s *GRPCClient) Resume(ctx context.Context, refreshToken string) (*models.Session, error) {
	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, s.mapError(err)
	}

	sess := models.Session{UserID: resp.UserID, Email: resp.Email, AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}
	s.setSession(sess)
	return &sess, nil
}

// Logout revokes the refresh token and forgets the session locally even
// when the server cannot be reached.
func (s *GRPCClient) Logout(ctx context.Context) error {
	_, refreshToken := s.tokens()

	s.mu.Lock()
	s.session = models.Session{}
	s.mu.Unlock()

	if refreshToken == "" {
		return nil
	}
	if _, err := s.client.Logout(ctx, &pb.LogoutRequest{RefreshToken: refreshToken}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) EnsureProfile(ctx context.Context, restaurantID string) (*models.Profile, bool, error) {
	resp, err := s.client.EnsureProfile(ctx, &pb.TenantRequest{RestaurantID: restaurantID})
	if err != nil {
		return nil, false, s.mapError(err)
	}
	p := profileFromProto(&resp.Profile)
	return &p, resp.Created, nil
}

func (s *GRPCClient) GetProfile(ctx context.Context, restaurantID string) (*models.Profile, error) {
	resp, err := s.client.GetProfile(ctx, &pb.TenantRequest{RestaurantID: restaurantID})
	if err != nil {
		return nil, s.mapError(err)
	}
	p := profileFromProto(resp)
	return &p, nil
}

func (s *GRPCClient) MergeProfile(ctx context.Context, restaurantID string, patch models.ProfilePatch) error {
	req := &pb.MergeProfileRequest{
		RestaurantID: restaurantID,
		Mask:         patch.Fields,
		Profile: pb.Profile{
			Name:              patch.Name,
			AboutHTML:         patch.AboutHTML,
			GoogleBusinessURL: patch.GoogleBusinessURL,
			VideoURL:          patch.VideoURL,
			Socials:           patch.Socials,
			IsVisible:         patch.IsVisible,
			HeaderImageURL:    patch.HeaderImageURL,
		},
	}
	if _, err := s.client.MergeProfile(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) AppendGalleryItem(ctx context.Context, restaurantID, url string, sortOrder int) (string, error) {
	resp, err := s.client.AppendGalleryItem(ctx, &pb.AppendGalleryItemRequest{RestaurantID: restaurantID, URL: url, SortOrder: sortOrder})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.ID, nil
}

func (s *GRPCClient) DeleteGalleryItem(ctx context.Context, restaurantID, id string) error {
	if _, err := s.client.DeleteGalleryItem(ctx, &pb.DeleteItemRequest{RestaurantID: restaurantID, ID: id}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) AppendPasswordItem(ctx context.Context, restaurantID string, item models.PasswordItem) (string, error) {
	resp, err := s.client.AppendPasswordItem(ctx, &pb.AppendPasswordItemRequest{
		RestaurantID: restaurantID,
		Title:        item.Title,
		Value:        item.Value,
		Hidden:       item.Hidden,
		SortOrder:    item.SortOrder,
	})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.ID, nil
}

func (s *GRPCClient) UpdatePasswordItem(ctx context.Context, restaurantID, id string, patch models.PasswordPatch) error {
	_, err := s.client.UpdatePasswordItem(ctx, &pb.UpdatePasswordItemRequest{
		RestaurantID: restaurantID,
		ID:           id,
		Mask:         patch.Fields,
		Title:        patch.Title,
		Value:        patch.Value,
		Hidden:       patch.Hidden,
	})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) DeletePasswordItem(ctx context.Context, restaurantID, id string) error {
	if _, err := s.client.DeletePasswordItem(ctx, &pb.DeleteItemRequest{RestaurantID: restaurantID, ID: id}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) RequestUpload(ctx context.Context, restaurantID, kind, fileName, contentType string) (*models.UploadSlot, error) {
	resp, err := s.client.RequestUpload(ctx, &pb.RequestUploadRequest{
		RestaurantID: restaurantID,
		Kind:         kind,
		FileName:     fileName,
		ContentType:  contentType,
	})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.UploadSlot{Key: resp.Key, URL: resp.URL, ExpiresAt: resp.ExpiresAt}, nil
}

func (s *GRPCClient) FinalizeUpload(ctx context.Context, restaurantID, key string) (string, error) {
	resp, err := s.client.FinalizeUpload(ctx, &pb.FinalizeUploadRequest{RestaurantID: restaurantID, Key: key})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.URL, nil
}

func (s *GRPCClient) SubscribeProfile(ctx context.Context, restaurantID string) (*Subscription[models.Profile], error) {
	return StartSubscription(ctx,
		func(ctx context.Context) (grpc.ServerStreamingClient[pb.Profile], error) {
			return s.client.SubscribeProfile(ctx, &pb.TenantRequest{RestaurantID: restaurantID})
		},
		profileFromProto, s.mapError)
}

func (s *GRPCClient) SubscribeGallery(ctx context.Context, restaurantID string) (*Subscription[[]models.GalleryItem], error) {
	return StartSubscription(ctx,
		func(ctx context.Context) (grpc.ServerStreamingClient[pb.GalleryList], error) {
			return s.client.SubscribeGallery(ctx, &pb.TenantRequest{RestaurantID: restaurantID})
		},
		galleryFromProto, s.mapError)
}

func (s *GRPCClient) SubscribePasswords(ctx context.Context, restaurantID string) (*Subscription[[]models.PasswordItem], error) {
	return StartSubscription(ctx,
		func(ctx context.Context) (grpc.ServerStreamingClient[pb.PasswordList], error) {
			return s.client.SubscribePasswords(ctx, &pb.TenantRequest{RestaurantID: restaurantID})
		},
		passwordsFromProto, s.mapError)
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	case codes.FailedPrecondition:
		return ErrUploadIncomplete
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func profileFromProto(p *pb.Profile) models.Profile {
	socials := make(map[string]string, len(p.Socials))
	for k, v := range p.Socials {
		socials[k] = v
	}
	return models.Profile{
		RestaurantID:      p.RestaurantID,
		Name:              p.Name,
		AboutHTML:         p.AboutHTML,
		GoogleBusinessURL: p.GoogleBusinessURL,
		VideoURL:          p.VideoURL,
		Socials:           socials,
		IsVisible:         p.IsVisible,
		HeaderImageURL:    p.HeaderImageURL,
		UpdatedAt:         p.UpdatedAt,
	}
}

func galleryFromProto(l *pb.GalleryList) []models.GalleryItem {
	out := make([]models.GalleryItem, 0, len(l.Items))
	for _, it := range l.Items {
		out = append(out, models.GalleryItem{ID: it.ID, URL: it.URL, SortOrder: it.SortOrder, CreatedAt: it.CreatedAt})
	}
	return out
}

func passwordsFromProto(l *pb.PasswordList) []models.PasswordItem {
	out := make([]models.PasswordItem, 0, len(l.Items))
	for _, it := range l.Items {
		out = append(out, models.PasswordItem{
			ID:        it.ID,
			Title:     it.Title,
			Value:     it.Value,
			Hidden:    it.Hidden,
			SortOrder: it.SortOrder,
			CreatedAt: it.CreatedAt,
		})
	}
	return out
}
