package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/FBurak/Restaurant-Web/internal/common"
	pb "github.com/FBurak/Restaurant-Web/internal/proto"
	"github.com/FBurak/Restaurant-Web/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func withToken(tok string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AccessTokenHeaderName, tok))
}

func TestInterceptor_PublicMethodsSkipAuth(t *testing.T) {
	s := newTestServer(nil, nil, nil, nil)

	for _, m := range []string{
		pb.ConsoleService_Ping_FullMethodName,
		pb.ConsoleService_Login_FullMethodName,
		pb.ConsoleService_RefreshToken_FullMethodName,
	} {
		called := false
		_, err := s.accessTokenInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: m},
			func(ctx context.Context, req any) (any, error) {
				called = true
				return "ok", nil
			})
		require.NoError(t, err, m)
		assert.True(t, called, m)
	}
}

func TestInterceptor_Rejects(t *testing.T) {
	s := newTestServer(nil, nil, nil, nil)
	info := &grpc.UnaryServerInfo{FullMethod: pb.ConsoleService_MergeProfile_FullMethodName}

	expired, err := auth.GenerateToken("u1", []byte("secret"), -time.Minute)
	require.NoError(t, err)
	foreign, err := auth.GenerateToken("u1", []byte("other"), time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name    string
		ctx     context.Context
		wantMsg string
	}{
		{"missing", context.Background(), "missing token"},
		{"garbage", withToken("not-a-jwt"), "invalid token"},
		{"wrong secret", withToken(foreign), "invalid token"},
		{"expired", withToken(expired), "token expired"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.accessTokenInterceptor(tt.ctx, nil, info, func(ctx context.Context, req any) (any, error) {
				t.Fatal("handler must not run")
				return nil, nil
			})
			st, _ := status.FromError(err)
			assert.Equal(t, codes.Unauthenticated, st.Code())
			assert.Equal(t, tt.wantMsg, st.Message())
		})
	}
}

func TestInterceptor_ValidTokenSetsUser(t *testing.T) {
	s := newTestServer(nil, nil, nil, nil)
	tok, err := auth.GenerateToken("u-42", []byte("secret"), time.Minute)
	require.NoError(t, err)

	var got string
	_, err = s.accessTokenInterceptor(withToken(tok), nil,
		&grpc.UnaryServerInfo{FullMethod: pb.ConsoleService_RequestUpload_FullMethodName},
		func(ctx context.Context, req any) (any, error) {
			got = userIDFromContext(ctx)
			return nil, nil
		})
	require.NoError(t, err)
	assert.Equal(t, "u-42", got)
}

type stubServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *stubServerStream) Context() context.Context { return s.ctx }

func TestStreamInterceptor(t *testing.T) {
	s := newTestServer(nil, nil, nil, nil)
	info := &grpc.StreamServerInfo{FullMethod: pb.ConsoleService_SubscribeGallery_FullMethodName, IsServerStream: true}

	err := s.streamAccessTokenInterceptor(nil, &stubServerStream{ctx: context.Background()}, info,
		func(srv any, ss grpc.ServerStream) error {
			t.Fatal("handler must not run")
			return nil
		})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	tok, err := auth.GenerateToken("u-7", []byte("secret"), time.Minute)
	require.NoError(t, err)
	var got string
	err = s.streamAccessTokenInterceptor(nil, &stubServerStream{ctx: withToken(tok)}, info,
		func(srv any, ss grpc.ServerStream) error {
			got = userIDFromContext(ss.Context())
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, "u-7", got)
}
