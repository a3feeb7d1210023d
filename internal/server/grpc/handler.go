package grpc

import (
	"context"
	"errors"

	"github.com/FBurak/Restaurant-Web/internal/common"
	pb "github.com/FBurak/Restaurant-Web/internal/proto"
	"github.com/FBurak/Restaurant-Web/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// toStatus maps service errors onto gRPC status codes.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrUploadMissing):
		return status.Error(codes.FailedPrecondition, common.ErrUploadMissing.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) fail(ctx context.Context, op string, err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal {
		s.logger.Error(ctx, "request failed", "op", op, "error", err)
	} else {
		s.logger.Debug(ctx, "request rejected", "op", op, "error", err)
	}
	return st
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	tokens, err := s.users.Login(ctx, req.Email, []byte(req.Password))
	if err != nil {
		return nil, s.fail(ctx, "login", err)
	}

	s.logger.Info(ctx, "Logged in", "user_id", tokens.UserID)
	return &pb.LoginResponse{
		UserID:       tokens.UserID,
		Email:        tokens.Email,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.fail(ctx, "refresh_token", err)
	}
	return &pb.RefreshTokenResponse{
		UserID:       tokens.UserID,
		Email:        tokens.Email,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*emptypb.Empty, error) {
	if err := s.users.Logout(ctx, req.RefreshToken); err != nil {
		return nil, s.fail(ctx, "logout", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) EnsureProfile(ctx context.Context, req *pb.TenantRequest) (*pb.EnsureProfileResponse, error) {
	r, created, err := s.restaurants.Ensure(ctx, req.RestaurantID)
	if err != nil {
		return nil, s.fail(ctx, "ensure_profile", err)
	}
	if created {
		s.logger.Info(ctx, "Created restaurant document", "restaurant_id", req.RestaurantID)
	}
	return &pb.EnsureProfileResponse{Profile: *profileToProto(r), Created: created}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, req *pb.TenantRequest) (*pb.Profile, error) {
	r, err := s.restaurants.Get(ctx, req.RestaurantID)
	if err != nil {
		return nil, s.fail(ctx, "get_profile", err)
	}
	return profileToProto(r), nil
}

func (s *GRPCServer) MergeProfile(ctx context.Context, req *pb.MergeProfileRequest) (*emptypb.Empty, error) {
	p := req.Profile
	patch := models.RestaurantPatch{
		Fields:            req.Mask,
		Name:              p.Name,
		AboutHTML:         p.AboutHTML,
		GoogleBusinessURL: p.GoogleBusinessURL,
		VideoURL:          p.VideoURL,
		Socials:           p.Socials,
		IsVisible:         p.IsVisible,
		HeaderImageURL:    p.HeaderImageURL,
	}
	if err := s.restaurants.Merge(ctx, req.RestaurantID, patch); err != nil {
		return nil, s.fail(ctx, "merge_profile", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) AppendGalleryItem(ctx context.Context, req *pb.AppendGalleryItemRequest) (*pb.IDResponse, error) {
	id, err := s.restaurants.AppendGalleryItem(ctx, req.RestaurantID, req.URL, req.SortOrder)
	if err != nil {
		return nil, s.fail(ctx, "append_gallery_item", err)
	}
	return &pb.IDResponse{ID: id}, nil
}

func (s *GRPCServer) DeleteGalleryItem(ctx context.Context, req *pb.DeleteItemRequest) (*emptypb.Empty, error) {
	if err := s.restaurants.DeleteGalleryItem(ctx, req.RestaurantID, req.ID); err != nil {
		return nil, s.fail(ctx, "delete_gallery_item", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) AppendPasswordItem(ctx context.Context, req *pb.AppendPasswordItemRequest) (*pb.IDResponse, error) {
	id, err := s.restaurants.AppendPasswordItem(ctx, req.RestaurantID, models.PasswordItem{
		Title:     req.Title,
		Value:     req.Value,
		Hidden:    req.Hidden,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		return nil, s.fail(ctx, "append_password_item", err)
	}
	return &pb.IDResponse{ID: id}, nil
}

func (s *GRPCServer) UpdatePasswordItem(ctx context.Context, req *pb.UpdatePasswordItemRequest) (*emptypb.Empty, error) {
	patch := models.PasswordPatch{Fields: req.Mask, Title: req.Title, Value: req.Value, Hidden: req.Hidden}
	if err := s.restaurants.UpdatePasswordItem(ctx, req.RestaurantID, req.ID, patch); err != nil {
		return nil, s.fail(ctx, "update_password_item", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) DeletePasswordItem(ctx context.Context, req *pb.DeleteItemRequest) (*emptypb.Empty, error) {
	if err := s.restaurants.DeletePasswordItem(ctx, req.RestaurantID, req.ID); err != nil {
		return nil, s.fail(ctx, "delete_password_item", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) RequestUpload(ctx context.Context, req *pb.RequestUploadRequest) (*pb.RequestUploadResponse, error) {
	up, err := s.blobs.RequestUpload(ctx, userIDFromContext(ctx), req.RestaurantID, req.Kind, req.FileName, req.ContentType)
	if err != nil {
		return nil, s.fail(ctx, "request_upload", err)
	}
	s.logger.Info(ctx, "Upload slot issued", "restaurant_id", req.RestaurantID, "key", up.Key)
	return &pb.RequestUploadResponse{Key: up.Key, URL: up.URL, ExpiresAt: up.ExpiresAt}, nil
}

func (s *GRPCServer) FinalizeUpload(ctx context.Context, req *pb.FinalizeUploadRequest) (*pb.FinalizeUploadResponse, error) {
	url, err := s.blobs.FinalizeUpload(ctx, req.RestaurantID, req.Key)
	if err != nil {
		return nil, s.fail(ctx, "finalize_upload", err)
	}
	return &pb.FinalizeUploadResponse{URL: url}, nil
}

func profileToProto(r *models.Restaurant) *pb.Profile {
	socials := r.Socials
	if socials == nil {
		socials = map[string]string{}
	}
	return &pb.Profile{
		RestaurantID:      r.ID,
		Name:              r.Name,
		AboutHTML:         r.AboutHTML,
		GoogleBusinessURL: r.GoogleBusinessURL,
		VideoURL:          r.VideoURL,
		Socials:           socials,
		IsVisible:         r.IsVisible,
		HeaderImageURL:    r.HeaderImageURL,
		UpdatedAt:         r.UpdatedAt,
	}
}

func galleryToProto(items []models.GalleryItem) *pb.GalleryList {
	out := &pb.GalleryList{Items: make([]pb.GalleryItem, 0, len(items))}
	for _, it := range items {
		out.Items = append(out.Items, pb.GalleryItem{ID: it.ID, URL: it.URL, SortOrder: it.SortOrder, CreatedAt: it.CreatedAt})
	}
	return out
}

func passwordsToProto(items []models.PasswordItem) *pb.PasswordList {
	out := &pb.PasswordList{Items: make([]pb.PasswordItem, 0, len(items))}
	for _, it := range items {
		out.Items = append(out.Items, pb.PasswordItem{
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
