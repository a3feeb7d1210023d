package grpc

import (
	"context"

	pb "github.com/FBurak/Restaurant-Web/internal/proto"
	"github.com/FBurak/Restaurant-Web/internal/server/hub"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// streamSnapshots sends a snapshot right away and again after every hub
// notification for topic. Notifications coalesce, so a client may skip
// intermediate states but always receives the latest one.
func streamSnapshots[T any](s *GRPCServer, ctx context.Context, op, topic string,
	snapshot func(context.Context) (*T, error), send func(*T) error) error {

	notify, subID := s.hub.Subscribe(ctx, topic)
	defer s.hub.Unsubscribe(topic, subID)

	s.logger.Debug(ctx, "stream opened", "topic", topic)
	defer s.logger.Debug(ctx, "stream closed", "topic", topic)

	for {
		snap, err := snapshot(ctx)
		if err != nil {
			return s.fail(ctx, op, err)
		}
		if err := send(snap); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-s.hub.Done():
			return status.Error(codes.Unavailable, "server shutting down")
		case <-notify:
		}
	}
}

func (s *GRPCServer) SubscribeProfile(req *pb.TenantRequest, stream grpc.ServerStreamingServer[pb.Profile]) error {
	id := req.RestaurantID
	return streamSnapshots(s, stream.Context(), "subscribe_profile", hub.Topic(id, hub.CollectionProfile),
		func(ctx context.Context) (*pb.Profile, error) {
			r, err := s.restaurants.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			return profileToProto(r), nil
		}, stream.Send)
}

func (s *GRPCServer) SubscribeGallery(req *pb.TenantRequest, stream grpc.ServerStreamingServer[pb.GalleryList]) error {
	id := req.RestaurantID
	return streamSnapshots(s, stream.Context(), "subscribe_gallery", hub.Topic(id, hub.CollectionGallery),
		func(ctx context.Context) (*pb.GalleryList, error) {
			items, err := s.restaurants.Gallery(ctx, id)
			if err != nil {
				return nil, err
			}
			return galleryToProto(items), nil
		}, stream.Send)
}

func (s *GRPCServer) SubscribePasswords(req *pb.TenantRequest, stream grpc.ServerStreamingServer[pb.PasswordList]) error {
	id := req.RestaurantID
	return streamSnapshots(s, stream.Context(), "subscribe_passwords", hub.Topic(id, hub.CollectionPasswords),
		func(ctx context.Context) (*pb.PasswordList, error) {
			items, err := s.restaurants.Passwords(ctx, id)
			if err != nil {
				return nil, err
			}
			return passwordsToProto(items), nil
		}, stream.Send)
}
