package client

import (
	"context"

	"github.com/FBurak/Restaurant-Web/internal/client/models"
)

// Client is the console's view of the backend: auth, the restaurant
// document store with its push subscriptions, and the upload broker.
// Every store call names the restaurant explicitly.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Login(ctx context.Context, email, password string) (*models.Session, error)
	Resume(ctx context.Context, refreshToken string) (*models.Session, error)
	Logout(ctx context.Context) error
	// OnSession registers fn to run whenever sign-in or a token refresh
	// yields a new token pair.
	OnSession(fn func(models.Session))

	EnsureProfile(ctx context.Context, restaurantID string) (*models.Profile, bool, error)
	GetProfile(ctx context.Context, restaurantID string) (*models.Profile, error)
	MergeProfile(ctx context.Context, restaurantID string, patch models.ProfilePatch) error

	AppendGalleryItem(ctx context.Context, restaurantID, url string, sortOrder int) (string, error)
	DeleteGalleryItem(ctx context.Context, restaurantID, id string) error

	AppendPasswordItem(ctx context.Context, restaurantID string, item models.PasswordItem) (string, error)
	UpdatePasswordItem(ctx context.Context, restaurantID, id string, patch models.PasswordPatch) error
	DeletePasswordItem(ctx context.Context, restaurantID, id string) error

	RequestUpload(ctx context.Context, restaurantID, kind, fileName, contentType string) (*models.UploadSlot, error)
	FinalizeUpload(ctx context.Context, restaurantID, key string) (string, error)

	SubscribeProfile(ctx context.Context, restaurantID string) (*Subscription[models.Profile], error)
	SubscribeGallery(ctx context.Context, restaurantID string) (*Subscription[[]models.GalleryItem], error)
	SubscribePasswords(ctx context.Context, restaurantID string) (*Subscription[[]models.PasswordItem], error)
}
