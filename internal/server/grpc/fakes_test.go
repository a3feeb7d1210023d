package grpc

import (
	"context"
	"sync"

	"github.com/FBurak/Restaurant-Web/internal/common"
	"github.com/FBurak/Restaurant-Web/internal/logging"
	"github.com/FBurak/Restaurant-Web/internal/server/models"
	"github.com/FBurak/Restaurant-Web/internal/server/services"
)

type fakeUser struct {
	loginResp   *services.TokenPair
	loginErr    error
	refreshResp *services.TokenPair
	refreshErr  error
	logoutErr   error
	gotEmail    string
	gotPassword string
}

func (f *fakeUser) Login(_ context.Context, email string, password []byte) (*services.TokenPair, error) {
	f.gotEmail, f.gotPassword = email, string(password)
	return f.loginResp, f.loginErr
}

func (f *fakeUser) RefreshToken(context.Context, string) (*services.TokenPair, error) {
	return f.refreshResp, f.refreshErr
}

func (f *fakeUser) Logout(context.Context, string) error { return f.logoutErr }

// fakeRestaurants is an in-memory restaurantSvc safe for use from stream
// goroutines.
type fakeRestaurants struct {
	mu        sync.Mutex
	doc       *models.Restaurant
	gallery   []models.GalleryItem
	passwords []models.PasswordItem
	merges    []models.RestaurantPatch
	pwPatches []models.PasswordPatch
	err       error
}

func (f *fakeRestaurants) Ensure(_ context.Context, id string) (*models.Restaurant, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, false, f.err
	}
	if f.doc != nil {
		return f.doc, false, nil
	}
	f.doc = &models.Restaurant{ID: id, Name: "Kaffeewerk", IsVisible: true}
	return f.doc, true, nil
}

func (f *fakeRestaurants) Get(context.Context, string) (*models.Restaurant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if f.doc == nil {
		return nil, common.ErrorNotFound
	}
	out := *f.doc
	return &out, nil
}

func (f *fakeRestaurants) Merge(_ context.Context, _ string, patch models.RestaurantPatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.merges = append(f.merges, patch)
	return nil
}

func (f *fakeRestaurants) Gallery(context.Context, string) ([]models.GalleryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.GalleryItem(nil), f.gallery...), f.err
}

func (f *fakeRestaurants) AppendGalleryItem(_ context.Context, _ string, url string, sortOrder int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	id := "g" + string(rune('a'+len(f.gallery)))
	f.gallery = append(f.gallery, models.GalleryItem{ID: id, URL: url, SortOrder: sortOrder})
	return id, nil
}

func (f *fakeRestaurants) DeleteGalleryItem(context.Context, string, string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *fakeRestaurants) Passwords(context.Context, string) ([]models.PasswordItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.PasswordItem(nil), f.passwords...), f.err
}

func (f *fakeRestaurants) AppendPasswordItem(_ context.Context, _ string, item models.PasswordItem) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	item.ID = "p1"
	f.passwords = append(f.passwords, item)
	return item.ID, nil
}

func (f *fakeRestaurants) UpdatePasswordItem(_ context.Context, _, _ string, patch models.PasswordPatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pwPatches = append(f.pwPatches, patch)
	return f.err
}

func (f *fakeRestaurants) DeletePasswordItem(context.Context, string, string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

type fakeBlobs struct {
	gotUserID string
	upload    *services.PresignedUpload
	url       string
	err       error
}

func (f *fakeBlobs) RequestUpload(_ context.Context, userID, _, _, _, _ string) (*services.PresignedUpload, error) {
	f.gotUserID = userID
	return f.upload, f.err
}

func (f *fakeBlobs) FinalizeUpload(context.Context, string, string) (string, error) {
	return f.url, f.err
}

func newTestServer(u userSvc, r restaurantSvc, b blobSvc, h subscriber) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.NewDiscard(), u, r, b, h, "secret")
}
