package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"github.com/FBurak/Restaurant-Web/internal/client/client"
	"github.com/FBurak/Restaurant-Web/internal/client/models"
	"github.com/FBurak/Restaurant-Web/internal/netx"
	pb "github.com/FBurak/Restaurant-Web/internal/proto"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errBoom = errors.New("boom")

// chanStream is a server stream fed from a channel.
type chanStream[T any] struct {
	grpc.ClientStream
	ctx context.Context
	ch  chan T
}

func (s *chanStream[T]) Recv() (*T, error) {
	select {
	case v, ok := <-s.ch:
		if !ok {
			return nil, status.Error(codes.Unavailable, "server shutting down")
		}
		return &v, nil
	case <-s.ctx.Done():
		return nil, s.ctx.Err()
	}
}

// fakeBackend keeps one restaurant in memory and pushes a snapshot to
// every subscriber after each write.
type fakeBackend struct {
	mu        sync.Mutex
	profile   *models.Profile
	gallery   []models.GalleryItem
	passwords []models.PasswordItem
	nextID    int

	profileSubs  []chan models.Profile
	gallerySubs  []chan []models.GalleryItem
	passwordSubs []chan []models.PasswordItem

	merges     []models.ProfilePatch
	mergeErr   error
	writeErr   error
	ensureErr  error
	subErr     error
	uploadErr  error
	finalized  []string
	ensureHits int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{}
}

func (f *fakeBackend) id(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s%d", prefix, f.nextID)
}

func (f *fakeBackend) pushLocked() {
	if f.profile != nil {
		for _, ch := range f.profileSubs {
			ch <- *f.profile
		}
	}
	for _, ch := range f.gallerySubs {
		ch <- slices.Clone(f.gallery)
	}
	for _, ch := range f.passwordSubs {
		ch <- slices.Clone(f.passwords)
	}
}

// endSubscriptions closes every stream as a shutting-down server would.
func (f *fakeBackend) endSubscriptions() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.profileSubs {
		close(ch)
	}
	for _, ch := range f.gallerySubs {
		close(ch)
	}
	for _, ch := range f.passwordSubs {
		close(ch)
	}
	f.profileSubs, f.gallerySubs, f.passwordSubs = nil, nil, nil
}

func (f *fakeBackend) Close() error                   { return nil }
func (f *fakeBackend) Ping(ctx context.Context) error { return nil }
func (f *fakeBackend) Login(ctx context.Context, email, password string) (*models.Session, error) {
	return &models.Session{}, nil
}
func (f *fakeBackend) Resume(ctx context.Context, refreshToken string) (*models.Session, error) {
	return &models.Session{}, nil
}
func (f *fakeBackend) Logout(ctx context.Context) error  { return nil }
func (f *fakeBackend) OnSession(fn func(models.Session)) {}

func (f *fakeBackend) EnsureProfile(ctx context.Context, rid string) (*models.Profile, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ensureHits++
	if f.ensureErr != nil {
		return nil, false, f.ensureErr
	}
	created := false
	if f.profile == nil {
		f.profile = &models.Profile{RestaurantID: rid, Name: "Kaffeewerk", Socials: map[string]string{}, IsVisible: true}
		created = true
	}
	p := *f.profile
	return &p, created, nil
}

func (f *fakeBackend) GetProfile(ctx context.Context, rid string) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.profile == nil {
		return nil, client.ErrNotFound
	}
	p := *f.profile
	return &p, nil
}

func (f *fakeBackend) MergeProfile(ctx context.Context, rid string, patch models.ProfilePatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.merges = append(f.merges, patch)
	if f.mergeErr != nil {
		return f.mergeErr
	}
	p := *f.profile
	p.Socials = map[string]string{}
	for k, v := range f.profile.Socials {
		p.Socials[k] = v
	}
	for _, field := range patch.Fields {
		switch field {
		case pb.FieldName:
			p.Name = patch.Name
		case pb.FieldAboutHTML:
			p.AboutHTML = patch.AboutHTML
		case pb.FieldVideoURL:
			p.VideoURL = patch.VideoURL
		case pb.FieldGoogleBusinessURL:
			p.GoogleBusinessURL = patch.GoogleBusinessURL
		case pb.FieldIsVisible:
			p.IsVisible = patch.IsVisible
		case pb.FieldHeaderImageURL:
			p.HeaderImageURL = patch.HeaderImageURL
		case pb.FieldSocials:
			for k, v := range patch.Socials {
				if v == "" {
					delete(p.Socials, k)
				} else {
					p.Socials[k] = v
				}
			}
		}
	}
	f.profile = &p
	f.pushLocked()
	return nil
}

func (f *fakeBackend) AppendGalleryItem(ctx context.Context, rid, url string, sortOrder int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return "", f.writeErr
	}
	id := f.id("g")
	f.gallery = append(f.gallery, models.GalleryItem{ID: id, URL: url, SortOrder: sortOrder})
	f.pushLocked()
	return id, nil
}

func (f *fakeBackend) DeleteGalleryItem(ctx context.Context, rid, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.gallery = slices.DeleteFunc(f.gallery, func(it models.GalleryItem) bool { return it.ID == id })
	f.pushLocked()
	return nil
}

func (f *fakeBackend) AppendPasswordItem(ctx context.Context, rid string, item models.PasswordItem) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return "", f.writeErr
	}
	item.ID = f.id("p")
	f.passwords = append(f.passwords, item)
	f.pushLocked()
	return item.ID, nil
}

func (f *fakeBackend) UpdatePasswordItem(ctx context.Context, rid, id string, patch models.PasswordPatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	for i := range f.passwords {
		if f.passwords[i].ID != id {
			continue
		}
		for _, field := range patch.Fields {
			switch field {
			case pb.FieldTitle:
				f.passwords[i].Title = patch.Title
			case pb.FieldValue:
				f.passwords[i].Value = patch.Value
			case pb.FieldHidden:
				f.passwords[i].Hidden = patch.Hidden
			}
		}
		f.pushLocked()
		return nil
	}
	return client.ErrNotFound
}

func (f *fakeBackend) DeletePasswordItem(ctx context.Context, rid, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.passwords = slices.DeleteFunc(f.passwords, func(it models.PasswordItem) bool { return it.ID == id })
	f.pushLocked()
	return nil
}

func (f *fakeBackend) RequestUpload(ctx context.Context, rid, kind, fileName, contentType string) (*models.UploadSlot, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return &models.UploadSlot{Key: "uploads/" + rid + "/" + kind + "_" + fileName, URL: "http://s3.local/put"}, nil
}

func (f *fakeBackend) FinalizeUpload(ctx context.Context, rid, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finalized = append(f.finalized, key)
	return "http://cdn.local/" + key, nil
}

func subscribe[T any](ctx context.Context, f *fakeBackend, subs *[]chan T, first func() (T, bool)) (*client.Subscription[T], error) {
	f.mu.Lock()
	if f.subErr != nil {
		f.mu.Unlock()
		return nil, f.subErr
	}
	ch := make(chan T, 64)
	if v, ok := first(); ok {
		ch <- v
	}
	*subs = append(*subs, ch)
	f.mu.Unlock()

	open := func(ctx context.Context) (grpc.ServerStreamingClient[T], error) {
		return &chanStream[T]{ctx: ctx, ch: ch}, nil
	}
	return client.StartSubscription(ctx, open, func(v *T) T { return *v }, mapTestError)
}

func mapTestError(err error) error {
	if status.Code(err) == codes.Unavailable {
		return client.ErrUnavailable
	}
	return err
}

func (f *fakeBackend) SubscribeProfile(ctx context.Context, rid string) (*client.Subscription[models.Profile], error) {
	return subscribe(ctx, f, &f.profileSubs, func() (models.Profile, bool) {
		if f.profile == nil {
			return models.Profile{}, false
		}
		return *f.profile, true
	})
}

func (f *fakeBackend) SubscribeGallery(ctx context.Context, rid string) (*client.Subscription[[]models.GalleryItem], error) {
	return subscribe(ctx, f, &f.gallerySubs, func() ([]models.GalleryItem, bool) {
		return slices.Clone(f.gallery), true
	})
}

func (f *fakeBackend) SubscribePasswords(ctx context.Context, rid string) (*client.Subscription[[]models.PasswordItem], error) {
	return subscribe(ctx, f, &f.passwordSubs, func() ([]models.PasswordItem, bool) {
		return slices.Clone(f.passwords), true
	})
}

// recordingNotifier keeps every notice.
type recordingNotifier struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *recordingNotifier) Notify(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *recordingNotifier) Texts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.notices))
	for _, n := range r.notices {
		out = append(out, n.Text)
	}
	return out
}

func (r *recordingNotifier) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []error
	for _, n := range r.notices {
		if n.Level == LevelError {
			out = append(out, n.Err)
		}
	}
	return out
}

// stubUpload replaces the HTTP PUT for the duration of a test.
func stubUpload(t *testing.T, err error) *[]string {
	t.Helper()
	var urls []string
	orig := uploadToPresignedURL
	uploadToPresignedURL = func(ctx context.Context, c netx.HTTPClient, url, contentType string, body io.Reader, size int64, progress io.Writer) error {
		urls = append(urls, url)
		if err != nil {
			return err
		}
		if progress != nil {
			_, _ = io.Copy(progress, body)
		}
		return nil
	}
	t.Cleanup(func() { uploadToPresignedURL = orig })
	return &urls
}

func writeImage(t *testing.T, name string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte("\x89PNG fake"), 0o600))
	return p
}
