package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/FBurak/Restaurant-Web/internal/common"
	"github.com/FBurak/Restaurant-Web/internal/dbx"
	"github.com/FBurak/Restaurant-Web/internal/server/models"
	"github.com/FBurak/Restaurant-Web/internal/server/repositories/gallery"
	"github.com/FBurak/Restaurant-Web/internal/server/repositories/passwords"
	"github.com/FBurak/Restaurant-Web/internal/server/repositories/refreshtokens"
	"github.com/FBurak/Restaurant-Web/internal/server/repositories/restaurants"
	"github.com/FBurak/Restaurant-Web/internal/server/repositories/uploads"
	"github.com/FBurak/Restaurant-Web/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// fakeRepoManager hands out whichever fakes a test sets; nil fields panic
// on use, which flags unexpected repository access.
type fakeRepoManager struct {
	u  *fakeUsersRepo
	r  *fakeRefreshRepo
	rs *fakeRestaurantsRepo
	g  *fakeGalleryRepo
	p  *fakePasswordsRepo
	up *fakeUploadsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.r }
func (m *fakeRepoManager) Restaurants(dbx.DBTX) restaurants.Repository     { return m.rs }
func (m *fakeRepoManager) Gallery(dbx.DBTX) gallery.Repository             { return m.g }
func (m *fakeRepoManager) Passwords(dbx.DBTX) passwords.Repository         { return m.p }
func (m *fakeRepoManager) Uploads(dbx.DBTX) uploads.Repository             { return m.up }

type fakeUsersRepo struct {
	created   []*models.User
	createErr error
	getOut    *models.User
	getErr    error
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *u
	out.ID = "42"
	f.created = append(f.created, &out)
	return &out, nil
}

func (f *fakeUsersRepo) GetByEmail(context.Context, string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) GetByID(context.Context, string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeRefreshRepo struct {
	findOut   *models.RefreshToken
	findErr   error
	delErr    error
	createErr error
	deleted   []string
	created   []string
	purged    int64
}

func (f *fakeRefreshRepo) Create(_ context.Context, _ string, token string, _ time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, token)
	return nil
}

func (f *fakeRefreshRepo) Find(context.Context, string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(_ context.Context, token string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, token)
	return nil
}

func (f *fakeRefreshRepo) DeleteExpired(context.Context) (int64, error) { return f.purged, nil }

type fakeRestaurantsRepo struct {
	docs     map[string]*models.Restaurant
	merges   []models.RestaurantPatch
	mergeErr error
}

func (f *fakeRestaurantsRepo) Get(_ context.Context, id string) (*models.Restaurant, error) {
	r, ok := f.docs[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *r
	return &out, nil
}

func (f *fakeRestaurantsRepo) CreateIfMissing(_ context.Context, r *models.Restaurant) (bool, error) {
	if f.docs == nil {
		f.docs = map[string]*models.Restaurant{}
	}
	if _, ok := f.docs[r.ID]; ok {
		return false, nil
	}
	doc := *r
	f.docs[r.ID] = &doc
	return true, nil
}

func (f *fakeRestaurantsRepo) Merge(_ context.Context, _ string, patch models.RestaurantPatch) error {
	if f.mergeErr != nil {
		return f.mergeErr
	}
	f.merges = append(f.merges, patch)
	return nil
}

type fakeGalleryRepo struct {
	items []models.GalleryItem
	seq   int
}

func (f *fakeGalleryRepo) List(_ context.Context, restaurantID string) ([]models.GalleryItem, error) {
	var out []models.GalleryItem
	for _, it := range f.items {
		if it.RestaurantID == restaurantID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeGalleryRepo) Create(_ context.Context, item *models.GalleryItem) (*models.GalleryItem, error) {
	f.seq++
	out := *item
	out.ID = "g" + string(rune('0'+f.seq))
	f.items = append(f.items, out)
	return &out, nil
}

func (f *fakeGalleryRepo) Delete(_ context.Context, restaurantID, id string) error {
	for i, it := range f.items {
		if it.ID == id && it.RestaurantID == restaurantID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

type fakePasswordsRepo struct {
	items   []models.PasswordItem
	patches []models.PasswordPatch
}

func (f *fakePasswordsRepo) List(context.Context, string) ([]models.PasswordItem, error) {
	return f.items, nil
}

func (f *fakePasswordsRepo) Create(_ context.Context, item *models.PasswordItem) (*models.PasswordItem, error) {
	out := *item
	out.ID = "p1"
	f.items = append(f.items, out)
	return &out, nil
}

func (f *fakePasswordsRepo) Update(_ context.Context, _, id string, patch models.PasswordPatch) error {
	for _, it := range f.items {
		if it.ID == id {
			f.patches = append(f.patches, patch)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakePasswordsRepo) Delete(_ context.Context, _, id string) error {
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

type fakeUploadsRepo struct {
	rows      map[string]*models.Upload
	completed []string
}

func (f *fakeUploadsRepo) Create(_ context.Context, u *models.Upload) error {
	if f.rows == nil {
		f.rows = map[string]*models.Upload{}
	}
	row := *u
	f.rows[u.Key] = &row
	return nil
}

func (f *fakeUploadsRepo) Get(_ context.Context, key string) (*models.Upload, error) {
	u, ok := f.rows[key]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *u
	return &out, nil
}

func (f *fakeUploadsRepo) MarkCompleted(_ context.Context, key string) error {
	u, ok := f.rows[key]
	if !ok {
		return common.ErrorNotFound
	}
	u.Status = models.UploadStatusCompleted
	f.completed = append(f.completed, key)
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
}

func (p *recordingPublisher) Publish(topic string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
}

func (p *recordingPublisher) Topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.topics...)
}
