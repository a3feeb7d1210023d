package services

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/FBurak/Restaurant-Web/internal/common"
	"github.com/FBurak/Restaurant-Web/internal/server/hub"
	"github.com/FBurak/Restaurant-Web/internal/server/models"
	"github.com/FBurak/Restaurant-Web/internal/server/repositories/repomanager"
	"github.com/FBurak/Restaurant-Web/internal/server/repositories/restaurants"
)

var tenantPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

// ValidateTenant checks a restaurant id before it reaches storage keys or SQL.
func ValidateTenant(id string) error {
	if !tenantPattern.MatchString(id) {
		return fmt.Errorf("%w: restaurant id %q", common.ErrorInvalidArgument, id)
	}
	return nil
}

// Publisher is notified after every successful write to a collection.
type Publisher interface {
	Publish(topic string)
}

// RestaurantService owns the restaurant document and its gallery and
// password collections. Every successful write is published so push
// streams can send a fresh snapshot.
type RestaurantService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	publisher   Publisher
	defaultName string
}

func NewRestaurantService(db *sql.DB, m repomanager.RepositoryManager, p Publisher, defaultName string) *RestaurantService {
	return &RestaurantService{db: db, repomanager: m, publisher: p, defaultName: defaultName}
}

// Ensure returns the restaurant document, creating it with defaults
// (configured name, empty about text, no links, visible) when missing.
func (s *RestaurantService) Ensure(ctx context.Context, id string) (*models.Restaurant, bool, error) {
	if err := ValidateTenant(id); err != nil {
		return nil, false, err
	}

	repo := s.repomanager.Restaurants(s.db)
	created, err := repo.CreateIfMissing(ctx, &models.Restaurant{
		ID:        id,
		Name:      s.defaultName,
		Socials:   map[string]string{},
		IsVisible: true,
	})
	if err != nil {
		return nil, false, err
	}
	if created {
		s.publish(id, hub.CollectionProfile)
	}

	r, err := repo.Get(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return r, created, nil
}

func (s *RestaurantService) Get(ctx context.Context, id string) (*models.Restaurant, error) {
	if err := ValidateTenant(id); err != nil {
		return nil, err
	}
	return s.repomanager.Restaurants(s.db).Get(ctx, id)
}

// Merge writes the patched fields.
func (s *RestaurantService) Merge(ctx context.Context, id string, patch models.RestaurantPatch) error {
	if err := ValidateTenant(id); err != nil {
		return err
	}
	if patch.Has(restaurants.FieldName) && strings.TrimSpace(patch.Name) == "" {
		return fmt.Errorf("%w: empty name", common.ErrorInvalidArgument)
	}
	if err := s.repomanager.Restaurants(s.db).Merge(ctx, id, patch); err != nil {
		return err
	}
	s.publish(id, hub.CollectionProfile)
	return nil
}

func (s *RestaurantService) Gallery(ctx context.Context, id string) ([]models.GalleryItem, error) {
	if err := ValidateTenant(id); err != nil {
		return nil, err
	}
	return s.repomanager.Gallery(s.db).List(ctx, id)
}

// AppendGalleryItem stores url with the caller's sort order and returns the new id.
func (s *RestaurantService) AppendGalleryItem(ctx context.Context, id, url string, sortOrder int) (string, error) {
	if err := ValidateTenant(id); err != nil {
		return "", err
	}
	if url == "" || sortOrder < 0 {
		return "", fmt.Errorf("%w: gallery item", common.ErrorInvalidArgument)
	}
	item, err := s.repomanager.Gallery(s.db).Create(ctx, &models.GalleryItem{RestaurantID: id, URL: url, SortOrder: sortOrder})
	if err != nil {
		return "", err
	}
	s.publish(id, hub.CollectionGallery)
	return item.ID, nil
}

func (s *RestaurantService) DeleteGalleryItem(ctx context.Context, id, itemID string) error {
	if err := ValidateTenant(id); err != nil {
		return err
	}
	if err := s.repomanager.Gallery(s.db).Delete(ctx, id, itemID); err != nil {
		return err
	}
	s.publish(id, hub.CollectionGallery)
	return nil
}

func (s *RestaurantService) Passwords(ctx context.Context, id string) ([]models.PasswordItem, error) {
	if err := ValidateTenant(id); err != nil {
		return nil, err
	}
	return s.repomanager.Passwords(s.db).List(ctx, id)
}

func (s *RestaurantService) AppendPasswordItem(ctx context.Context, id string, item models.PasswordItem) (string, error) {
	if err := ValidateTenant(id); err != nil {
		return "", err
	}
	if item.SortOrder < 0 {
		return "", fmt.Errorf("%w: sort order", common.ErrorInvalidArgument)
	}
	item.RestaurantID = id
	created, err := s.repomanager.Passwords(s.db).Create(ctx, &item)
	if err != nil {
		return "", err
	}
	s.publish(id, hub.CollectionPasswords)
	return created.ID, nil
}

func (s *RestaurantService) UpdatePasswordItem(ctx context.Context, id, itemID string, patch models.PasswordPatch) error {
	if err := ValidateTenant(id); err != nil {
		return err
	}
	if err := s.repomanager.Passwords(s.db).Update(ctx, id, itemID, patch); err != nil {
		return err
	}
	s.publish(id, hub.CollectionPasswords)
	return nil
}

func (s *RestaurantService) DeletePasswordItem(ctx context.Context, id, itemID string) error {
	if err := ValidateTenant(id); err != nil {
		return err
	}
	if err := s.repomanager.Passwords(s.db).Delete(ctx, id, itemID); err != nil {
		return err
	}
	s.publish(id, hub.CollectionPasswords)
	return nil
}

func (s *RestaurantService) publish(id, collection string) {
	if s.publisher != nil {
		s.publisher.Publish(hub.Topic(id, collection))
	}
}
