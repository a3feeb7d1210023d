package gallery

import (
	"context"

	"github.com/FBurak/Restaurant-Web/internal/server/models"
)

type Repository interface {
	List(ctx context.Context, restaurantID string) ([]models.GalleryItem, error)
	Create(ctx context.Context, item *models.GalleryItem) (*models.GalleryItem, error)
	Delete(ctx context.Context, restaurantID, id string) error
}
