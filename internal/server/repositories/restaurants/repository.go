package restaurants

import (
	"context"

	"github.com/FBurak/Restaurant-Web/internal/server/models"
)

type Repository interface {
	Get(ctx context.Context, id string) (*models.Restaurant, error)
	CreateIfMissing(ctx context.Context, r *models.Restaurant) (bool, error)
	Merge(ctx context.Context, id string, patch models.RestaurantPatch) error
}
