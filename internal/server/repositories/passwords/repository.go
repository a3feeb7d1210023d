package passwords

import (
	"context"

	"github.com/FBurak/Restaurant-Web/internal/server/models"
)

type Repository interface {
	List(ctx context.Context, restaurantID string) ([]models.PasswordItem, error)
	Create(ctx context.Context, item *models.PasswordItem) (*models.PasswordItem, error)
	Update(ctx context.Context, restaurantID, id string, patch models.PasswordPatch) error
	Delete(ctx context.Context, restaurantID, id string) error
}
