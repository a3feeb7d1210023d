package uploads

import (
	"context"

	"github.com/FBurak/Restaurant-Web/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, u *models.Upload) error
	Get(ctx context.Context, key string) (*models.Upload, error)
	MarkCompleted(ctx context.Context, key string) error
}
