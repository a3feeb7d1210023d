// Package gallery stores the ordered gallery images of a restaurant.
package gallery

import (
	"context"
	"fmt"

	"github.com/FBurak/Restaurant-Web/internal/common"
	"github.com/FBurak/Restaurant-Web/internal/dbx"
	"github.com/FBurak/Restaurant-Web/internal/server/models"
	"github.com/google/uuid"
)

var newID = uuid.NewString

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns the items in display order.
func (r *PostgresRepository) List(ctx context.Context, restaurantID string) ([]models.GalleryItem, error) {
	query :=
		`SELECT id, url, sort_order, created_at
		 FROM gallery_items
		 WHERE restaurant_id = $1
		 ORDER BY sort_order, created_at`

	rows, err := r.db.QueryContext(ctx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := []models.GalleryItem{}
	for rows.Next() {
		item := models.GalleryItem{RestaurantID: restaurantID}
		if err := rows.Scan(&item.ID, &item.URL, &item.SortOrder, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return items, nil
}

// Create appends item with the sort order the caller chose and assigns its id.
func (r *PostgresRepository) Create(ctx context.Context, item *models.GalleryItem) (*models.GalleryItem, error) {
	query :=
		`INSERT INTO gallery_items (id, restaurant_id, url, sort_order)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`

	id := newID()
	if err := r.db.QueryRowContext(ctx, query, id, item.RestaurantID, item.URL, item.SortOrder).Scan(&item.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	item.ID = id
	return item, nil
}

// Delete removes exactly one item. Other items keep their sort order.
func (r *PostgresRepository) Delete(ctx context.Context, restaurantID, id string) error {
	query :=
		`DELETE FROM gallery_items
		 WHERE restaurant_id = $1 AND id = $2`

	res, err := r.db.ExecContext(ctx, query, restaurantID, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
