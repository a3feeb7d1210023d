// Package passwords stores the Wi-Fi and other password rows shown on a
// restaurant's site.
package passwords

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/FBurak/Restaurant-Web/internal/common"
	"github.com/FBurak/Restaurant-Web/internal/dbx"
	"github.com/FBurak/Restaurant-Web/internal/server/models"
	"github.com/google/uuid"
)

const (
	FieldTitle  = "title"
	FieldValue  = "value"
	FieldHidden = "hidden"
)

var newID = uuid.NewString

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns the rows in display order.
func (r *PostgresRepository) List(ctx context.Context, restaurantID string) ([]models.PasswordItem, error) {
	query :=
		`SELECT id, title, value, hidden, sort_order, created_at
		 FROM password_items
		 WHERE restaurant_id = $1
		 ORDER BY sort_order, created_at`

	rows, err := r.db.QueryContext(ctx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := []models.PasswordItem{}
	for rows.Next() {
		item := models.PasswordItem{RestaurantID: restaurantID}
		if err := rows.Scan(&item.ID, &item.Title, &item.Value, &item.Hidden, &item.SortOrder, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return items, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.PasswordItem) (*models.PasswordItem, error) {
	query :=
		`INSERT INTO password_items (id, restaurant_id, title, value, hidden, sort_order)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`

	id := newID()
	err := r.db.QueryRowContext(ctx, query, id, item.RestaurantID, item.Title, item.Value, item.Hidden, item.SortOrder).Scan(&item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	item.ID = id
	return item, nil
}

// Update writes the fields named in patch.Fields.
func (r *PostgresRepository) Update(ctx context.Context, restaurantID, id string, patch models.PasswordPatch) error {
	args := []any{restaurantID, id}
	sets := []string{}

	has := func(f string) bool {
		for _, x := range patch.Fields {
			if x == f {
				return true
			}
		}
		return false
	}
	for _, f := range patch.Fields {
		if f != FieldTitle && f != FieldValue && f != FieldHidden {
			return fmt.Errorf("%w: unknown field %q", common.ErrorInvalidArgument, f)
		}
	}

	if has(FieldTitle) {
		args = append(args, patch.Title)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if has(FieldValue) {
		args = append(args, patch.Value)
		sets = append(sets, fmt.Sprintf("value = $%d", len(args)))
	}
	if has(FieldHidden) {
		args = append(args, patch.Hidden)
		sets = append(sets, fmt.Sprintf("hidden = $%d", len(args)))
	}
	if len(sets) == 0 {
		return fmt.Errorf("%w: empty patch", common.ErrorInvalidArgument)
	}

	query := "UPDATE password_items SET " + strings.Join(sets, ", ") + " WHERE restaurant_id = $1 AND id = $2"

	res, err := r.db.ExecContext(ctx, query, args...)
	return affectedOne(res, err)
}

func (r *PostgresRepository) Delete(ctx context.Context, restaurantID, id string) error {
	query :=
		`DELETE FROM password_items
		 WHERE restaurant_id = $1 AND id = $2`

	res, err := r.db.ExecContext(ctx, query, restaurantID, id)
	return affectedOne(res, err)
}

func affectedOne(res sql.Result, err error) error {
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
