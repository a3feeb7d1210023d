// Package uploads records object keys handed out for presigned uploads.
package uploads

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/FBurak/Restaurant-Web/internal/common"
	"github.com/FBurak/Restaurant-Web/internal/dbx"
	"github.com/FBurak/Restaurant-Web/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, u *models.Upload) error {
	query :=
		`INSERT INTO uploads (object_key, restaurant_id, kind, content_type, status, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6)`

	createdBy := sql.NullString{String: u.CreatedBy, Valid: u.CreatedBy != ""}
	status := u.Status
	if status == "" {
		status = models.UploadStatusPending
	}

	if _, err := r.db.ExecContext(ctx, query, u.Key, u.RestaurantID, u.Kind, u.ContentType, status, createdBy); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, key string) (*models.Upload, error) {
	query :=
		`SELECT object_key, restaurant_id, kind, content_type, status, created_by, created_at, completed_at
		 FROM uploads
		 WHERE object_key = $1`

	var (
		u         models.Upload
		createdBy sql.NullString
		completed sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, query, key).Scan(
		&u.Key, &u.RestaurantID, &u.Kind, &u.ContentType, &u.Status, &createdBy, &u.CreatedAt, &completed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	u.CreatedBy = createdBy.String
	if completed.Valid {
		t := completed.Time
		u.CompletedAt = &t
	}
	return &u, nil
}

func (r *PostgresRepository) MarkCompleted(ctx context.Context, key string) error {
	query :=
		`UPDATE uploads SET status = $2, completed_at = now()
		 WHERE object_key = $1`

	res, err := r.db.ExecContext(ctx, query, key, models.UploadStatusCompleted)
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
