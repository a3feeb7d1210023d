// Package restaurants stores restaurant website documents in PostgreSQL.
//
// Writes follow document merge semantics: only the fields named in a patch
// are written, a missing row is created on the fly, social links are merged
// key by key and updated_at is always stamped by the database.
package restaurants

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/FBurak/Restaurant-Web/internal/common"
	"github.com/FBurak/Restaurant-Web/internal/dbx"
	"github.com/FBurak/Restaurant-Web/internal/server/models"
)

// Patch field names, in the column order they are written.
const (
	FieldName              = "name"
	FieldAboutHTML         = "about_html"
	FieldGoogleBusinessURL = "google_business_url"
	FieldVideoURL          = "video_url"
	FieldSocials           = "socials"
	FieldIsVisible         = "is_visible"
	FieldHeaderImageURL    = "header_image_url"
)

var columnOrder = []string{
	FieldName, FieldAboutHTML, FieldGoogleBusinessURL, FieldVideoURL,
	FieldSocials, FieldIsVisible, FieldHeaderImageURL,
}

// ValidField reports whether f is a writable profile column.
func ValidField(f string) bool {
	for _, c := range columnOrder {
		if c == f {
			return true
		}
	}
	return false
}

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Restaurant, error) {
	query :=
		`SELECT id, name, about_html, google_business_url, video_url, jsonb_strip_nulls(socials), is_visible, header_image_url, updated_at
		 FROM restaurants
		 WHERE id = $1`

	var (
		res                   models.Restaurant
		google, video, header sql.NullString
		socials               []byte
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&res.ID, &res.Name, &res.AboutHTML, &google, &video, &socials, &res.IsVisible, &header, &res.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	res.GoogleBusinessURL = nullable(google)
	res.VideoURL = nullable(video)
	res.HeaderImageURL = nullable(header)
	res.Socials, err = decodeSocials(socials)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &res, nil
}

// CreateIfMissing inserts r unless a row with the same id exists and
// reports whether it did.
func (r *PostgresRepository) CreateIfMissing(ctx context.Context, res *models.Restaurant) (bool, error) {
	query :=
		`INSERT INTO restaurants (id, name, about_html, google_business_url, video_url, socials, is_visible, header_image_url, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7, $8, now())
		 ON CONFLICT (id) DO NOTHING`

	socials, err := encodeSocials(res.Socials)
	if err != nil {
		return false, err
	}

	result, err := r.db.ExecContext(ctx, query,
		res.ID, res.Name, res.AboutHTML, res.GoogleBusinessURL, res.VideoURL, socials, res.IsVisible, res.HeaderImageURL)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n == 1, nil
}

// Merge upserts the patched fields of restaurant id.
func (r *PostgresRepository) Merge(ctx context.Context, id string, patch models.RestaurantPatch) error {
	query, args, err := buildMerge(id, patch)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func buildMerge(id string, patch models.RestaurantPatch) (string, []any, error) {
	cols := []string{"id"}
	vals := []string{"$1"}
	sets := make([]string, 0, len(columnOrder)+1)
	args := []any{id}

	for _, f := range patch.Fields {
		if !ValidField(f) {
			return "", nil, fmt.Errorf("%w: unknown field %q", common.ErrorInvalidArgument, f)
		}
	}

	for _, col := range columnOrder {
		if !patch.Has(col) {
			continue
		}

		var v any
		switch col {
		case FieldName:
			v = patch.Name
		case FieldAboutHTML:
			v = patch.AboutHTML
		case FieldGoogleBusinessURL:
			v = patch.GoogleBusinessURL
		case FieldVideoURL:
			v = patch.VideoURL
		case FieldSocials:
			s, err := encodeSocials(patch.Socials)
			if err != nil {
				return "", nil, err
			}
			v = s
		case FieldIsVisible:
			v = patch.IsVisible
		case FieldHeaderImageURL:
			v = patch.HeaderImageURL
		}

		args = append(args, v)
		placeholder := fmt.Sprintf("$%d", len(args))
		cols = append(cols, col)

		if col == FieldSocials {
			vals = append(vals, placeholder+"::jsonb")
			sets = append(sets, "socials = jsonb_strip_nulls(restaurants.socials || EXCLUDED.socials)")
			continue
		}
		vals = append(vals, placeholder)
		sets = append(sets, col+" = EXCLUDED."+col)
	}

	if len(args) == 1 {
		return "", nil, fmt.Errorf("%w: empty patch", common.ErrorInvalidArgument)
	}

	cols = append(cols, "updated_at")
	vals = append(vals, "now()")
	sets = append(sets, "updated_at = now()")

	query := fmt.Sprintf(
		"INSERT INTO restaurants (%s) VALUES (%s) ON CONFLICT (id) DO UPDATE SET %s",
		strings.Join(cols, ", "), strings.Join(vals, ", "), strings.Join(sets, ", "))

	return query, args, nil
}

// encodeSocials renders socials as a JSON object where an empty value
// becomes null, so the merge strips that key.
func encodeSocials(in map[string]string) (string, error) {
	out := make(map[string]*string, len(in))
	for k, v := range in {
		if v == "" {
			out[k] = nil
			continue
		}
		v := v
		out[k] = &v
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encode socials: %w", err)
	}
	return string(b), nil
}

func decodeSocials(b []byte) (map[string]string, error) {
	out := map[string]string{}
	if len(b) == 0 {
		return out, nil
	}
	var raw map[string]*string
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("decode socials: %w", err)
	}
	for k, v := range raw {
		if v != nil && *v != "" {
			out[k] = *v
		}
	}
	return out, nil
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
