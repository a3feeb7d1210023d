package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/FBurak/Restaurant-Web/internal/dbx"
)

const (
	queryGet   = `SELECT value FROM metadata WHERE key = ?`
	querySet   = `INSERT INTO metadata (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	queryClear = `DELETE FROM metadata`
)

// SQLiteRepository reads and writes the session table. It accepts a plain
// connection or a transaction.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	switch err := r.db.QueryRowContext(ctx, queryGet, key).Scan(&value); {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	if _, err := r.db.ExecContext(ctx, querySet, key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Clear forgets the stored session.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, queryClear); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
