package uploads

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/FBurak/Restaurant-Web/internal/common"
	"github.com/FBurak/Restaurant-Web/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

const key = "uploads/kaffeewerk/header_1700000000000_front.jpg"

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	q := `(?s)^INSERT\s+INTO\s+uploads\s*\(object_key,\s*restaurant_id,\s*kind,\s*content_type,\s*status,\s*created_by\)\s*VALUES`

	mock.ExpectExec(q).
		WithArgs(key, "kaffeewerk", "header", "image/jpeg", "pending", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Create(context.Background(), &models.Upload{
		Key: key, RestaurantID: "kaffeewerk", Kind: "header", ContentType: "image/jpeg", CreatedBy: "u1",
	}))

	mock.ExpectExec(q).
		WithArgs(key, "kaffeewerk", "gallery", "image/png", "pending", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Create(context.Background(), &models.Upload{
		Key: key, RestaurantID: "kaffeewerk", Kind: "gallery", ContentType: "image/png",
	}))

	mock.ExpectExec(q).WillReturnError(errors.New("duplicate key"))
	require.Error(t, repo.Create(context.Background(), &models.Upload{Key: key}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet(t *testing.T) {
	q := `(?s)^SELECT\s+object_key,.*FROM\s+uploads\s+WHERE\s+object_key\s*=\s*\$1$`
	cols := []string{"object_key", "restaurant_id", "kind", "content_type", "status", "created_by", "created_at", "completed_at"}

	t.Run("pending", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(q).WithArgs(key).
			WillReturnRows(sqlmock.NewRows(cols).AddRow(key, "kaffeewerk", "header", "image/jpeg", "pending", "u1", time.Now(), nil))

		u, err := repo.Get(context.Background(), key)
		require.NoError(t, err)
		assert.Equal(t, "kaffeewerk", u.RestaurantID)
		assert.Equal(t, models.UploadStatusPending, u.Status)
		assert.Equal(t, "u1", u.CreatedBy)
		assert.Nil(t, u.CompletedAt)
	})

	t.Run("completed", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		done := time.Now()
		mock.ExpectQuery(q).WithArgs(key).
			WillReturnRows(sqlmock.NewRows(cols).AddRow(key, "kaffeewerk", "gallery", "image/png", "completed", nil, time.Now(), done))

		u, err := repo.Get(context.Background(), key)
		require.NoError(t, err)
		require.NotNil(t, u.CompletedAt)
		assert.True(t, u.CompletedAt.Equal(done))
		assert.Empty(t, u.CreatedBy)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(q).WithArgs(key).WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(context.Background(), key)
		require.ErrorIs(t, err, common.ErrorNotFound)
	})
}

func TestMarkCompleted(t *testing.T) {
	q := `(?s)^UPDATE\s+uploads\s+SET\s+status\s*=\s*\$2,\s*completed_at\s*=\s*now\(\)\s+WHERE\s+object_key\s*=\s*\$1$`

	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(q).WithArgs(key, "completed").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.MarkCompleted(context.Background(), key))

	mock.ExpectExec(q).WithArgs(key, "completed").WillReturnResult(sqlmock.NewResult(0, 0))
	require.ErrorIs(t, repo.MarkCompleted(context.Background(), key), common.ErrorNotFound)

	mock.ExpectExec(q).WillReturnError(errors.New("db down"))
	require.Error(t, repo.MarkCompleted(context.Background(), key))
}
