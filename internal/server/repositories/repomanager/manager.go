package repomanager

import (
	"context"
	"database/sql"

	"github.com/FBurak/Restaurant-Web/internal/dbx"
	"github.com/FBurak/Restaurant-Web/internal/server/repositories/gallery"
	"github.com/FBurak/Restaurant-Web/internal/server/repositories/passwords"
	"github.com/FBurak/Restaurant-Web/internal/server/repositories/refreshtokens"
	"github.com/FBurak/Restaurant-Web/internal/server/repositories/restaurants"
	"github.com/FBurak/Restaurant-Web/internal/server/repositories/uploads"
	"github.com/FBurak/Restaurant-Web/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX so services can use
// the same repositories on a plain connection or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Restaurants(db dbx.DBTX) restaurants.Repository
	Gallery(db dbx.DBTX) gallery.Repository
	Passwords(db dbx.DBTX) passwords.Repository
	Uploads(db dbx.DBTX) uploads.Repository
}
