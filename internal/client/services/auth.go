// Package services contains application services for the console client.
// This file defines the auth gate: resolving a persisted session, signing
// in and out, and keeping the locally stored token pair current.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/FBurak/Restaurant-Web/internal/client/client"
	"github.com/FBurak/Restaurant-Web/internal/client/models"
	"github.com/FBurak/Restaurant-Web/internal/client/repositories/metadata"
	"github.com/FBurak/Restaurant-Web/internal/dbx"
	"github.com/FBurak/Restaurant-Web/internal/logging"
)

// Status of the signed-in identity.
type Status int

const (
	// StatusUnknown holds until the persisted session has been checked.
	StatusUnknown Status = iota
	StatusSignedOut
	StatusSignedIn
)

func (s Status) String() string {
	switch s {
	case StatusSignedOut:
		return "signed out"
	case StatusSignedIn:
		return "signed in"
	}
	return "unknown"
}

type Identity struct {
	UserID string
	Email  string
}

type AuthState struct {
	Status   Status
	Identity Identity
}

// AuthService defines authentication operations for the console.
//
// Contract:
//   - Resolve: exchange a persisted refresh token for a new session.
//   - SignIn: authenticate with email and password and persist the session.
//   - SignOut: revoke the refresh token and forget the local session.
//   - Ping: check server liveness.
//
// All methods honor context cancellation and timeouts.
type AuthService interface {
	State() AuthState
	Resolve(ctx context.Context) (AuthState, error)
	SignIn(ctx context.Context, email, password string) (AuthState, error)
	SignOut(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is backed by a remote Client and the local session database.
type authService struct {
	client client.Client
	db     *sql.DB
	log    logging.Logger

	mu    sync.Mutex
	state AuthState
	// saved is the refresh token last written to disk.
	saved string
}

// NewAuthService binds the service to c and db. Every token pair c obtains
// from now on is persisted.
func NewAuthService(c client.Client, db *sql.DB, log logging.Logger) AuthService {
	if log == nil {
		log = logging.NewDiscard()
	}
	a := &authService{client: c, db: db, log: log.With("module", "auth")}
	c.OnSession(func(s models.Session) {
		ctx := context.Background()
		if err := a.persist(ctx, s); err != nil {
			a.log.Error(ctx, "persist session", "error", err)
		}
	})
	return a
}

func (a *authService) getMetadataRepo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (a *authService) State() AuthState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *authService) setState(st AuthState) AuthState {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = st
	return st
}

func signedIn(s *models.Session) AuthState {
	return AuthState{Status: StatusSignedIn, Identity: Identity{UserID: s.UserID, Email: s.Email}}
}

// persist writes the session in one transaction unless its refresh token
// is already stored.
func (a *authService) persist(ctx context.Context, s models.Session) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if s.RefreshToken == "" || s.RefreshToken == a.saved {
		return nil
	}

	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.SaveSession(ctx, a.getMetadataRepo(tx), metadata.StoredSession{
			UserID:       s.UserID,
			Email:        s.Email,
			RefreshToken: s.RefreshToken,
		})
	})
	if err != nil {
		return err
	}
	a.saved = s.RefreshToken
	return nil
}

func (a *authService) forget(ctx context.Context) error {
	a.mu.Lock()
	a.saved = ""
	a.mu.Unlock()
	return a.getMetadataRepo(a.db).Clear(ctx)
}

// Resolve signs in with the stored refresh token. A missing or rejected
// token resolves to SignedOut. When the server cannot be reached the state
// is SignedOut, the error is returned and the token is kept.
func (a *authService) Resolve(ctx context.Context) (AuthState, error) {
	stored, ok, err := metadata.LoadSession(ctx, a.getMetadataRepo(a.db))
	if err != nil {
		return a.setState(AuthState{Status: StatusSignedOut}), fmt.Errorf("read session: %w", err)
	}
	if !ok {
		return a.setState(AuthState{Status: StatusSignedOut}), nil
	}

	s, err := a.client.Resume(ctx, stored.RefreshToken)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			a.log.Info(ctx, "stored session rejected", "email", stored.Email)
			if cerr := a.forget(ctx); cerr != nil {
				return a.setState(AuthState{Status: StatusSignedOut}), cerr
			}
			return a.setState(AuthState{Status: StatusSignedOut}), nil
		}
		return a.setState(AuthState{Status: StatusSignedOut}), err
	}

	if err := a.persist(ctx, *s); err != nil {
		return a.setState(signedIn(s)), fmt.Errorf("session saving error: %w", err)
	}
	return a.setState(signedIn(s)), nil
}

// SignIn authenticates with the trimmed email and persists the session.
func (a *authService) SignIn(ctx context.Context, email, password string) (AuthState, error) {
	email = strings.TrimSpace(email)

	s, err := a.client.Login(ctx, email, password)
	if err != nil {
		return a.setState(AuthState{Status: StatusSignedOut}), fmt.Errorf("login error: %w", err)
	}

	st := a.setState(signedIn(s))
	if err := a.persist(ctx, *s); err != nil {
		return st, fmt.Errorf("session saving error: %w", err)
	}
	return st, nil
}

// SignOut revokes the session server-side and clears local data. Local
// data is cleared even when the server call fails.
func (a *authService) SignOut(ctx context.Context) error {
	rerr := a.client.Logout(ctx)
	a.setState(AuthState{Status: StatusSignedOut})

	if err := a.forget(ctx); err != nil {
		return err
	}
	if rerr != nil {
		a.log.Warn(ctx, "logout not confirmed by server", "error", rerr)
	}
	return nil
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
