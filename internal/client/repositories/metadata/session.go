package metadata

import (
	"context"
	"fmt"
)

// StoredSession is the part of a sign-in session kept between runs. The
// access token is never stored; it is re-issued from RefreshToken.
type StoredSession struct {
	UserID       string
	Email        string
	RefreshToken string
}

// SaveSession writes all session keys. Callers run it inside dbx.WithTx.
func SaveSession(ctx context.Context, r Repository, s StoredSession) error {
	values := map[string]string{
		KeyUserID:       s.UserID,
		KeyEmail:        s.Email,
		KeyRefreshToken: s.RefreshToken,
	}
	for _, key := range sessionKeys {
		if err := r.Set(ctx, key, []byte(values[key])); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
	}
	return nil
}

// LoadSession reads the stored session. ok is false when no refresh token
// is stored.
func LoadSession(ctx context.Context, r Repository) (s StoredSession, ok bool, err error) {
	values := make(map[string]string, len(sessionKeys))
	for _, key := range sessionKeys {
		v, err := r.Get(ctx, key)
		if err != nil {
			return StoredSession{}, false, fmt.Errorf("load session: %w", err)
		}
		values[key] = string(v)
	}
	s = StoredSession{
		UserID:       values[KeyUserID],
		Email:        values[KeyEmail],
		RefreshToken: values[KeyRefreshToken],
	}
	return s, s.RefreshToken != "", nil
}
