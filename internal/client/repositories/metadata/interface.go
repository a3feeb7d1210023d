package metadata

import (
	"context"
)

// Keys of the persisted sign-in session.
const (
	KeyUserID       = "user_id"
	KeyEmail        = "email"
	KeyRefreshToken = "refresh_token"
)

// sessionKeys lists every key SaveSession writes.
var sessionKeys = []string{KeyUserID, KeyEmail, KeyRefreshToken}

// Repository is the key/value table of the local session database.
// Get returns (nil, nil) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context) error
}
