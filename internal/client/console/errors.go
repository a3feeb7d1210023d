package console

import (
	"errors"
	"fmt"

	"github.com/FBurak/Restaurant-Web/internal/client/client"
)

// Kind classifies a failed operation.
type Kind int

const (
	AuthError Kind = iota
	StoreWriteError
	StoreReadError
	UploadError
)

func (k Kind) String() string {
	switch k {
	case AuthError:
		return "AuthError"
	case StoreWriteError:
		return "StoreWriteError"
	case StoreReadError:
		return "StoreReadError"
	case UploadError:
		return "UploadError"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var (
	ErrNotOpen     = errors.New("session is not open")
	ErrAlreadyOpen = errors.New("session is already open")
	ErrClosed      = errors.New("session is closed")
	ErrUnknownRow  = errors.New("no such row")
	ErrRowHidden   = errors.New("row is hidden; show it before editing")
)

type OpError struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// classify wraps err as kind, unless the server rejected the credentials,
// which is always an AuthError.
func classify(kind Kind, op string, err error) *OpError {
	if errors.Is(err, client.ErrUnauthorized) {
		kind = AuthError
	}
	return &OpError{Kind: kind, Op: op, Err: err}
}

// IsKind reports whether err is an *OpError of kind.
func IsKind(err error, kind Kind) bool {
	var oe *OpError
	return errors.As(err, &oe) && oe.Kind == kind
}
