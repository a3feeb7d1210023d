// Package cryptox hashes and verifies account passwords with argon2id.
package cryptox

import (
	"crypto/subtle"

	"github.com/FBurak/Restaurant-Web/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	SaltSize = 16
	KeySize  = 32
)

// DeriveKey stretches password with salt using argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, KeySize)
}

// NewSalt returns SaltSize random bytes.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// HashPassword derives a password hash with a fresh salt.
func HashPassword(password []byte) (hash, salt []byte) {
	salt = NewSalt()
	return DeriveKey(password, salt), salt
}

// VerifyPassword reports whether password matches hash under salt.
// The comparison runs in constant time.
func VerifyPassword(password, salt, hash []byte) bool {
	if len(hash) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(DeriveKey(password, salt), hash) == 1
}
