package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the bcrypt work factor used when configuration does
// not override it.
const DefaultBcryptCost = 10

// HashPassword derives a one-way salted bcrypt hash of the given password.
//
// Cost values outside bcrypt's supported range fall back to
// [DefaultBcryptCost]. Hashing failures are not retried; the wrapped error
// propagates to the caller.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// The comparison is delegated to bcrypt and is safe against timing attacks.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
