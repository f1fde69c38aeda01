package auth

import (
	"errors"
	"fmt"

	"github.com/yigit/wish2work/internal/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
)

const (
	// BcryptCost is the hashing cost for stored passwords
	BcryptCost = 12

	// MaxPasswordBytes is the longest input bcrypt accepts
	MaxPasswordBytes = 72
)

// ErrPasswordMismatch is returned by VerifyPassword for a wrong password
var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword hashes a plaintext account password
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", apperrors.NewValidationError("password", fmt.Sprintf("password must be at most %d bytes", MaxPasswordBytes))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword returns nil when password matches the stored hash and
// ErrPasswordMismatch when it does not. A malformed hash is any other error.
func VerifyPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("comparing password hash: %w", err)
	}
}
