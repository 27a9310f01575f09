package auth

import (
	"fmt"

	"github.com/yigit/unirecords/internal/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the cost used when hashing passwords
const BcryptCost = 12

// MaxPasswordBytes is the longest password bcrypt will hash
const MaxPasswordBytes = 72

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", apperrors.NewCustomError(apperrors.ErrInvalidPassword,
			fmt.Sprintf("Password must be at most %d bytes", MaxPasswordBytes))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches the stored hash. A malformed
// hash never matches.
func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
