package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const BcryptCost = 10

// PasswordHasher wraps bcrypt hashing and verification. bcrypt salts each
// digest internally, so hashing the same plaintext twice yields different
// digests that both verify.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: BcryptCost}
}

// Hash hashes a plaintext password using bcrypt
func (h *PasswordHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether password matches digest. A malformed digest
// verifies as false rather than returning an error.
func (h *PasswordHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
