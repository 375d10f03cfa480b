package password

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/resource-server/internal/model"
)

// DefaultCost is the bcrypt cost used when none is configured.
const DefaultCost = 10

// maxInputBytes is the longest input bcrypt accepts.
const maxInputBytes = 72

var (
	ErrEmptyPassword = errors.New("password must not be empty")
	ErrMismatch      = errors.New("password does not match hash")
)

// Bcrypt hashes passwords with a fixed bcrypt cost.
type Bcrypt struct {
	cost int
}

var _ model.PasswordHasher = (*Bcrypt)(nil)

// NewBcrypt returns a hasher with the given cost, clamped to bcrypt's valid range.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash returns the salted bcrypt hash of password.
func (b *Bcrypt) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	h, err := bcrypt.GenerateFromPassword(prepare(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(h), nil
}

// Compare reports ErrMismatch when password does not match hash.
func (b *Bcrypt) Compare(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), prepare(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return fmt.Errorf("failed to compare password: %w", err)
	}
	return nil
}

// prepare returns the bcrypt input for password. Passwords over the bcrypt
// limit are replaced by their base64 SHA-256 digest, so every byte counts.
func prepare(password string) []byte {
	if len(password) <= maxInputBytes {
		return []byte(password)
	}
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}
