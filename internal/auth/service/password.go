package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrPasswordMismatch means the hash is well formed but does not match
	ErrPasswordMismatch = errors.New("password mismatch")
	// ErrCredentialFormat means the stored hash is not a bcrypt hash
	ErrCredentialFormat = errors.New("malformed credential hash")
)

// PasswordHasher hashes and verifies passwords with bcrypt
type PasswordHasher struct {
	cost      int
	dummyHash []byte
}

// NewPasswordHasher creates a hasher with the given bcrypt cost.
// A dummy hash is computed once so lookups of unknown users cost the same as real comparisons.
func NewPasswordHasher(cost int) (*PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte("promco-dummy-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to generate dummy hash: %w", err)
	}

	return &PasswordHasher{
		cost:      cost,
		dummyHash: dummy,
	}, nil
}

// Hash returns the salted bcrypt hash of a plaintext password
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare checks plaintext against hash and tells a mismatch apart from a malformed hash.
// The distinction is for logs only; callers answer both the same way.
func (h *PasswordHasher) Compare(plaintext, hash string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrCredentialFormat, r)
		}
	}()

	if _, costErr := bcrypt.Cost([]byte(hash)); costErr != nil {
		// Keep the timing of a real comparison
		h.CompareDummy(plaintext)
		return fmt.Errorf("%w: %w", ErrCredentialFormat, costErr)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return fmt.Errorf("%w: %w", ErrCredentialFormat, err)
	}

	return nil
}

// Verify reports whether plaintext matches hash. It never fails open.
func (h *PasswordHasher) Verify(plaintext, hash string) bool {
	return h.Compare(plaintext, hash) == nil
}

// CompareDummy burns one bcrypt comparison against the dummy hash
func (h *PasswordHasher) CompareDummy(plaintext string) {
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(plaintext))
}
