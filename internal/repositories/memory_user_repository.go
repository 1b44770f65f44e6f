package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/promco/backend/internal/models"
	"go.uber.org/zap"
)

// memoryUserRepository is the dev mode credential store.
// It implements the same contract as the MySQL repository.
type memoryUserRepository struct {
	store  *memoryStore[models.User, *models.User]
	logger *zap.Logger
}

// NewMemoryUserRepository creates an in-memory user repository seeded with users.
// Seed users get sequential IDs in the given order.
func NewMemoryUserRepository(logger *zap.Logger, seed ...models.User) *memoryUserRepository {
	repo := &memoryUserRepository{
		store:  newMemoryStore[models.User](),
		logger: logger,
	}
	for _, u := range seed {
		u.Email = models.NormalizeEmail(u.Email)
		if u.CreatedAt.IsZero() {
			u.CreatedAt = time.Now().UTC()
		}
		repo.store.insert(u, nil)
	}
	return repo
}

func sameEmail(email string) func(*models.User) bool {
	return func(u *models.User) bool { return u.Email == email }
}

// GetByEmail retrieves a user by email
func (r *memoryUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", mapDBError(ctx, err))
	}

	user, ok := r.store.find(sameEmail(email))
	if !ok {
		return nil, fmt.Errorf("user: %w", models.ErrNotFound)
	}
	return &user, nil
}

// GetByID retrieves a user by ID
func (r *memoryUserRepository) GetByID(ctx context.Context, userID int) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", mapDBError(ctx, err))
	}

	user, ok := r.store.get(userID)
	if !ok {
		return nil, fmt.Errorf("user %d: %w", userID, models.ErrNotFound)
	}
	return &user, nil
}

// GetAll retrieves every user ordered by ID
func (r *memoryUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to query users: %w", mapDBError(ctx, err))
	}
	return r.store.list(), nil
}

// ExistsByEmail checks if a user exists with the given email
func (r *memoryUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", mapDBError(ctx, err))
	}
	_, ok := r.store.find(sameEmail(email))
	return ok, nil
}

// Create stores a new user; the email must be unique
func (r *memoryUserRepository) Create(ctx context.Context, user *models.User) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to create user: %w", mapDBError(ctx, err))
	}

	candidate := *user
	candidate.CreatedAt = time.Now().UTC().Truncate(time.Second)

	stored, ok := r.store.insert(candidate, sameEmail(candidate.Email))
	if !ok {
		return fmt.Errorf("email %q: %w", candidate.Email, models.ErrAlreadyExists)
	}

	r.logger.Debug("user created in memory store", zap.Int("user_id", stored.ID))
	user.ID = stored.ID
	user.CreatedAt = stored.CreatedAt
	return nil
}

// Update writes username, email, role and profile picture of an existing user
func (r *memoryUserRepository) Update(ctx context.Context, user *models.User) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to update user: %w", mapDBError(ctx, err))
	}

	existing, ok := r.store.get(user.ID)
	if !ok {
		return fmt.Errorf("user %d: %w", user.ID, models.ErrNotFound)
	}
	existing.Username = user.Username
	existing.Email = user.Email
	existing.Role = user.Role
	existing.ProfilePicture = user.ProfilePicture

	found, conflicted := r.store.replace(existing, sameEmail(existing.Email))
	switch {
	case !found:
		return fmt.Errorf("user %d: %w", user.ID, models.ErrNotFound)
	case conflicted:
		return fmt.Errorf("email %q: %w", existing.Email, models.ErrAlreadyExists)
	}
	return nil
}

// Delete removes a user by ID
func (r *memoryUserRepository) Delete(ctx context.Context, userID int) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to delete user: %w", mapDBError(ctx, err))
	}
	if !r.store.remove(userID) {
		return fmt.Errorf("user %d: %w", userID, models.ErrNotFound)
	}
	return nil
}
