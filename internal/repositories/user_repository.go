package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/promco/backend/internal/models"
	"go.uber.org/zap"
)

// userRepository is the MySQL backed credential store
type userRepository struct {
	db      *sql.DB
	logger  *zap.Logger
	timeout time.Duration
}

// NewUserRepository creates a new user repository.
// Every query is bounded by timeout.
func NewUserRepository(db *sql.DB, logger *zap.Logger, timeout time.Duration) *userRepository {
	return &userRepository{
		db:      db,
		logger:  logger,
		timeout: timeout,
	}
}

const userColumns = `id, username, email, password_hash, role, profile_picture, created_at`

func scanUser(row interface{ Scan(...any) error }, user *models.User) error {
	var picture sql.NullString
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&picture,
		&user.CreatedAt,
	)
	if err != nil {
		return err
	}
	if picture.Valid {
		user.ProfilePicture = &picture.String
	}
	return nil
}

// GetByEmail retrieves a user by exact (already normalized) email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM users WHERE email = ? LIMIT 1`

	user := &models.User{}
	err := scanUser(r.db.QueryRowContext(ctx, query, email), user)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user: %w", models.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to get user by email", zap.Error(err))
		return nil, fmt.Errorf("failed to get user by email: %w", mapDBError(ctx, err))
	}

	return user, nil
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, userID int) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	user := &models.User{}
	err := scanUser(r.db.QueryRowContext(ctx, query, userID), user)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %d: %w", userID, models.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to get user by id", zap.Error(err), zap.Int("user_id", userID))
		return nil, fmt.Errorf("failed to get user by id: %w", mapDBError(ctx, err))
	}

	return user, nil
}

// GetAll retrieves every user ordered by ID
func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query users", zap.Error(err))
		return nil, fmt.Errorf("failed to query users: %w", mapDBError(ctx, err))
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := scanUser(rows, &user); err != nil {
			r.logger.Error("failed to scan user", zap.Error(err))
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", mapDBError(ctx, err))
	}

	return users, nil
}

// ExistsByEmail checks if a user exists with the given email
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		r.logger.Error("failed to check email existence", zap.Error(err))
		return false, fmt.Errorf("failed to check email existence: %w", mapDBError(ctx, err))
	}

	return exists, nil
}

// Create inserts a new user and fills its ID and creation time
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO users (username, email, password_hash, role, profile_picture, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	createdAt := time.Now().UTC().Truncate(time.Second)
	result, err := r.db.ExecContext(ctx, query,
		user.Username, user.Email, user.PasswordHash, user.Role, user.ProfilePicture, createdAt,
	)
	if err != nil {
		r.logger.Error("failed to create user", zap.Error(err))
		return fmt.Errorf("failed to create user: %w", mapDBError(ctx, err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	user.ID = int(id)
	user.CreatedAt = createdAt
	return nil
}

// Update writes username, email, role and profile picture of an existing user
func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `UPDATE users SET username = ?, email = ?, role = ?, profile_picture = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, user.Username, user.Email, user.Role, user.ProfilePicture, user.ID)
	if err != nil {
		r.logger.Error("failed to update user", zap.Error(err), zap.Int("user_id", user.ID))
		return fmt.Errorf("failed to update user: %w", mapDBError(ctx, err))
	}

	return checkAffected(result, fmt.Sprintf("user %d", user.ID))
}

// Delete removes a user by ID
func (r *userRepository) Delete(ctx context.Context, userID int) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	if err != nil {
		r.logger.Error("failed to delete user", zap.Error(err), zap.Int("user_id", userID))
		return fmt.Errorf("failed to delete user: %w", mapDBError(ctx, err))
	}

	return checkAffected(result, fmt.Sprintf("user %d", userID))
}

// checkAffected turns a zero row count into ErrNotFound.
// The DSN sets clientFoundRows so unchanged rows still count as matched.
func checkAffected(result sql.Result, what string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", what, models.ErrNotFound)
	}
	return nil
}
