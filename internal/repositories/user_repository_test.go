package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/promco/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var userRowColumns = []string{"id", "username", "email", "password_hash", "role", "profile_picture", "created_at"}

// setupUserTestRepository creates a user repository with a mock database
func setupUserTestRepository(t *testing.T) (*userRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewUserRepository(db, zap.NewNop(), time.Second)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewUserRepository(t *testing.T) {
	logger := zap.NewNop()
	db := &sql.DB{}

	repo := NewUserRepository(db, logger, 5*time.Second)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
	assert.Equal(t, logger, repo.logger)
	assert.Equal(t, 5*time.Second, repo.timeout)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name          string
		email         string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		validate      func(*testing.T, *models.User)
	}{
		{
			name:  "success",
			email: "admin@example.com",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(userRowColumns).
					AddRow(1, "john_doe", "admin@example.com", "$2a$10$hash", "admin", nil, createdAt)
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \?`).
					WithArgs("admin@example.com").
					WillReturnRows(rows)
			},
			validate: func(t *testing.T, u *models.User) {
				assert.Equal(t, 1, u.ID)
				assert.Equal(t, "john_doe", u.Username)
				assert.Equal(t, models.RoleAdmin, u.Role)
				assert.Equal(t, "$2a$10$hash", u.PasswordHash)
				assert.Equal(t, createdAt, u.CreatedAt)
				assert.Nil(t, u.ProfilePicture)
			},
		},
		{
			name:  "not found",
			email: "ghost@example.com",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \?`).
					WithArgs("ghost@example.com").
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: models.ErrNotFound,
		},
		{
			name:  "bad connection is unavailable",
			email: "admin@example.com",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \?`).
					WithArgs("admin@example.com").
					WillReturnError(driver.ErrBadConn)
			},
			expectedError: models.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			user, err := repo.GetByEmail(context.Background(), tt.email)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				tt.validate(t, user)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByEmail_Timeout(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db, zap.NewNop(), 10*time.Millisecond)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \?`).
		WithArgs("admin@example.com").
		WillDelayFor(time.Second).
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	user, err := repo.GetByEmail(context.Background(), "admin@example.com")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, models.ErrUnavailable)
}

func TestUserRepository_GetByID(t *testing.T) {
	repo, mock, cleanup := setupUserTestRepository(t)
	defer cleanup()

	rows := sqlmock.NewRows(userRowColumns).
		AddRow(2, "jane_smith", "manager@example.com", "$2a$10$hash", "manager", "/uploads/jane.png", time.Now())
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \?`).WithArgs(2).WillReturnRows(rows)
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \?`).WithArgs(99).WillReturnError(sql.ErrNoRows)

	user, err := repo.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, user.Role)
	require.NotNil(t, user.ProfilePicture)
	assert.Equal(t, "/uploads/jane.png", *user.ProfilePicture)

	_, err = repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetAll(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(userRowColumns).
					AddRow(1, "john_doe", "admin@example.com", "h1", "admin", nil, time.Now()).
					AddRow(2, "jane_smith", "manager@example.com", "h2", "manager", nil, time.Now())
				mock.ExpectQuery(`SELECT (.+) FROM users ORDER BY id`).WillReturnRows(rows)
			},
			expectedCount: 2,
		},
		{
			name: "empty",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM users ORDER BY id`).
					WillReturnRows(sqlmock.NewRows(userRowColumns))
			},
			expectedCount: 0,
		},
		{
			name: "query error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM users ORDER BY id`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			users, err := repo.GetAll(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, users)
			} else {
				require.NoError(t, err)
				assert.Len(t, users, tt.expectedCount)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	repo, mock, cleanup := setupUserTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT EXISTS`).WithArgs("admin@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.ExistsByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		expectedID    int
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs("operator1", "op@example.com", "hashedpassword", "operator", nil, sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(7, 1))
			},
			expectedID: 7,
		},
		{
			name: "duplicate email",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs("operator1", "op@example.com", "hashedpassword", "operator", nil, sqlmock.AnyArg()).
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
			},
			expectedError: models.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			user := &models.User{
				Username:     "operator1",
				Email:        "op@example.com",
				PasswordHash: "hashedpassword",
				Role:         models.RoleOperator,
			}
			err := repo.Create(context.Background(), user)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Zero(t, user.ID)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedID, user.ID)
				assert.False(t, user.CreatedAt.IsZero())
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_Update(t *testing.T) {
	repo, mock, cleanup := setupUserTestRepository(t)
	defer cleanup()

	picture := "/uploads/avatars/3.png"

	mock.ExpectExec(`UPDATE users SET username = \?, email = \?, role = \?, profile_picture = \? WHERE id = \?`).
		WithArgs("new_name", "a@example.com", "manager", picture, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE users SET`).
		WithArgs("new_name", "a@example.com", "manager", nil, 404).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.User{ID: 3, Username: "new_name", Email: "a@example.com", Role: models.RoleManager, ProfilePicture: &picture})
	require.NoError(t, err)

	err = repo.Update(context.Background(), &models.User{ID: 404, Username: "new_name", Email: "a@example.com", Role: models.RoleManager})
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete(t *testing.T) {
	repo, mock, cleanup := setupUserTestRepository(t)
	defer cleanup()

	mock.ExpectExec(`DELETE FROM users WHERE id = \?`).WithArgs(3).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM users WHERE id = \?`).WithArgs(4).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 3))
	assert.ErrorIs(t, repo.Delete(context.Background(), 4), models.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMapDBError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{name: "deadline", err: context.DeadlineExceeded, expected: models.ErrUnavailable},
		{name: "bad conn", err: driver.ErrBadConn, expected: models.ErrUnavailable},
		{name: "invalid conn", err: mysql.ErrInvalidConn, expected: models.ErrUnavailable},
		{name: "duplicate", err: &mysql.MySQLError{Number: 1062}, expected: models.ErrAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapDBError(context.Background(), tt.err), tt.expected)
		})
	}

	other := errors.New("syntax error")
	assert.Equal(t, other, mapDBError(context.Background(), other))
	assert.NoError(t, mapDBError(context.Background(), nil))

	expired, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	assert.ErrorIs(t, mapDBError(expired, errors.New("canceling query due to user request")), models.ErrUnavailable)
}
