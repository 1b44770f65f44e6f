package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/promco/backend/internal/auth/service"
	"github.com/promco/backend/internal/models"
	"go.uber.org/zap"
)

// UserRepository is the interface that wraps methods for User table data access
type UserRepository interface {
	// Method GetByEmail retrieves a user by its normalized email.
	//
	// If user with such email does not exist, models.ErrNotFound is returned together with "nil" value.
	// If the store cannot answer in time, models.ErrUnavailable is returned.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Method GetByID retrieves a user by ID.
	//
	// If user with such ID does not exist, models.ErrNotFound is returned together with "nil" value.
	GetByID(ctx context.Context, userID int) (*models.User, error)
	// Method GetAll retrieves every user ordered by ID.
	GetAll(ctx context.Context) ([]models.User, error)
	// Method ExistsByEmail checks if a user with such email exists.
	//
	// If some error occurs during check, the error will be returned together with "false" value.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Method Create inserts a new user and fills its ID and creation time.
	//
	// A duplicate email results in models.ErrAlreadyExists.
	Create(ctx context.Context, user *models.User) error
	// Method Update writes username, email, role and profile picture of an existing user.
	//
	// If the user does not exist, models.ErrNotFound is returned.
	Update(ctx context.Context, user *models.User) error
	// Method Delete removes a user by ID.
	//
	// If the user does not exist, models.ErrNotFound is returned.
	Delete(ctx context.Context, userID int) error
}

// authService implements the login flow and registration
type authService struct {
	userRepo UserRepository
	hasher   *service.PasswordHasher
	tokens   *service.TokenGenerator
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo UserRepository,
	hasher *service.PasswordHasher,
	tokens *service.TokenGenerator,
	logger *zap.Logger,
) *authService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login verifies credentials and issues an access token.
//
// Unknown email and wrong password both return models.ErrInvalidCredentials,
// and both paths run one bcrypt comparison.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	email := models.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, &models.ValidationError{Message: "Email and password are required"}
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.hasher.CompareDummy(req.Password)
			s.logger.Debug("login failed", zap.String("reason", "unknown_email"))
			return nil, models.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.hasher.Compare(req.Password, user.PasswordHash); err != nil {
		if errors.Is(err, service.ErrCredentialFormat) {
			s.logger.Warn("stored credential is malformed", zap.Int("user_id", user.ID))
		} else {
			s.logger.Debug("login failed", zap.String("reason", "password_mismatch"), zap.Int("user_id", user.ID))
		}
		return nil, models.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		s.logger.Error("failed to issue token", zap.Error(err), zap.Int("user_id", user.ID))
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("user logged in", zap.Int("user_id", user.ID), zap.String("role", string(user.Role)))

	return &models.LoginResponse{
		Message: "Login successful",
		User:    user.Public(),
		Token:   token,
	}, nil
}

// Register creates a new account. The route is restricted to admins.
func (s *authService) Register(ctx context.Context, req *models.CreateUserRequest) (int, error) {
	return createUser(ctx, s.userRepo, s.hasher, req)
}

// Me returns the public view of the calling user
func (s *authService) Me(ctx context.Context, userID int) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := user.Public()
	return &resp, nil
}

// EnsureAdmin creates an admin account when no user with the email exists yet.
// It lets a fresh database accept its first login.
func (s *authService) EnsureAdmin(ctx context.Context, username, email, password string) error {
	exists, err := s.userRepo.ExistsByEmail(ctx, models.NormalizeEmail(email))
	if err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if exists {
		return nil
	}

	id, err := createUser(ctx, s.userRepo, s.hasher, &models.CreateUserRequest{
		Username: username,
		Email:    email,
		Password: password,
		Role:     string(models.RoleAdmin),
	})
	if err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	s.logger.Info("admin account created", zap.Int("user_id", id))
	return nil
}
