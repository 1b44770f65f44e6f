package services

import (
	"context"
	"strings"

	"github.com/promco/backend/internal/auth/service"
	"github.com/promco/backend/internal/models"
	"go.uber.org/zap"
)

// userService implements user administration
type userService struct {
	userRepo UserRepository
	hasher   *service.PasswordHasher
	logger   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepository, hasher *service.PasswordHasher, logger *zap.Logger) *userService {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// List returns every user without password hashes
func (s *userService) List(ctx context.Context) ([]models.UserResponse, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]models.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, users[i].Public())
	}
	return resp, nil
}

// Get returns a user. Non-admins may only read themselves.
func (s *userService) Get(ctx context.Context, actor models.Principal, userID int) (*models.UserResponse, error) {
	if !actor.IsAdmin() && actor.UserID != userID {
		return nil, models.ErrForbidden
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := user.Public()
	return &resp, nil
}

// Create adds a user on behalf of an admin
func (s *userService) Create(ctx context.Context, req *models.CreateUserRequest) (int, error) {
	id, err := createUser(ctx, s.userRepo, s.hasher, req)
	if err != nil {
		return 0, err
	}
	s.logger.Info("user created", zap.Int("user_id", id))
	return id, nil
}

// Update changes username, email, role or profile picture.
// Non-admins may only update themselves and never their role.
func (s *userService) Update(ctx context.Context, actor models.Principal, userID int, req *models.UpdateUserRequest) (*models.UserResponse, error) {
	if !actor.IsAdmin() && actor.UserID != userID {
		return nil, models.ErrForbidden
	}
	if strings.TrimSpace(req.Role) != "" && !actor.IsAdmin() {
		return nil, models.ErrRoleChange
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if username := strings.TrimSpace(req.Username); username != "" {
		user.Username = username
	}
	if req.Email != "" {
		email := models.NormalizeEmail(req.Email)
		if err := validateEmail(email); err != nil {
			return nil, err
		}
		user.Email = email
	}
	if strings.TrimSpace(req.Role) != "" {
		role, err := models.ParseRole(req.Role)
		if err != nil {
			return nil, err
		}
		user.Role = role
	}
	if picture := strings.TrimSpace(req.ProfilePicture); picture != "" {
		if len(picture) > maxProfilePictureBytes {
			return nil, &models.ValidationError{Field: "profilePicture", Message: "Profile picture must be at most 512 characters"}
		}
		user.ProfilePicture = &picture
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	resp := user.Public()
	return &resp, nil
}

// Delete removes a user
func (s *userService) Delete(ctx context.Context, userID int) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.Int("user_id", userID))
	return nil
}
