package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/promco/backend/internal/auth/service"
	"github.com/promco/backend/internal/models"
)

// emailRegex validates email format
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// maxPasswordBytes is the longest input bcrypt accepts
const maxPasswordBytes = 72

// maxProfilePictureBytes matches the users.profile_picture column
const maxProfilePictureBytes = 512

func validateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return &models.ValidationError{Field: "email", Message: "Invalid email format"}
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) > maxPasswordBytes {
		return &models.ValidationError{Field: "password", Message: "Password must be at most 72 bytes"}
	}
	return nil
}

// createUser validates a creation request and stores the user with a hashed password
func createUser(ctx context.Context, repo UserRepository, hasher *service.PasswordHasher, req *models.CreateUserRequest) (int, error) {
	username := strings.TrimSpace(req.Username)
	email := models.NormalizeEmail(req.Email)
	if username == "" || email == "" || req.Password == "" || strings.TrimSpace(req.Role) == "" {
		return 0, &models.ValidationError{Message: "All fields are required"}
	}

	if err := validateEmail(email); err != nil {
		return 0, err
	}
	if err := validatePassword(req.Password); err != nil {
		return 0, err
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		return 0, err
	}

	exists, err := repo.ExistsByEmail(ctx, email)
	if err != nil {
		return 0, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return 0, fmt.Errorf("email %q: %w", email, models.ErrAlreadyExists)
	}

	hash, err := hasher.Hash(req.Password)
	if err != nil {
		return 0, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := repo.Create(ctx, user); err != nil {
		return 0, err
	}

	return user.ID, nil
}
