package models

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by repositories, services and handlers.
// Callers match them with errors.Is.
var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrUnavailable        = errors.New("temporarily unavailable")
)

// ErrRoleChange is returned when a non-admin tries to change a role
var ErrRoleChange = fmt.Errorf("%w: only admins can change roles", ErrForbidden)

// ValidationError carries a field-level hint for malformed input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Is makes every ValidationError match ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ErrorResponse is the JSON body of every failed request
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// MessageResponse is a body carrying only a confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// UserUpdatedResponse is returned after a user update
type UserUpdatedResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}
