package models

import (
	"strings"
	"time"
)

// Role is a member of the closed set of roles known to the system
type Role string

// Role constants
const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleOperator Role = "operator"
	RoleUser     Role = "user"
)

// Roles lists every known role in descending privilege order
var Roles = []Role{RoleAdmin, RoleManager, RoleOperator, RoleUser}

// Valid reports whether the role belongs to the closed role set
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleOperator, RoleUser:
		return true
	}
	return false
}

// ParseRole converts a raw string into a Role.
// Unknown values are rejected rather than mapped to a default.
func ParseRole(s string) (Role, error) {
	role := Role(strings.TrimSpace(s))
	if !role.Valid() {
		return "", &ValidationError{Field: "role", Message: "role must be one of admin, manager, operator, user"}
	}
	return role, nil
}

// NormalizeEmail is the single email normalization rule used on every read and write
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// User represents a user in the system
type User struct {
	ID             int       `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"` // Never serialize password hash
	Role           Role      `json:"role"`
	ProfilePicture *string   `json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
}

// UserResponse is the public view of a user
type UserResponse struct {
	ID             int       `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	ProfilePicture *string   `json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Public returns the user without its password hash
func (u *User) Public() UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Role:           u.Role,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
	}
}

// LoginRequest represents a login request body
type LoginRequest struct {
	Email    string `json:"email" example:"admin@example.com"`
	Password string `json:"password" example:"adminpass"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// CreateUserRequest is used both by registration and by admin user creation
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateUserRequest represents a partial user update.
// Empty fields are left untouched.
type UpdateUserRequest struct {
	Username       string `json:"username,omitempty"`
	Email          string `json:"email,omitempty"`
	Role           string `json:"role,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// CreatedResponse is returned by registration and admin user creation.
// Generic resources answer with their own ID key, see handlers.ResourcePolicy.
type CreatedResponse struct {
	Message string `json:"message"`
	UserID  int    `json:"userId"`
}

// GetID returns the user ID
func (u *User) GetID() int { return u.ID }

// SetID sets the user ID
func (u *User) SetID(id int) { u.ID = id }

// Principal is the authenticated caller of a request
type Principal struct {
	UserID int
	Role   Role
}

// IsAdmin reports whether the caller has the admin role
func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }
