package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/promco/backend/internal/auth/middleware"
	"github.com/promco/backend/internal/models"
	"go.uber.org/zap"
)

// UserService is the interface that wraps methods for user administration.
type UserService interface {
	// Method List returns every user without password hashes.
	List(ctx context.Context) ([]models.UserResponse, error)
	// Method Get returns one user.
	//
	// "actor" is the caller; non-admins may only read themselves and get models.ErrForbidden otherwise.
	Get(ctx context.Context, actor models.Principal, userID int) (*models.UserResponse, error)
	// Method Create adds a user and returns its ID.
	Create(ctx context.Context, req *models.CreateUserRequest) (int, error)
	// Method Update changes username, email or role of a user.
	//
	// Non-admins may only update themselves and get models.ErrRoleChange when the request carries a role.
	Update(ctx context.Context, actor models.Principal, userID int, req *models.UpdateUserRequest) (*models.UserResponse, error)
	// Method Delete removes a user.
	Delete(ctx context.Context, userID int) error
}

// UsersHandler handles user administration requests
type UsersHandler struct {
	BaseHandler
	service UserService
	gate    *middleware.Gate
}

// NewUsersHandler creates a new users handler
func NewUsersHandler(svc UserService, gate *middleware.Gate, logger *zap.Logger) *UsersHandler {
	return &UsersHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
		gate:        gate,
	}
}

// RegisterRoutes registers all user routes
// Note: This assumes the router is already scoped to /api
func (h *UsersHandler) RegisterRoutes(r chi.Router) {
	admin := []models.Role{models.RoleAdmin}

	h.gate.Mount(r, []middleware.Route{
		{Method: http.MethodGet, Pattern: "/users", Roles: admin, Handler: h.List},
		{Method: http.MethodGet, Pattern: "/users/{id}", Roles: middleware.AnyRole, Handler: h.Get},
		{Method: http.MethodPost, Pattern: "/users", Roles: admin, Handler: h.Create},
		{Method: http.MethodPut, Pattern: "/users/{id}", Roles: middleware.AnyRole, Handler: h.Update},
		{Method: http.MethodDelete, Pattern: "/users/{id}", Roles: admin, Handler: h.Delete},
	})
}

// List handles GET /users
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.UserResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /api/users [get]
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err, "User")
		return
	}
	h.respondJSON(w, http.StatusOK, users)
}

// Get handles GET /users/{id}
// @Summary Get a user
// @Description Admins may read any user, everyone else only themselves
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} models.UserResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/users/{id} [get]
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	user, err := h.service.Get(r.Context(), principal(r), id)
	if err != nil {
		h.respondServiceError(w, r, err, "User")
		return
	}
	h.respondJSON(w, http.StatusOK, user)
}

// Create handles POST /users
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateUserRequest true "New user"
// @Success 201 {object} models.CreatedResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/users [post]
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	id, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, r, err, "User")
		return
	}

	h.respondJSON(w, http.StatusCreated, models.CreatedResponse{
		Message: "User created successfully",
		UserID:  id,
	})
}

// Update handles PUT /users/{id}
// @Summary Update a user
// @Description Users may update themselves; only admins may change roles
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body models.UpdateUserRequest true "Fields to change"
// @Success 200 {object} models.UserUpdatedResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/users/{id} [put]
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	user, err := h.service.Update(r.Context(), principal(r), id, &req)
	if err != nil {
		h.respondServiceError(w, r, err, "User")
		return
	}

	h.respondJSON(w, http.StatusOK, models.UserUpdatedResponse{
		Message: "User updated successfully",
		User:    *user,
	})
}

// Delete handles DELETE /users/{id}
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/users/{id} [delete]
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err, "User")
		return
	}

	h.respondJSON(w, http.StatusOK, models.MessageResponse{Message: "User deleted successfully"})
}
