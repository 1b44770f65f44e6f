package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/promco/backend/internal/auth/middleware"
	"github.com/promco/backend/internal/models"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for authentication business logic.
type AuthService interface {
	// Method Login validates credentials and returns the public user view together with an access token.
	//
	// "req" parameter contains email and password.
	//
	// Unknown email and wrong password both return models.ErrInvalidCredentials.
	// Missing fields return a *models.ValidationError before any lookup happens.
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	// Method Register creates a new account and returns its ID.
	//
	// "req" parameter contains username, email, password and role.
	//
	// A duplicate email returns models.ErrAlreadyExists.
	Register(ctx context.Context, req *models.CreateUserRequest) (int, error)
	// Method Me returns the public view of the user with the given ID.
	Me(ctx context.Context, userID int) (*models.UserResponse, error)
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService AuthService
	gate        *middleware.Gate
	loginLimit  int
}

// NewAuthHandler creates a new auth handler.
// loginLimit caps login attempts per IP per minute; zero disables the limit.
func NewAuthHandler(authService AuthService, gate *middleware.Gate, logger *zap.Logger, loginLimit int) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{logger: logger},
		authService: authService,
		gate:        gate,
		loginLimit:  loginLimit,
	}
}

// RegisterRoutes registers all auth handler routes
// Note: This assumes the router is already scoped to /api
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	var loginMiddlewares []func(http.Handler) http.Handler
	if h.loginLimit > 0 {
		loginMiddlewares = append(loginMiddlewares, httprate.Limit(
			h.loginLimit,
			time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				h.respondError(w, http.StatusTooManyRequests, "Too many login attempts, please try again later")
			}),
		))
	}

	h.gate.Mount(r, []middleware.Route{
		{Method: http.MethodPost, Pattern: "/auth/login", Public: true, Middlewares: loginMiddlewares, Handler: h.Login},
		{Method: http.MethodPost, Pattern: "/auth/register", Roles: []models.Role{models.RoleAdmin}, Handler: h.Register},
		{Method: http.MethodGet, Pattern: "/auth/me", Roles: middleware.AnyRole, Handler: h.Me},
	})
}

// Login handles POST /auth/login
// @Summary Log in
// @Description Verify email and password and return an access token valid for 24 hours
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.ErrorResponse "Email and password are required"
// @Failure 401 {object} models.ErrorResponse "Invalid email or password"
// @Failure 429 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, r, err, "User")
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// Register handles POST /auth/register
// @Summary Register a user
// @Description Create a user account. Admin only.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateUserRequest true "New user"
// @Success 201 {object} models.CreatedResponse
// @Failure 400 {object} models.ErrorResponse "All fields are required"
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "User already exists"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	id, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, r, err, "User")
		return
	}

	h.respondJSON(w, http.StatusCreated, models.CreatedResponse{
		Message: "User registered successfully",
		UserID:  id,
	})
}

// Me handles GET /auth/me
// @Summary Current user
// @Description Return the user the access token was issued to
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.Me(r.Context(), principal(r).UserID)
	if err != nil {
		h.respondServiceError(w, r, err, "User")
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}
