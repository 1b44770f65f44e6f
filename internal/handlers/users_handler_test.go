package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/promco/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockUserService is a mock implementation of UserService
type mockUserService struct {
	users     []models.UserResponse
	err       error
	lastActor models.Principal
	lastID    int
}

func (m *mockUserService) List(ctx context.Context) ([]models.UserResponse, error) {
	return m.users, m.err
}

func (m *mockUserService) Get(ctx context.Context, actor models.Principal, userID int) (*models.UserResponse, error) {
	m.lastActor, m.lastID = actor, userID
	if m.err != nil {
		return nil, m.err
	}
	return &models.UserResponse{ID: userID}, nil
}

func (m *mockUserService) Create(ctx context.Context, req *models.CreateUserRequest) (int, error) {
	return 9, m.err
}

func (m *mockUserService) Update(ctx context.Context, actor models.Principal, userID int, req *models.UpdateUserRequest) (*models.UserResponse, error) {
	m.lastActor, m.lastID = actor, userID
	if m.err != nil {
		return nil, m.err
	}
	return &models.UserResponse{ID: userID, Username: req.Username}, nil
}

func (m *mockUserService) Delete(ctx context.Context, userID int) error {
	m.lastID = userID
	return m.err
}

func setupUsersRouter(env *testEnv, svc UserService) chi.Router {
	r := chi.NewRouter()
	NewUsersHandler(svc, env.gate, zap.NewNop()).RegisterRoutes(r)
	return r
}

func TestUsersHandler_RolePolicy(t *testing.T) {
	env := newTestEnv(t)
	admin := env.bearer(t, 1, models.RoleAdmin)
	operator := env.bearer(t, 3, models.RoleOperator)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		authorization  string
		expectedStatus int
	}{
		{name: "admin lists", method: http.MethodGet, path: "/users", authorization: admin, expectedStatus: http.StatusOK},
		{name: "operator cannot list", method: http.MethodGet, path: "/users", authorization: operator, expectedStatus: http.StatusForbidden},
		{name: "operator reaches get", method: http.MethodGet, path: "/users/3", authorization: operator, expectedStatus: http.StatusOK},
		{name: "admin creates", method: http.MethodPost, path: "/users", body: `{}`, authorization: admin, expectedStatus: http.StatusCreated},
		{name: "operator cannot create", method: http.MethodPost, path: "/users", body: `{}`, authorization: operator, expectedStatus: http.StatusForbidden},
		{name: "operator reaches update", method: http.MethodPut, path: "/users/3", body: `{"username":"x"}`, authorization: operator, expectedStatus: http.StatusOK},
		{name: "operator cannot delete", method: http.MethodDelete, path: "/users/3", authorization: operator, expectedStatus: http.StatusForbidden},
		{name: "admin deletes", method: http.MethodDelete, path: "/users/3", authorization: admin, expectedStatus: http.StatusOK},
		{name: "no token", method: http.MethodGet, path: "/users/3", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(setupUsersRouter(env, &mockUserService{}), tt.method, tt.path, tt.body, tt.authorization)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestUsersHandler_PassesCallerToService(t *testing.T) {
	env := newTestEnv(t)
	svc := &mockUserService{}

	w := do(setupUsersRouter(env, svc), http.MethodGet, "/users/7", "", env.bearer(t, 2, models.RoleManager))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.Principal{UserID: 2, Role: models.RoleManager}, svc.lastActor)
	assert.Equal(t, 7, svc.lastID)
}

func TestUsersHandler_ServiceErrors(t *testing.T) {
	env := newTestEnv(t)
	manager := env.bearer(t, 2, models.RoleManager)

	tests := []struct {
		name            string
		method          string
		path            string
		body            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{name: "bad id", method: http.MethodGet, path: "/users/abc", expectedStatus: http.StatusBadRequest, expectedMessage: "Invalid id"},
		{name: "zero id", method: http.MethodGet, path: "/users/0", expectedStatus: http.StatusBadRequest, expectedMessage: "Invalid id"},
		{name: "other user", method: http.MethodGet, path: "/users/1", err: models.ErrForbidden, expectedStatus: http.StatusForbidden, expectedMessage: "Access denied"},
		{name: "role change", method: http.MethodPut, path: "/users/2", body: `{"role":"admin"}`, err: models.ErrRoleChange, expectedStatus: http.StatusForbidden, expectedMessage: "Only admins can change roles"},
		{name: "not found", method: http.MethodGet, path: "/users/2", err: models.ErrNotFound, expectedStatus: http.StatusNotFound, expectedMessage: "User not found"},
		{name: "conflict", method: http.MethodPut, path: "/users/2", body: `{"email":"a@b.co"}`, err: models.ErrAlreadyExists, expectedStatus: http.StatusConflict, expectedMessage: "User already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(setupUsersRouter(env, &mockUserService{err: tt.err}), tt.method, tt.path, tt.body, manager)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedMessage, decodeError(t, w).Message)
		})
	}
}

func TestUsersHandler_UpdateResponse(t *testing.T) {
	env := newTestEnv(t)

	w := do(setupUsersRouter(env, &mockUserService{}), http.MethodPut, "/users/2", `{"username":"jane"}`, env.bearer(t, 2, models.RoleManager))

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.UserUpdatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "User updated successfully", resp.Message)
	assert.Equal(t, "jane", resp.User.Username)
}
