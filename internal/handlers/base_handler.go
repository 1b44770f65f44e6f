package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/promco/backend/internal/auth/middleware"
	"github.com/promco/backend/internal/middlewares"
	"github.com/promco/backend/internal/models"
	"go.uber.org/zap"
)

// Client-facing error messages
const (
	msgInvalidCredentials = "Invalid email or password"
	msgAccessDenied       = "Access denied"
	msgRoleChange         = "Only admins can change roles"
	msgUnavailable        = "Service temporarily unavailable"
	msgInternal           = "An error occurred on the server"
	msgInvalidBody        = "Invalid request body"
	msgInvalidID          = "Invalid id"
)

// BaseHandler carries the helpers shared by every handler
type BaseHandler struct {
	logger *zap.Logger
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	middlewares.WriteError(w, status, message)
}

// respondServiceError maps a service error to a status and a generic message.
// resource names the entity in not found and conflict messages.
func (h *BaseHandler) respondServiceError(w http.ResponseWriter, r *http.Request, err error, resource string) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		h.respondError(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, models.ErrInvalidCredentials):
		h.respondError(w, http.StatusUnauthorized, msgInvalidCredentials)
	case errors.Is(err, models.ErrRoleChange):
		h.respondError(w, http.StatusForbidden, msgRoleChange)
	case errors.Is(err, models.ErrForbidden):
		h.respondError(w, http.StatusForbidden, msgAccessDenied)
	case errors.Is(err, models.ErrNotFound):
		h.respondError(w, http.StatusNotFound, resource+" not found")
	case errors.Is(err, models.ErrAlreadyExists):
		h.respondError(w, http.StatusConflict, resource+" already exists")
	case errors.Is(err, models.ErrUnavailable):
		h.logger.Warn("store unavailable",
			zap.Error(err),
			zap.String("request_id", middlewares.GetRequestID(r.Context())),
		)
		w.Header().Set("Retry-After", "5")
		h.respondError(w, http.StatusServiceUnavailable, msgUnavailable)
	default:
		h.logger.Error("request failed",
			zap.Error(err),
			zap.String("request_id", middlewares.GetRequestID(r.Context())),
			zap.String("path", r.URL.Path),
		)
		h.respondError(w, http.StatusInternalServerError, msgInternal)
	}
}

// decodeJSON reads the request body into dst, answering 400 on failure
// and 413 when the body runs past the router's size limit
func (h *BaseHandler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if middlewares.IsBodyTooLarge(err) {
			h.respondError(w, http.StatusRequestEntityTooLarge, middlewares.MsgBodyTooLarge)
			return false
		}
		h.logger.Debug("invalid request body", zap.Error(err))
		h.respondError(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	return true
}

// pathID parses the {id} URL parameter, answering 400 when it is not a positive integer
func (h *BaseHandler) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		h.respondError(w, http.StatusBadRequest, msgInvalidID)
		return 0, false
	}
	return id, true
}

// principal returns the caller established by the gate
func principal(r *http.Request) models.Principal {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		return models.Principal{}
	}
	return models.Principal{UserID: claims.UserID, Role: claims.Role}
}
