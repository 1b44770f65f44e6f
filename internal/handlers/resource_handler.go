package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/promco/backend/internal/auth/middleware"
	"github.com/promco/backend/internal/models"
	"go.uber.org/zap"
)

// ResourceService is the interface that wraps CRUD business logic for one entity type.
//
// T is the stored entity, R the create/update request body.
type ResourceService[T any, R any] interface {
	// Method List returns every entity.
	List(ctx context.Context) ([]T, error)
	// Method Get returns one entity or models.ErrNotFound.
	Get(ctx context.Context, id int) (*T, error)
	// Method Create validates the request, stores a new entity and returns its ID.
	Create(ctx context.Context, req *R) (int, error)
	// Method Update validates the request and overwrites the entity with the given ID.
	Update(ctx context.Context, id int, req *R) (*T, error)
	// Method Delete removes the entity with the given ID.
	Delete(ctx context.Context, id int) error
}

// ResourcePolicy describes where a resource is mounted and who may use it
type ResourcePolicy struct {
	// Path is the collection path relative to /api, e.g. "/machines"
	Path string
	// Name is the singular display name used in messages, e.g. "Machine"
	Name string
	// IDField is the JSON key of the new ID in create responses, e.g. "machineId"
	IDField string
	// ReadRoles guard list and get, WriteRoles guard create and update.
	// A nil slice admits any authenticated role.
	ReadRoles   []models.Role
	WriteRoles  []models.Role
	DeleteRoles []models.Role
}

// ResourceHandler serves list/get/create/update/delete for one entity type
type ResourceHandler[T any, R any] struct {
	BaseHandler
	service ResourceService[T, R]
	gate    *middleware.Gate
	policy  ResourcePolicy
}

// NewResourceHandler creates a CRUD handler for the given policy
func NewResourceHandler[T any, R any](
	svc ResourceService[T, R],
	gate *middleware.Gate,
	policy ResourcePolicy,
	logger *zap.Logger,
) *ResourceHandler[T, R] {
	if policy.IDField == "" {
		policy.IDField = "id"
	}
	return &ResourceHandler[T, R]{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
		gate:        gate,
		policy:      policy,
	}
}

// Routes returns the declarative route table of the resource
func (h *ResourceHandler[T, R]) Routes() []middleware.Route {
	item := h.policy.Path + "/{id}"
	return []middleware.Route{
		{Method: http.MethodGet, Pattern: h.policy.Path, Roles: h.policy.ReadRoles, Handler: h.List},
		{Method: http.MethodGet, Pattern: item, Roles: h.policy.ReadRoles, Handler: h.Get},
		{Method: http.MethodPost, Pattern: h.policy.Path, Roles: h.policy.WriteRoles, Handler: h.Create},
		{Method: http.MethodPut, Pattern: item, Roles: h.policy.WriteRoles, Handler: h.Update},
		{Method: http.MethodDelete, Pattern: item, Roles: h.policy.DeleteRoles, Handler: h.Delete},
	}
}

// RegisterRoutes registers the resource routes
// Note: This assumes the router is already scoped to /api
func (h *ResourceHandler[T, R]) RegisterRoutes(r chi.Router) {
	h.gate.Mount(r, h.Routes())
}

func (h *ResourceHandler[T, R]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err, h.policy.Name)
		return
	}
	h.respondJSON(w, http.StatusOK, items)
}

func (h *ResourceHandler[T, R]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err, h.policy.Name)
		return
	}
	h.respondJSON(w, http.StatusOK, item)
}

func (h *ResourceHandler[T, R]) Create(w http.ResponseWriter, r *http.Request) {
	var req R
	if !h.decodeJSON(w, r, &req) {
		return
	}

	id, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, r, err, h.policy.Name)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]any{
		"message":        h.policy.Name + " created successfully",
		h.policy.IDField: id,
	})
}

func (h *ResourceHandler[T, R]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req R
	if !h.decodeJSON(w, r, &req) {
		return
	}

	item, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, r, err, h.policy.Name)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"message":                        h.policy.Name + " updated successfully",
		strings.ToLower(h.policy.Name): item,
	})
}

func (h *ResourceHandler[T, R]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err, h.policy.Name)
		return
	}

	h.respondJSON(w, http.StatusOK, models.MessageResponse{Message: h.policy.Name + " deleted successfully"})
}
