package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/promco/backend/internal/auth/middleware"
	"github.com/promco/backend/internal/models"
	"go.uber.org/zap"
)

// ParametersPolicy mirrors MachinesPolicy for the parameter catalogue
var ParametersPolicy = ResourcePolicy{
	Path:        "/parameters",
	Name:        "Parameter",
	IDField:     "parameterId",
	ReadRoles:   middleware.AnyRole,
	WriteRoles:  []models.Role{models.RoleAdmin, models.RoleManager},
	DeleteRoles: []models.Role{models.RoleAdmin},
}

// ParameterService is the interface that wraps parameter business logic
type ParameterService interface {
	ResourceService[models.Parameter, models.ParameterRequest]
	// Method QualifiedValues returns the value bands of a parameter.
	QualifiedValues(ctx context.Context, id int) ([]models.QualifiedValue, error)
}

// ParametersHandler serves the parameters resource
type ParametersHandler struct {
	*ResourceHandler[models.Parameter, models.ParameterRequest]
	service ParameterService
}

// NewParametersHandler creates the parameters handler
func NewParametersHandler(svc ParameterService, gate *middleware.Gate, logger *zap.Logger) *ParametersHandler {
	return &ParametersHandler{
		ResourceHandler: NewResourceHandler[models.Parameter, models.ParameterRequest](svc, gate, ParametersPolicy, logger),
		service:         svc,
	}
}

func (h *ParametersHandler) Routes() []middleware.Route {
	return append(h.ResourceHandler.Routes(), middleware.Route{
		Method:  http.MethodGet,
		Pattern: ParametersPolicy.Path + "/{id}/qualified-values",
		Roles:   middleware.AnyRole,
		Handler: h.QualifiedValues,
	})
}

// RegisterRoutes registers the parameter routes
// Note: This assumes the router is already scoped to /api
func (h *ParametersHandler) RegisterRoutes(r chi.Router) {
	h.gate.Mount(r, h.Routes())
}

// QualifiedValues handles GET /api/parameters/{id}/qualified-values
// @Summary Parameter qualified values
// @Tags parameters
// @Produce json
// @Security BearerAuth
// @Param id path int true "Parameter ID"
// @Success 200 {array} models.QualifiedValue
// @Failure 404 {object} models.ErrorResponse "Parameter not found"
// @Router /api/parameters/{id}/qualified-values [get]
func (h *ParametersHandler) QualifiedValues(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	values, err := h.service.QualifiedValues(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err, ParametersPolicy.Name)
		return
	}
	h.respondJSON(w, http.StatusOK, values)
}
