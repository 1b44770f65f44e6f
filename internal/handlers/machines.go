package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/promco/backend/internal/auth/middleware"
	"github.com/promco/backend/internal/models"
	"go.uber.org/zap"
)

// MachinesPolicy opens reads to every role, writes to admins and managers and deletes to admins
var MachinesPolicy = ResourcePolicy{
	Path:        "/machines",
	Name:        "Machine",
	IDField:     "machineId",
	ReadRoles:   middleware.AnyRole,
	WriteRoles:  []models.Role{models.RoleAdmin, models.RoleManager},
	DeleteRoles: []models.Role{models.RoleAdmin},
}

// MachineService is the interface that wraps machine business logic
type MachineService interface {
	ResourceService[models.Machine, models.MachineRequest]
	// Method Maintenance returns the maintenance history of a machine, newest first.
	Maintenance(ctx context.Context, machineID int) ([]models.MaintenanceRecord, error)
	// Method Faults returns the faults reported on a machine, newest first.
	Faults(ctx context.Context, machineID int) ([]models.Fault, error)
	// Method ReportFault records an open fault reported by actor and returns its ID.
	ReportFault(ctx context.Context, actor models.Principal, machineID int, req *models.FaultRequest) (int, error)
}

// MachinesHandler serves the machines resource and its maintenance and fault records
type MachinesHandler struct {
	*ResourceHandler[models.Machine, models.MachineRequest]
	service MachineService
}

// NewMachinesHandler creates the machines handler
func NewMachinesHandler(svc MachineService, gate *middleware.Gate, logger *zap.Logger) *MachinesHandler {
	return &MachinesHandler{
		ResourceHandler: NewResourceHandler[models.Machine, models.MachineRequest](svc, gate, MachinesPolicy, logger),
		service:         svc,
	}
}

// Routes returns the CRUD routes followed by the record routes.
// Records are open to every authenticated role.
func (h *MachinesHandler) Routes() []middleware.Route {
	item := MachinesPolicy.Path + "/{id}"
	return append(h.ResourceHandler.Routes(),
		middleware.Route{Method: http.MethodGet, Pattern: item + "/maintenance", Roles: middleware.AnyRole, Handler: h.Maintenance},
		middleware.Route{Method: http.MethodGet, Pattern: item + "/faults", Roles: middleware.AnyRole, Handler: h.Faults},
		middleware.Route{Method: http.MethodPost, Pattern: item + "/faults", Roles: middleware.AnyRole, Handler: h.ReportFault},
	)
}

// RegisterRoutes registers the machine routes
// Note: This assumes the router is already scoped to /api
func (h *MachinesHandler) RegisterRoutes(r chi.Router) {
	h.gate.Mount(r, h.Routes())
}

// Maintenance handles GET /api/machines/{id}/maintenance
// @Summary Machine maintenance history
// @Tags machines
// @Produce json
// @Security BearerAuth
// @Param id path int true "Machine ID"
// @Success 200 {array} models.MaintenanceRecord
// @Failure 404 {object} models.ErrorResponse "Machine not found"
// @Router /api/machines/{id}/maintenance [get]
func (h *MachinesHandler) Maintenance(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	records, err := h.service.Maintenance(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err, MachinesPolicy.Name)
		return
	}
	h.respondJSON(w, http.StatusOK, records)
}

// Faults handles GET /api/machines/{id}/faults
// @Summary Machine faults
// @Tags machines
// @Produce json
// @Security BearerAuth
// @Param id path int true "Machine ID"
// @Success 200 {array} models.Fault
// @Failure 404 {object} models.ErrorResponse "Machine not found"
// @Router /api/machines/{id}/faults [get]
func (h *MachinesHandler) Faults(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	faults, err := h.service.Faults(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err, MachinesPolicy.Name)
		return
	}
	h.respondJSON(w, http.StatusOK, faults)
}

// ReportFault handles POST /api/machines/{id}/faults
// @Summary Report a fault
// @Description Record an open fault on a machine. The caller is stored as the reporter.
// @Tags machines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Machine ID"
// @Param request body models.FaultRequest true "Fault"
// @Success 201 {object} models.FaultCreatedResponse
// @Failure 400 {object} models.ErrorResponse "Fault description is required"
// @Failure 404 {object} models.ErrorResponse "Machine not found"
// @Router /api/machines/{id}/faults [post]
func (h *MachinesHandler) ReportFault(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req models.FaultRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	faultID, err := h.service.ReportFault(r.Context(), principal(r), id, &req)
	if err != nil {
		h.respondServiceError(w, r, err, MachinesPolicy.Name)
		return
	}
	h.respondJSON(w, http.StatusCreated, models.FaultCreatedResponse{Message: "Fault reported successfully", FaultID: faultID})
}
