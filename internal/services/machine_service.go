package services

import (
	"context"
	"strings"
	"time"

	"github.com/promco/backend/internal/models"
	"go.uber.org/zap"
)

// MachineRepository is the interface that wraps methods for Machine table data access
type MachineRepository interface {
	// Method GetAll retrieves every machine ordered by name.
	GetAll(ctx context.Context) ([]models.Machine, error)
	// Method GetByID retrieves a machine by ID.
	//
	// If machine with such ID does not exist, models.ErrNotFound is returned together with "nil" value.
	GetByID(ctx context.Context, id int) (*models.Machine, error)
	// Method Create inserts a new machine and fills its ID and creation time.
	Create(ctx context.Context, machine *models.Machine) error
	// Method Update overwrites every mutable field of an existing machine.
	//
	// If the machine does not exist, models.ErrNotFound is returned.
	Update(ctx context.Context, machine *models.Machine) error
	// Method Delete removes a machine by ID.
	//
	// If the machine does not exist, models.ErrNotFound is returned.
	Delete(ctx context.Context, id int) error
}

// MachineRecordRepository is the interface that wraps methods for machine maintenance history and faults
type MachineRecordRepository interface {
	// Method GetMaintenance retrieves the maintenance history of a machine, newest first.
	GetMaintenance(ctx context.Context, machineID int) ([]models.MaintenanceRecord, error)
	// Method GetFaults retrieves the faults reported on a machine, newest first.
	GetFaults(ctx context.Context, machineID int) ([]models.Fault, error)
	// Method CreateFault inserts a fault and fills its ID.
	CreateFault(ctx context.Context, fault *models.Fault) error
}

type machineService struct {
	repo    MachineRepository
	records MachineRecordRepository
	logger  *zap.Logger
	now     func() time.Time
}

// NewMachineService creates a new machine service
func NewMachineService(repo MachineRepository, records MachineRecordRepository, logger *zap.Logger) *machineService {
	return &machineService{
		repo:    repo,
		records: records,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *machineService) List(ctx context.Context) ([]models.Machine, error) {
	return s.repo.GetAll(ctx)
}

func (s *machineService) Get(ctx context.Context, id int) (*models.Machine, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *machineService) Create(ctx context.Context, req *models.MachineRequest) (int, error) {
	machine, err := machineFromRequest(req)
	if err != nil {
		return 0, err
	}

	if err := s.repo.Create(ctx, machine); err != nil {
		return 0, err
	}

	s.logger.Info("machine created", zap.Int("machine_id", machine.ID))
	return machine.ID, nil
}

func (s *machineService) Update(ctx context.Context, id int, req *models.MachineRequest) (*models.Machine, error) {
	machine, err := machineFromRequest(req)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	machine.ID = id
	machine.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, machine); err != nil {
		return nil, err
	}
	return machine, nil
}

func (s *machineService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("machine deleted", zap.Int("machine_id", id))
	return nil
}

// Maintenance returns the maintenance history of an existing machine
func (s *machineService) Maintenance(ctx context.Context, machineID int) ([]models.MaintenanceRecord, error) {
	if _, err := s.repo.GetByID(ctx, machineID); err != nil {
		return nil, err
	}
	return s.records.GetMaintenance(ctx, machineID)
}

// Faults returns the faults reported on an existing machine
func (s *machineService) Faults(ctx context.Context, machineID int) ([]models.Fault, error) {
	if _, err := s.repo.GetByID(ctx, machineID); err != nil {
		return nil, err
	}
	return s.records.GetFaults(ctx, machineID)
}

// ReportFault records an open fault on a machine on behalf of actor
func (s *machineService) ReportFault(ctx context.Context, actor models.Principal, machineID int, req *models.FaultRequest) (int, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return 0, &models.ValidationError{Field: "description", Message: "Fault description is required"}
	}

	priority := strings.TrimSpace(req.Priority)
	switch priority {
	case "":
		priority = models.FaultPriorityMedium
	case models.FaultPriorityLow, models.FaultPriorityMedium, models.FaultPriorityHigh, models.FaultPriorityCritical:
	default:
		return 0, &models.ValidationError{Field: "priority", Message: "Priority must be one of Low, Medium, High, Critical"}
	}

	if _, err := s.repo.GetByID(ctx, machineID); err != nil {
		return 0, err
	}

	fault := &models.Fault{
		MachineID:   machineID,
		Description: description,
		Priority:    priority,
		ReportedBy:  actor.UserID,
		ReportDate:  s.now().UTC().Truncate(time.Second),
		Status:      models.FaultStatusOpen,
	}
	if err := s.records.CreateFault(ctx, fault); err != nil {
		return 0, err
	}

	s.logger.Info("fault reported",
		zap.Int("fault_id", fault.ID),
		zap.Int("machine_id", machineID),
		zap.Int("user_id", actor.UserID),
	)
	return fault.ID, nil
}

// machineFromRequest validates the request and applies the default status
func machineFromRequest(req *models.MachineRequest) (*models.Machine, error) {
	name := strings.TrimSpace(req.Name)
	code := strings.TrimSpace(req.Code)
	if name == "" || code == "" || req.MachineTypeID <= 0 || req.MainSectionID <= 0 {
		return nil, &models.ValidationError{Message: "Name, code, machine type, and main section are required"}
	}

	status := strings.TrimSpace(req.Status)
	switch status {
	case "":
		status = models.MachineStatusActive
	case models.MachineStatusActive, models.MachineStatusInactive, models.MachineStatusMaintenance:
	default:
		return nil, &models.ValidationError{Field: "status", Message: "Status must be one of Active, Inactive, Maintenance"}
	}

	return &models.Machine{
		Name:            name,
		Code:            code,
		MachineTypeID:   req.MachineTypeID,
		MainSectionID:   req.MainSectionID,
		SubSectionID:    req.SubSectionID,
		SerialNumber:    strings.TrimSpace(req.SerialNumber),
		Manufacturer:    strings.TrimSpace(req.Manufacturer),
		ModelNumber:     strings.TrimSpace(req.ModelNumber),
		ManufactureYear: req.ManufactureYear,
		InstallDate:     req.InstallDate,
		Status:          status,
	}, nil
}
