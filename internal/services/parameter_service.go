package services

import (
	"context"
	"strings"

	"github.com/promco/backend/internal/models"
	"go.uber.org/zap"
)

// ParameterRepository is the interface that wraps methods for Parameter table data access
type ParameterRepository interface {
	// Method GetAll retrieves every parameter ordered by ID.
	GetAll(ctx context.Context) ([]models.Parameter, error)
	// Method GetByID retrieves a parameter by ID.
	//
	// If parameter with such ID does not exist, models.ErrNotFound is returned together with "nil" value.
	GetByID(ctx context.Context, id int) (*models.Parameter, error)
	// Method Create inserts a new parameter and fills its ID and creation time.
	//
	// A parameter with the same code yields models.ErrAlreadyExists.
	Create(ctx context.Context, parameter *models.Parameter) error
	// Method Update overwrites every mutable field of an existing parameter.
	Update(ctx context.Context, parameter *models.Parameter) error
	// Method Delete removes a parameter together with its qualified values.
	Delete(ctx context.Context, id int) error
	// Method GetQualifiedValues retrieves the value bands of a parameter.
	GetQualifiedValues(ctx context.Context, parameterID int) ([]models.QualifiedValue, error)
}

type parameterService struct {
	repo   ParameterRepository
	logger *zap.Logger
}

// NewParameterService creates a new parameter service
func NewParameterService(repo ParameterRepository, logger *zap.Logger) *parameterService {
	return &parameterService{
		repo:   repo,
		logger: logger,
	}
}

func (s *parameterService) List(ctx context.Context) ([]models.Parameter, error) {
	return s.repo.GetAll(ctx)
}

func (s *parameterService) Get(ctx context.Context, id int) (*models.Parameter, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *parameterService) Create(ctx context.Context, req *models.ParameterRequest) (int, error) {
	parameter, err := parameterFromRequest(req)
	if err != nil {
		return 0, err
	}

	if err := s.repo.Create(ctx, parameter); err != nil {
		return 0, err
	}

	s.logger.Info("parameter created", zap.Int("parameter_id", parameter.ID))
	return parameter.ID, nil
}

func (s *parameterService) Update(ctx context.Context, id int, req *models.ParameterRequest) (*models.Parameter, error) {
	parameter, err := parameterFromRequest(req)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	parameter.ID = id
	parameter.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, parameter); err != nil {
		return nil, err
	}
	return parameter, nil
}

func (s *parameterService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("parameter deleted", zap.Int("parameter_id", id))
	return nil
}

// QualifiedValues returns the value bands of an existing parameter
func (s *parameterService) QualifiedValues(ctx context.Context, id int) ([]models.QualifiedValue, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.GetQualifiedValues(ctx, id)
}

// parameterFromRequest validates the request. Blank optional strings are stored as NULL.
func parameterFromRequest(req *models.ParameterRequest) (*models.Parameter, error) {
	name := strings.TrimSpace(req.Name)
	code := strings.TrimSpace(req.Code)
	dataType := strings.TrimSpace(req.DataType)
	if name == "" || code == "" || dataType == "" {
		return nil, &models.ValidationError{Message: "Name, code, and data type are required"}
	}

	if req.MinValue != nil && req.MaxValue != nil && *req.MinValue > *req.MaxValue {
		return nil, &models.ValidationError{Field: "minValue", Message: "Minimum value must not exceed maximum value"}
	}

	return &models.Parameter{
		Name:         name,
		Code:         code,
		Description:  optionalString(req.Description),
		DataType:     dataType,
		Unit:         optionalString(req.Unit),
		MinValue:     req.MinValue,
		MaxValue:     req.MaxValue,
		DefaultValue: optionalString(req.DefaultValue),
		IsRequired:   req.IsRequired,
	}, nil
}

func optionalString(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
