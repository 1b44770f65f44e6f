package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/promco/backend/internal/models"
	"go.uber.org/zap"
)

// parameterRepository is the MySQL backed parameters table
type parameterRepository struct {
	db      *sql.DB
	logger  *zap.Logger
	timeout time.Duration
}

// NewParameterRepository creates a new parameter repository
func NewParameterRepository(db *sql.DB, logger *zap.Logger, timeout time.Duration) *parameterRepository {
	return &parameterRepository{
		db:      db,
		logger:  logger,
		timeout: timeout,
	}
}

const parameterColumns = `id, name, code, description, data_type, unit, min_value, max_value,
	default_value, is_required, created_at`

func scanParameter(row interface{ Scan(...any) error }, p *models.Parameter) error {
	var (
		description  sql.NullString
		unit         sql.NullString
		minValue     sql.NullFloat64
		maxValue     sql.NullFloat64
		defaultValue sql.NullString
	)

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Code,
		&description,
		&p.DataType,
		&unit,
		&minValue,
		&maxValue,
		&defaultValue,
		&p.IsRequired,
		&p.CreatedAt,
	)
	if err != nil {
		return err
	}

	p.Description = nullString(description)
	p.Unit = nullString(unit)
	p.MinValue = nullFloat(minValue)
	p.MaxValue = nullFloat(maxValue)
	p.DefaultValue = nullString(defaultValue)
	return nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

// GetAll retrieves every parameter ordered by ID
func (r *parameterRepository) GetAll(ctx context.Context) ([]models.Parameter, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `SELECT ` + parameterColumns + ` FROM parameters ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query parameters", zap.Error(err))
		return nil, fmt.Errorf("failed to query parameters: %w", mapDBError(ctx, err))
	}
	defer rows.Close()

	parameters := []models.Parameter{}
	for rows.Next() {
		var p models.Parameter
		if err := scanParameter(rows, &p); err != nil {
			r.logger.Error("failed to scan parameter", zap.Error(err))
			return nil, fmt.Errorf("failed to scan parameter: %w", err)
		}
		parameters = append(parameters, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", mapDBError(ctx, err))
	}

	return parameters, nil
}

// GetByID retrieves a parameter by ID
func (r *parameterRepository) GetByID(ctx context.Context, id int) (*models.Parameter, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `SELECT ` + parameterColumns + ` FROM parameters WHERE id = ?`

	p := &models.Parameter{}
	err := scanParameter(r.db.QueryRowContext(ctx, query, id), p)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("parameter %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to get parameter by id", zap.Error(err), zap.Int("parameter_id", id))
		return nil, fmt.Errorf("failed to get parameter by id: %w", mapDBError(ctx, err))
	}

	return p, nil
}

// Create inserts a new parameter and fills its ID and creation time.
// A duplicate code yields models.ErrAlreadyExists.
func (r *parameterRepository) Create(ctx context.Context, p *models.Parameter) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO parameters (name, code, description, data_type, unit, min_value, max_value,
			default_value, is_required, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := time.Now().UTC().Truncate(time.Second)
	result, err := r.db.ExecContext(ctx, query,
		p.Name, p.Code, p.Description, p.DataType, p.Unit, p.MinValue, p.MaxValue,
		p.DefaultValue, p.IsRequired, createdAt,
	)
	if err != nil {
		r.logger.Error("failed to create parameter", zap.Error(err))
		return fmt.Errorf("failed to create parameter: %w", mapDBError(ctx, err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	p.ID = int(id)
	p.CreatedAt = createdAt
	return nil
}

// Update overwrites every mutable column of a parameter
func (r *parameterRepository) Update(ctx context.Context, p *models.Parameter) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		UPDATE parameters SET name = ?, code = ?, description = ?, data_type = ?, unit = ?,
			min_value = ?, max_value = ?, default_value = ?, is_required = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		p.Name, p.Code, p.Description, p.DataType, p.Unit,
		p.MinValue, p.MaxValue, p.DefaultValue, p.IsRequired, p.ID,
	)
	if err != nil {
		r.logger.Error("failed to update parameter", zap.Error(err), zap.Int("parameter_id", p.ID))
		return fmt.Errorf("failed to update parameter: %w", mapDBError(ctx, err))
	}

	return checkAffected(result, fmt.Sprintf("parameter %d", p.ID))
}

// Delete removes a parameter and, through the foreign key, its qualified values
func (r *parameterRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.db.ExecContext(ctx, `DELETE FROM parameters WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("failed to delete parameter", zap.Error(err), zap.Int("parameter_id", id))
		return fmt.Errorf("failed to delete parameter: %w", mapDBError(ctx, err))
	}

	return checkAffected(result, fmt.Sprintf("parameter %d", id))
}

// GetQualifiedValues retrieves the value bands of a parameter ordered by lower bound
func (r *parameterRepository) GetQualifiedValues(ctx context.Context, parameterID int) ([]models.QualifiedValue, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT id, parameter_id, value, min_value, max_value
		FROM parameter_qualified_values
		WHERE parameter_id = ?
		ORDER BY min_value, id
	`

	rows, err := r.db.QueryContext(ctx, query, parameterID)
	if err != nil {
		r.logger.Error("failed to query qualified values", zap.Error(err), zap.Int("parameter_id", parameterID))
		return nil, fmt.Errorf("failed to query qualified values: %w", mapDBError(ctx, err))
	}
	defer rows.Close()

	values := []models.QualifiedValue{}
	for rows.Next() {
		var (
			v        models.QualifiedValue
			minValue sql.NullFloat64
			maxValue sql.NullFloat64
		)
		if err := rows.Scan(&v.ID, &v.ParameterID, &v.Value, &minValue, &maxValue); err != nil {
			r.logger.Error("failed to scan qualified value", zap.Error(err))
			return nil, fmt.Errorf("failed to scan qualified value: %w", err)
		}
		v.MinValue = nullFloat(minValue)
		v.MaxValue = nullFloat(maxValue)
		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", mapDBError(ctx, err))
	}

	return values, nil
}
