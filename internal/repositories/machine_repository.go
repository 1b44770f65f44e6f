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

// machineRepository is the MySQL backed machines table
type machineRepository struct {
	db      *sql.DB
	logger  *zap.Logger
	timeout time.Duration
}

// NewMachineRepository creates a new machine repository
func NewMachineRepository(db *sql.DB, logger *zap.Logger, timeout time.Duration) *machineRepository {
	return &machineRepository{
		db:      db,
		logger:  logger,
		timeout: timeout,
	}
}

const machineColumns = `id, name, code, machine_type_id, main_section_id, sub_section_id,
	serial_number, manufacturer, model_number, manufacture_year, install_date, status, created_at`

func scanMachine(row interface{ Scan(...any) error }, m *models.Machine) error {
	var (
		subSectionID    sql.NullInt64
		manufactureYear sql.NullInt64
		installDate     sql.NullTime
	)

	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Code,
		&m.MachineTypeID,
		&m.MainSectionID,
		&subSectionID,
		&m.SerialNumber,
		&m.Manufacturer,
		&m.ModelNumber,
		&manufactureYear,
		&installDate,
		&m.Status,
		&m.CreatedAt,
	)
	if err != nil {
		return err
	}

	if subSectionID.Valid {
		v := int(subSectionID.Int64)
		m.SubSectionID = &v
	}
	if manufactureYear.Valid {
		v := int(manufactureYear.Int64)
		m.ManufactureYear = &v
	}
	if installDate.Valid {
		v := installDate.Time
		m.InstallDate = &v
	}
	return nil
}

// GetAll retrieves every machine ordered by name
func (r *machineRepository) GetAll(ctx context.Context) ([]models.Machine, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `SELECT ` + machineColumns + ` FROM machines ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query machines", zap.Error(err))
		return nil, fmt.Errorf("failed to query machines: %w", mapDBError(ctx, err))
	}
	defer rows.Close()

	machines := []models.Machine{}
	for rows.Next() {
		var m models.Machine
		if err := scanMachine(rows, &m); err != nil {
			r.logger.Error("failed to scan machine", zap.Error(err))
			return nil, fmt.Errorf("failed to scan machine: %w", err)
		}
		machines = append(machines, m)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", mapDBError(ctx, err))
	}

	return machines, nil
}

// GetByID retrieves a machine by ID
func (r *machineRepository) GetByID(ctx context.Context, id int) (*models.Machine, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `SELECT ` + machineColumns + ` FROM machines WHERE id = ?`

	m := &models.Machine{}
	err := scanMachine(r.db.QueryRowContext(ctx, query, id), m)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("machine %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to get machine by id", zap.Error(err), zap.Int("machine_id", id))
		return nil, fmt.Errorf("failed to get machine by id: %w", mapDBError(ctx, err))
	}

	return m, nil
}

// Create inserts a new machine and fills its ID and creation time
func (r *machineRepository) Create(ctx context.Context, m *models.Machine) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO machines (name, code, machine_type_id, main_section_id, sub_section_id,
			serial_number, manufacturer, model_number, manufacture_year, install_date, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := time.Now().UTC().Truncate(time.Second)
	result, err := r.db.ExecContext(ctx, query,
		m.Name, m.Code, m.MachineTypeID, m.MainSectionID, m.SubSectionID,
		m.SerialNumber, m.Manufacturer, m.ModelNumber, m.ManufactureYear, m.InstallDate,
		m.Status, createdAt,
	)
	if err != nil {
		r.logger.Error("failed to create machine", zap.Error(err))
		return fmt.Errorf("failed to create machine: %w", mapDBError(ctx, err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	m.ID = int(id)
	m.CreatedAt = createdAt
	return nil
}

// Update overwrites every mutable column of a machine
func (r *machineRepository) Update(ctx context.Context, m *models.Machine) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		UPDATE machines SET name = ?, code = ?, machine_type_id = ?, main_section_id = ?,
			sub_section_id = ?, serial_number = ?, manufacturer = ?, model_number = ?,
			manufacture_year = ?, install_date = ?, status = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		m.Name, m.Code, m.MachineTypeID, m.MainSectionID, m.SubSectionID,
		m.SerialNumber, m.Manufacturer, m.ModelNumber, m.ManufactureYear, m.InstallDate,
		m.Status, m.ID,
	)
	if err != nil {
		r.logger.Error("failed to update machine", zap.Error(err), zap.Int("machine_id", m.ID))
		return fmt.Errorf("failed to update machine: %w", mapDBError(ctx, err))
	}

	return checkAffected(result, fmt.Sprintf("machine %d", m.ID))
}

// Delete removes a machine by ID
func (r *machineRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.db.ExecContext(ctx, `DELETE FROM machines WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("failed to delete machine", zap.Error(err), zap.Int("machine_id", id))
		return fmt.Errorf("failed to delete machine: %w", mapDBError(ctx, err))
	}

	return checkAffected(result, fmt.Sprintf("machine %d", id))
}
