package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/promco/backend/internal/models"
	"go.uber.org/zap"
)

// machineRecordRepository is the MySQL backed maintenance_records and machine_faults tables
type machineRecordRepository struct {
	db      *sql.DB
	logger  *zap.Logger
	timeout time.Duration
}

// NewMachineRecordRepository creates a repository for machine maintenance history and faults
func NewMachineRecordRepository(db *sql.DB, logger *zap.Logger, timeout time.Duration) *machineRecordRepository {
	return &machineRecordRepository{
		db:      db,
		logger:  logger,
		timeout: timeout,
	}
}

// GetMaintenance retrieves the maintenance history of a machine, newest first
func (r *machineRecordRepository) GetMaintenance(ctx context.Context, machineID int) ([]models.MaintenanceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT id, machine_id, maintenance_type, description, technician_id, maintenance_date,
			completion_date, status, notes
		FROM maintenance_records
		WHERE machine_id = ?
		ORDER BY maintenance_date DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, machineID)
	if err != nil {
		r.logger.Error("failed to query maintenance records", zap.Error(err), zap.Int("machine_id", machineID))
		return nil, fmt.Errorf("failed to query maintenance records: %w", mapDBError(ctx, err))
	}
	defer rows.Close()

	records := []models.MaintenanceRecord{}
	for rows.Next() {
		var (
			rec          models.MaintenanceRecord
			technicianID sql.NullInt64
			completed    sql.NullTime
		)
		err := rows.Scan(
			&rec.ID,
			&rec.MachineID,
			&rec.MaintenanceType,
			&rec.Description,
			&technicianID,
			&rec.MaintenanceDate,
			&completed,
			&rec.Status,
			&rec.Notes,
		)
		if err != nil {
			r.logger.Error("failed to scan maintenance record", zap.Error(err))
			return nil, fmt.Errorf("failed to scan maintenance record: %w", err)
		}
		if technicianID.Valid {
			v := int(technicianID.Int64)
			rec.TechnicianID = &v
		}
		if completed.Valid {
			rec.CompletionDate = &completed.Time
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", mapDBError(ctx, err))
	}

	return records, nil
}

// GetFaults retrieves the faults reported on a machine, newest first
func (r *machineRecordRepository) GetFaults(ctx context.Context, machineID int) ([]models.Fault, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT id, machine_id, description, priority, reported_by, report_date, status
		FROM machine_faults
		WHERE machine_id = ?
		ORDER BY report_date DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, machineID)
	if err != nil {
		r.logger.Error("failed to query machine faults", zap.Error(err), zap.Int("machine_id", machineID))
		return nil, fmt.Errorf("failed to query machine faults: %w", mapDBError(ctx, err))
	}
	defer rows.Close()

	faults := []models.Fault{}
	for rows.Next() {
		var f models.Fault
		if err := rows.Scan(&f.ID, &f.MachineID, &f.Description, &f.Priority, &f.ReportedBy, &f.ReportDate, &f.Status); err != nil {
			r.logger.Error("failed to scan machine fault", zap.Error(err))
			return nil, fmt.Errorf("failed to scan machine fault: %w", err)
		}
		faults = append(faults, f)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", mapDBError(ctx, err))
	}

	return faults, nil
}

// CreateFault inserts a fault and fills its ID
func (r *machineRecordRepository) CreateFault(ctx context.Context, f *models.Fault) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO machine_faults (machine_id, description, priority, reported_by, report_date, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, f.MachineID, f.Description, f.Priority, f.ReportedBy, f.ReportDate, f.Status)
	if err != nil {
		r.logger.Error("failed to create machine fault", zap.Error(err), zap.Int("machine_id", f.MachineID))
		return fmt.Errorf("failed to create machine fault: %w", mapDBError(ctx, err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	f.ID = int(id)
	return nil
}
