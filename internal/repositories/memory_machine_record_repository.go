package repositories

import (
	"context"
	"fmt"
	"sort"

	"github.com/promco/backend/internal/models"
)

type memoryMachineRecordRepository struct {
	maintenance *memoryStore[models.MaintenanceRecord, *models.MaintenanceRecord]
	faults      *memoryStore[models.Fault, *models.Fault]
}

// NewMemoryMachineRecordRepository creates in-memory maintenance and fault tables
func NewMemoryMachineRecordRepository(maintenance []models.MaintenanceRecord, faults []models.Fault) *memoryMachineRecordRepository {
	repo := &memoryMachineRecordRepository{
		maintenance: newMemoryStore[models.MaintenanceRecord](),
		faults:      newMemoryStore[models.Fault](),
	}
	for _, m := range maintenance {
		repo.maintenance.insert(m, nil)
	}
	for _, f := range faults {
		repo.faults.insert(f, nil)
	}
	return repo
}

func (r *memoryMachineRecordRepository) GetMaintenance(ctx context.Context, machineID int) ([]models.MaintenanceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to query maintenance records: %w", mapDBError(ctx, err))
	}
	records := r.maintenance.filter(func(m *models.MaintenanceRecord) bool { return m.MachineID == machineID })
	sort.Slice(records, func(i, j int) bool {
		if !records[i].MaintenanceDate.Equal(records[j].MaintenanceDate) {
			return records[i].MaintenanceDate.After(records[j].MaintenanceDate)
		}
		return records[i].ID > records[j].ID
	})
	return records, nil
}

func (r *memoryMachineRecordRepository) GetFaults(ctx context.Context, machineID int) ([]models.Fault, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to query machine faults: %w", mapDBError(ctx, err))
	}
	faults := r.faults.filter(func(f *models.Fault) bool { return f.MachineID == machineID })
	sort.Slice(faults, func(i, j int) bool {
		if !faults[i].ReportDate.Equal(faults[j].ReportDate) {
			return faults[i].ReportDate.After(faults[j].ReportDate)
		}
		return faults[i].ID > faults[j].ID
	})
	return faults, nil
}

func (r *memoryMachineRecordRepository) CreateFault(ctx context.Context, f *models.Fault) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to create machine fault: %w", mapDBError(ctx, err))
	}
	stored, _ := r.faults.insert(*f, nil)
	f.ID = stored.ID
	return nil
}
