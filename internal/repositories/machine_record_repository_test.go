package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/promco/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupMachineRecordTestRepository(t *testing.T) (*machineRecordRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewMachineRecordRepository(db, zap.NewNop(), time.Second)

	return repo, mock, func() { db.Close() }
}

func TestMachineRecordRepository_GetMaintenance(t *testing.T) {
	repo, mock, cleanup := setupMachineRecordTestRepository(t)
	defer cleanup()

	july := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	june := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "machine_id", "maintenance_type", "description", "technician_id", "maintenance_date",
		"completion_date", "status", "notes",
	}).
		AddRow(1, 1, "Preventive", "Regular monthly maintenance", 2, july, july, "Completed", "").
		AddRow(2, 1, "Corrective", "Fixed motor alignment", nil, june, nil, "Scheduled", "Waiting for parts")
	mock.ExpectQuery(`SELECT (.+) FROM maintenance_records WHERE machine_id = \? ORDER BY maintenance_date DESC, id DESC`).
		WithArgs(1).WillReturnRows(rows)

	records, err := repo.GetMaintenance(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.NotNil(t, records[0].TechnicianID)
	assert.Equal(t, 2, *records[0].TechnicianID)
	require.NotNil(t, records[0].CompletionDate)
	assert.True(t, july.Equal(*records[0].CompletionDate))

	assert.Nil(t, records[1].TechnicianID)
	assert.Nil(t, records[1].CompletionDate)
	assert.Equal(t, "Waiting for parts", records[1].Notes)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMachineRecordRepository_GetFaults(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedLen   int
	}{
		{
			name: "rows",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "machine_id", "description", "priority", "reported_by", "report_date", "status"}).
					AddRow(2, 1, "Unusual noise", "Medium", 2, time.Now(), "In Progress").
					AddRow(1, 1, "Motor overheating", "High", 1, time.Now().Add(-time.Hour), "Open")
				mock.ExpectQuery(`SELECT (.+) FROM machine_faults WHERE machine_id = \? ORDER BY report_date DESC, id DESC`).
					WithArgs(1).WillReturnRows(rows)
			},
			expectedLen: 2,
		},
		{
			name: "no faults",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM machine_faults`).WithArgs(1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "machine_id", "description", "priority", "reported_by", "report_date", "status"}))
			},
		},
		{
			name: "query error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM machine_faults`).WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupMachineRecordTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			faults, err := repo.GetFaults(context.Background(), 1)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, faults)
				assert.Len(t, faults, tt.expectedLen)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMachineRecordRepository_CreateFault(t *testing.T) {
	repo, mock, cleanup := setupMachineRecordTestRepository(t)
	defer cleanup()

	reported := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	f := &models.Fault{MachineID: 2, Description: "Hydraulic fluid leak", Priority: "Critical", ReportedBy: 3, ReportDate: reported, Status: models.FaultStatusOpen}

	mock.ExpectExec(`INSERT INTO machine_faults`).
		WithArgs(2, "Hydraulic fluid leak", "Critical", 3, reported, "Open").
		WillReturnResult(sqlmock.NewResult(9, 1))

	require.NoError(t, repo.CreateFault(context.Background(), f))
	assert.Equal(t, 9, f.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}
