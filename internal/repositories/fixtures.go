package repositories

import (
	"fmt"
	"time"

	"github.com/promco/backend/internal/models"
)

// devUser is a plaintext fixture hashed at startup
type devUser struct {
	username string
	email    string
	password string
	role     models.Role
}

var devUsers = []devUser{
	{username: "john_doe", email: "admin@example.com", password: "adminpass", role: models.RoleAdmin},
	{username: "jane_smith", email: "manager@example.com", password: "managerpass", role: models.RoleManager},
}

// DevUsers returns the dev mode fixture users with passwords hashed by hash.
// Plaintext fixture passwords never reach the store.
func DevUsers(hash func(string) (string, error)) ([]models.User, error) {
	users := make([]models.User, 0, len(devUsers))
	for _, du := range devUsers {
		h, err := hash(du.password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash fixture password for %s: %w", du.email, err)
		}
		users = append(users, models.User{
			Username:     du.username,
			Email:        du.email,
			PasswordHash: h,
			Role:         du.role,
		})
	}
	return users, nil
}

func intPtr(v int) *int { return &v }

// DevMachines returns the dev mode machine fixtures
func DevMachines() []models.Machine {
	installed := time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC)
	return []models.Machine{
		{
			Name:            "CNC Lathe 1",
			Code:            "CNC-001",
			MachineTypeID:   1,
			MainSectionID:   1,
			SubSectionID:    intPtr(1),
			SerialNumber:    "SN-10001",
			Manufacturer:    "Haas",
			ModelNumber:     "ST-10",
			ManufactureYear: intPtr(2020),
			InstallDate:     &installed,
			Status:          models.MachineStatusActive,
		},
		{
			Name:          "Hydraulic Press",
			Code:          "HP-002",
			MachineTypeID: 2,
			MainSectionID: 1,
			Status:        models.MachineStatusMaintenance,
		},
	}
}

func strPtr(v string) *string { return &v }

func floatPtr(v float64) *float64 { return &v }

// DevParameters returns the dev mode parameter fixtures
func DevParameters() []models.Parameter {
	return []models.Parameter{
		{
			Name:         "Temperature",
			Code:         "TEMP-001",
			Description:  strPtr("Operating temperature of the machine"),
			DataType:     "Numeric",
			Unit:         strPtr("°C"),
			MinValue:     floatPtr(15),
			MaxValue:     floatPtr(85),
			DefaultValue: strPtr("25"),
			IsRequired:   true,
		},
		{
			Name:         "Pressure",
			Code:         "PRESS-002",
			Description:  strPtr("Operational pressure level"),
			DataType:     "Numeric",
			Unit:         strPtr("PSI"),
			MinValue:     floatPtr(30),
			MaxValue:     floatPtr(120),
			DefaultValue: strPtr("60"),
			IsRequired:   true,
		},
		{
			Name:         "Maintenance Status",
			Code:         "MAINT-003",
			Description:  strPtr("Current maintenance status"),
			DataType:     "String",
			DefaultValue: strPtr("Operational"),
		},
	}
}

// DevQualifiedValues returns value bands for the first two DevParameters
func DevQualifiedValues() []models.QualifiedValue {
	band := func(parameterID int, value string, lo, hi float64) models.QualifiedValue {
		return models.QualifiedValue{ParameterID: parameterID, Value: value, MinValue: floatPtr(lo), MaxValue: floatPtr(hi)}
	}
	return []models.QualifiedValue{
		band(1, "Low", 15, 30),
		band(1, "Normal", 31, 60),
		band(1, "High", 61, 85),
		band(2, "Low", 30, 50),
		band(2, "Normal", 51, 90),
		band(2, "High", 91, 120),
	}
}

// DevMaintenanceRecords returns maintenance history for the DevMachines
func DevMaintenanceRecords() []models.MaintenanceRecord {
	day := func(month time.Month, d int) time.Time { return time.Date(2025, month, d, 0, 0, 0, 0, time.UTC) }
	completed := func(t time.Time) *time.Time { return &t }

	return []models.MaintenanceRecord{
		{
			MachineID:       1,
			MaintenanceType: "Preventive",
			Description:     "Regular monthly maintenance",
			TechnicianID:    intPtr(3),
			MaintenanceDate: day(time.July, 15),
			CompletionDate:  completed(day(time.July, 15)),
			Status:          "Completed",
			Notes:           "All systems normal, replaced air filter",
		},
		{
			MachineID:       1,
			MaintenanceType: "Repair",
			Description:     "Fixed motor alignment",
			TechnicianID:    intPtr(2),
			MaintenanceDate: day(time.June, 20),
			CompletionDate:  completed(day(time.June, 21)),
			Status:          "Completed",
			Notes:           "Motor realigned, tested and working properly",
		},
		{
			MachineID:       2,
			MaintenanceType: "Preventive",
			Description:     "Quarterly inspection",
			TechnicianID:    intPtr(3),
			MaintenanceDate: day(time.July, 1),
			CompletionDate:  completed(day(time.July, 1)),
			Status:          "Completed",
			Notes:           "All systems functioning within normal parameters",
		},
	}
}

// DevFaults returns open faults for the DevMachines
func DevFaults() []models.Fault {
	return []models.Fault{
		{
			MachineID:   1,
			Description: "Motor overheating",
			Priority:    models.FaultPriorityHigh,
			ReportedBy:  1,
			ReportDate:  time.Date(2025, time.July, 28, 0, 0, 0, 0, time.UTC),
			Status:      models.FaultStatusOpen,
		},
		{
			MachineID:   1,
			Description: "Unusual noise during operation",
			Priority:    models.FaultPriorityMedium,
			ReportedBy:  2,
			ReportDate:  time.Date(2025, time.July, 29, 0, 0, 0, 0, time.UTC),
			Status:      "In Progress",
		},
		{
			MachineID:   2,
			Description: "Hydraulic fluid leak",
			Priority:    models.FaultPriorityMedium,
			ReportedBy:  1,
			ReportDate:  time.Date(2025, time.July, 30, 0, 0, 0, 0, time.UTC),
			Status:      models.FaultStatusOpen,
		},
	}
}
