package models

import "time"

// MachineStatus values accepted by the machines resource
const (
	MachineStatusActive      = "Active"
	MachineStatusInactive    = "Inactive"
	MachineStatusMaintenance = "Maintenance"
)

// Machine represents a piece of plant equipment
type Machine struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	Code            string     `json:"code"`
	MachineTypeID   int        `json:"machineTypeId"`
	MainSectionID   int        `json:"mainSectionId"`
	SubSectionID    *int       `json:"subSectionId"`
	SerialNumber    string     `json:"serialNumber"`
	Manufacturer    string     `json:"manufacturer"`
	ModelNumber     string     `json:"modelNumber"`
	ManufactureYear *int       `json:"manufactureYear"`
	InstallDate     *time.Time `json:"installDate"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// GetID returns the machine ID
func (m *Machine) GetID() int { return m.ID }

// SetID sets the machine ID
func (m *Machine) SetID(id int) { m.ID = id }

// MachineRequest is the body of machine create and update requests
type MachineRequest struct {
	Name            string     `json:"name"`
	Code            string     `json:"code"`
	MachineTypeID   int        `json:"machineTypeId"`
	MainSectionID   int        `json:"mainSectionId"`
	SubSectionID    *int       `json:"subSectionId"`
	SerialNumber    string     `json:"serialNumber"`
	Manufacturer    string     `json:"manufacturer"`
	ModelNumber     string     `json:"modelNumber"`
	ManufactureYear *int       `json:"manufactureYear"`
	InstallDate     *time.Time `json:"installDate"`
	Status          string     `json:"status"`
}

// Fault priorities; reports without one get FaultPriorityMedium
const (
	FaultPriorityLow      = "Low"
	FaultPriorityMedium   = "Medium"
	FaultPriorityHigh     = "High"
	FaultPriorityCritical = "Critical"
)

// FaultStatusOpen is the status of every newly reported fault
const FaultStatusOpen = "Open"

// MaintenanceRecord is one maintenance job performed on a machine
type MaintenanceRecord struct {
	ID              int        `json:"id"`
	MachineID       int        `json:"machineId"`
	MaintenanceType string     `json:"maintenanceType"`
	Description     string     `json:"description"`
	TechnicianID    *int       `json:"technicianId"`
	MaintenanceDate time.Time  `json:"maintenanceDate"`
	CompletionDate  *time.Time `json:"completionDate"`
	Status          string     `json:"status"`
	Notes           string     `json:"notes"`
}

// GetID returns the record ID
func (m *MaintenanceRecord) GetID() int { return m.ID }

// SetID sets the record ID
func (m *MaintenanceRecord) SetID(id int) { m.ID = id }

// Fault is a problem reported on a machine
type Fault struct {
	ID          int       `json:"id"`
	MachineID   int       `json:"machineId"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	ReportedBy  int       `json:"reportedBy"`
	ReportDate  time.Time `json:"reportDate"`
	Status      string    `json:"status"`
}

// GetID returns the fault ID
func (f *Fault) GetID() int { return f.ID }

// SetID sets the fault ID
func (f *Fault) SetID(id int) { f.ID = id }

// FaultRequest is the body of a fault report.
// The reporter is always the authenticated caller.
type FaultRequest struct {
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// FaultCreatedResponse is returned after a fault is reported
type FaultCreatedResponse struct {
	Message string `json:"message"`
	FaultID int    `json:"faultId"`
}
