package models

import "time"

// Alert is a derived, time-bounded reminder tied to one source record. Alerts
// are recomputed on every load; only the status overlay (read/dismissed/
// completed flags keyed by the deterministic ID) is persisted.
type Alert struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	RelatedID    string    `json:"relatedId"`
	RelatedType  string    `json:"relatedType"`
	VehicleID    string    `json:"vehicleId,omitempty"`
	DueDate      time.Time `json:"dueDate"`
	AlertDate    time.Time `json:"alertDate"`
	Priority     string    `json:"priority"`
	Status       string    `json:"status"`
	DaysBefore   int       `json:"daysBefore"`
	DaysUntilDue int       `json:"daysUntilDue"`
	Read         bool      `json:"read"`
}

// Constants for alert types
const (
	AlertTypeMaintenanceDue   = "maintenance_due"
	AlertTypeOilChangeDue     = "oil_change_due"
	AlertTypeInsuranceExpiry  = "insurance_expiry"
	AlertTypeInspectionExpiry = "inspection_expiry"
	AlertTypeLicenseExpiry    = "license_expiry"
)

// Constants for alert priority
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Constants for alert status
const (
	AlertStatusPending   = "pending"
	AlertStatusSent      = "sent"
	AlertStatusDismissed = "dismissed"
	AlertStatusCompleted = "completed"
)
