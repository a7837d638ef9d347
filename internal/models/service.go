package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaintenanceRecord is a scheduled or performed maintenance event for a vehicle.
type MaintenanceRecord struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleID     primitive.ObjectID `bson:"vehicle_id" json:"vehicleId"`
	Type          string             `bson:"type" json:"type"`
	Description   string             `bson:"description" json:"description"`
	ScheduledDate time.Time          `bson:"scheduled_date" json:"scheduledDate"`
	CompletedAt   *time.Time         `bson:"completed_at,omitempty" json:"completedAt,omitempty"`
	Cost          float64            `bson:"cost" json:"cost"`
	ServiceCenter string             `bson:"service_center" json:"serviceCenter"`
	Odometer      int                `bson:"odometer" json:"odometer"`
	Status        string             `bson:"status" json:"status"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

// OilChangeRecord tracks an oil change and the computed date of the next one.
// NextOilChangeDate is entered at completion time; nil means no next date is
// known and no reminder is derived from the record.
type OilChangeRecord struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleID         primitive.ObjectID `bson:"vehicle_id" json:"vehicleId"`
	Date              time.Time          `bson:"date" json:"date"`
	Odometer          int                `bson:"odometer" json:"odometer"`
	OilType           string             `bson:"oil_type" json:"oilType"`
	Cost              float64            `bson:"cost" json:"cost"`
	NextOilChangeDate *time.Time         `bson:"next_oil_change_date,omitempty" json:"nextOilChangeDate,omitempty"`
	NextOdometer      *int               `bson:"next_odometer,omitempty" json:"nextOdometer,omitempty"`
	Status            string             `bson:"status" json:"status"`
	Notes             string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updatedAt"`
}

type TireChangeRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleID primitive.ObjectID `bson:"vehicle_id" json:"vehicleId"`
	Date      time.Time          `bson:"date" json:"date"`
	TireType  string             `bson:"tire_type" json:"tireType"`
	Position  string             `bson:"position,omitempty" json:"position,omitempty"`
	Cost      float64            `bson:"cost" json:"cost"`
	Odometer  int                `bson:"odometer" json:"odometer"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

type WashingRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleID primitive.ObjectID `bson:"vehicle_id" json:"vehicleId"`
	Date      time.Time          `bson:"date" json:"date"`
	WashType  string             `bson:"wash_type" json:"washType"`
	Cost      float64            `bson:"cost" json:"cost"`
	Location  string             `bson:"location,omitempty" json:"location,omitempty"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// TechnicalInspection is a periodic roadworthiness inspection with an expiry.
type TechnicalInspection struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleID      primitive.ObjectID `bson:"vehicle_id" json:"vehicleId"`
	InspectionDate time.Time          `bson:"inspection_date" json:"inspectionDate"`
	ExpiryDate     time.Time          `bson:"expiry_date" json:"expiryDate"`
	Result         string             `bson:"result" json:"result"`
	Station        string             `bson:"station" json:"station"`
	Cost           float64            `bson:"cost" json:"cost"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Constants for maintenance status
const (
	MaintenanceStatusScheduled  = "scheduled"
	MaintenanceStatusInProgress = "in_progress"
	MaintenanceStatusCompleted  = "completed"
	MaintenanceStatusCancelled  = "cancelled"
)

// Constants for inspection results
const (
	InspectionResultPassed = "passed"
	InspectionResultFailed = "failed"
)

// Constants for maintenance types
const (
	MaintenanceTypeGeneral      = "general"
	MaintenanceTypeBrakeService = "brake_service"
	MaintenanceTypeEngine       = "engine"
	MaintenanceTypeTransmission = "transmission"
	MaintenanceTypeElectrical   = "electrical"
	MaintenanceTypeBodywork     = "bodywork"
	MaintenanceTypeRepair       = "repair"
	MaintenanceTypeOther        = "other"
)
