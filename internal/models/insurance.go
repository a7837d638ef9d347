package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InsurancePolicy struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleID    primitive.ObjectID `bson:"vehicle_id" json:"vehicleId"`
	Company      string             `bson:"company" json:"company" validate:"required"`
	PolicyNumber string             `bson:"policy_number" json:"policyNumber" validate:"required"`
	Coverage     string             `bson:"coverage" json:"coverage"`
	StartDate    time.Time          `bson:"start_date" json:"startDate"`
	EndDate      time.Time          `bson:"end_date" json:"endDate"`
	Cost         float64            `bson:"cost" json:"cost"`
	Status       string             `bson:"status" json:"status" validate:"required,oneof=active expired cancelled"`
	Notes        string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Constants for insurance policy status
const (
	InsuranceStatusActive    = "active"
	InsuranceStatusExpired   = "expired"
	InsuranceStatusCancelled = "cancelled"
)
