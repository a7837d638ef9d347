package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Driver struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName         string             `bson:"first_name" json:"firstName" validate:"required"`
	LastName          string             `bson:"last_name" json:"lastName" validate:"required"`
	Phone             string             `bson:"phone" json:"phone"`
	Email             string             `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	LicenseNumber     string             `bson:"license_number" json:"licenseNumber" validate:"required"`
	LicenseCategory   string             `bson:"license_category" json:"licenseCategory"`
	LicenseExpiryDate time.Time          `bson:"license_expiry_date" json:"licenseExpiryDate"`
	Status            string             `bson:"status" json:"status" validate:"required,oneof=active inactive suspended"`
	AssignedVehicleID string             `bson:"assigned_vehicle_id,omitempty" json:"assignedVehicleId,omitempty"`
	CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updatedAt"`
}

func (d *Driver) FullName() string {
	return d.FirstName + " " + d.LastName
}

// Constants for driver status
const (
	DriverStatusActive    = "active"
	DriverStatusInactive  = "inactive"
	DriverStatusSuspended = "suspended"
)
