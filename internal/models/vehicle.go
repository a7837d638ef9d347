package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Vehicle struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PlateNumber string             `bson:"plate_number" json:"plateNumber" validate:"required"`
	Brand       string             `bson:"brand" json:"brand" validate:"required"`
	Model       string             `bson:"model" json:"model" validate:"required"`
	Year        int                `bson:"year" json:"year"`
	VIN         string             `bson:"vin" json:"vin"`
	Type        string             `bson:"type" json:"type" validate:"required,oneof=car van truck bus motorcycle"`
	FuelType    string             `bson:"fuel_type" json:"fuelType" validate:"omitempty,oneof=petrol diesel electric hybrid lpg"`
	Status      string             `bson:"status" json:"status" validate:"required,oneof=active in_service out_of_service sold"`
	Odometer    int                `bson:"odometer" json:"odometer"`
	DriverID    string             `bson:"driver_id,omitempty" json:"driverId,omitempty"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// DisplayLabel is the label interpolated into alert messages and list rows.
func (v *Vehicle) DisplayLabel() string {
	return fmt.Sprintf("%s %s (%s)", v.Brand, v.Model, v.PlateNumber)
}

// Constants for vehicle status
const (
	VehicleStatusActive       = "active"
	VehicleStatusInService    = "in_service"
	VehicleStatusOutOfService = "out_of_service"
	VehicleStatusSold         = "sold"
)

// Constants for vehicle types
const (
	VehicleTypeCar        = "car"
	VehicleTypeVan        = "van"
	VehicleTypeTruck      = "truck"
	VehicleTypeBus        = "bus"
	VehicleTypeMotorcycle = "motorcycle"
)
