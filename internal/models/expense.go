package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FuelRecord is a single refuelling entry.
type FuelRecord struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleID    primitive.ObjectID `bson:"vehicle_id" json:"vehicleId"`
	Date         time.Time          `bson:"date" json:"date"`
	Liters       float64            `bson:"liters" json:"liters"`
	PricePerUnit float64            `bson:"price_per_unit" json:"pricePerUnit"`
	Cost         float64            `bson:"cost" json:"cost"`
	Odometer     int                `bson:"odometer" json:"odometer"`
	Station      string             `bson:"station,omitempty" json:"station,omitempty"`
	FullTank     bool               `bson:"full_tank" json:"fullTank"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

// ExtraExpense covers costs outside the dedicated categories (parking fees,
// tolls, fines, accessories).
type ExtraExpense struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleID   primitive.ObjectID `bson:"vehicle_id" json:"vehicleId"`
	Date        time.Time          `bson:"date" json:"date"`
	Category    string             `bson:"category" json:"category"`
	Description string             `bson:"description" json:"description"`
	Cost        float64            `bson:"cost" json:"cost"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Cost category keys used in dashboard breakdowns.
const (
	CostCategoryMaintenance = "maintenance"
	CostCategoryOilChange   = "oil_change"
	CostCategoryTireChange  = "tire_change"
	CostCategoryWashing     = "washing"
	CostCategoryInspection  = "inspection"
	CostCategoryInsurance   = "insurance"
	CostCategoryFuel        = "fuel"
	CostCategoryExtra       = "extra"
)
