package dashboard

import (
	"testing"
	"time"

	"fleet-admin/internal/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var statsNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func TestComputeEmptySnapshot(t *testing.T) {
	stats := Compute(statsNow, Snapshot{})

	assert.Equal(t, 0, stats.TotalVehicles)
	assert.Equal(t, 0, stats.TotalDrivers)
	assert.Equal(t, 0.0, stats.ActiveVehicleRate)
	assert.Equal(t, 0.0, stats.AvgFuelConsumption)
	assert.Equal(t, 0.0, stats.MonthlyFuelCost)
	assert.Equal(t, 0.0, stats.TotalCost)
	assert.Equal(t, 0, stats.MaintenanceDueSoon)

	// Month buckets are always seeded so charts get a continuous axis.
	assert.Len(t, stats.CostByMonth, 12)
	assert.Contains(t, stats.CostByMonth, "2024-06")
	assert.Contains(t, stats.CostByMonth, "2023-07")
	assert.NotContains(t, stats.CostByMonth, "2023-06")
}

func TestComputeVehicleBreakdown(t *testing.T) {
	snap := Snapshot{
		Vehicles: []models.Vehicle{
			{Status: models.VehicleStatusActive, Type: "car"},
			{Status: models.VehicleStatusActive, Type: "van"},
			{Status: models.VehicleStatusInService, Type: "car"},
			{Status: models.VehicleStatusSold, Type: "truck"},
		},
		Drivers: []models.Driver{
			{Status: "active"},
			{Status: "active"},
			{Status: "suspended"},
		},
	}

	stats := Compute(statsNow, snap)

	assert.Equal(t, 4, stats.TotalVehicles)
	assert.Equal(t, 0.5, stats.ActiveVehicleRate)
	assert.Equal(t, 2, stats.VehiclesByStatus[models.VehicleStatusActive])
	assert.Equal(t, 1, stats.VehiclesByStatus[models.VehicleStatusInService])
	assert.Equal(t, 2, stats.VehiclesByType["car"])
	assert.Equal(t, 1, stats.VehiclesByType["van"])

	assert.Equal(t, 3, stats.TotalDrivers)
	assert.Equal(t, 2, stats.DriversByStatus["active"])
	assert.Equal(t, 1, stats.DriversByStatus["suspended"])
}

func TestComputeMaintenanceDueSoon(t *testing.T) {
	snap := Snapshot{
		Maintenance: []models.MaintenanceRecord{
			// In the window.
			{Status: models.MaintenanceStatusScheduled, ScheduledDate: statsNow.AddDate(0, 0, 3)},
			{Status: models.MaintenanceStatusScheduled, ScheduledDate: statsNow.AddDate(0, 0, 7)},
			// Outside the window.
			{Status: models.MaintenanceStatusScheduled, ScheduledDate: statsNow.AddDate(0, 0, 8)},
			// Overdue records are not "due soon".
			{Status: models.MaintenanceStatusScheduled, ScheduledDate: statsNow.AddDate(0, 0, -1)},
			// Only scheduled records count.
			{Status: models.MaintenanceStatusCompleted, ScheduledDate: statsNow.AddDate(0, 0, 3)},
			{Status: models.MaintenanceStatusScheduled},
		},
	}

	stats := Compute(statsNow, snap)
	assert.Equal(t, 2, stats.MaintenanceDueSoon)
}

func TestComputeMonthlyFuelCost(t *testing.T) {
	vehicleID := primitive.NewObjectID()
	snap := Snapshot{
		Fuel: []models.FuelRecord{
			{VehicleID: vehicleID, Date: statsNow, Cost: 80},
			{VehicleID: vehicleID, Date: statsNow.AddDate(0, 0, 20), Cost: 70},
			{VehicleID: vehicleID, Date: statsNow.AddDate(0, -1, 0), Cost: 60},
		},
	}

	stats := Compute(statsNow, snap)
	assert.Equal(t, 150.0, stats.MonthlyFuelCost)
}

func TestComputeAvgFuelConsumption(t *testing.T) {
	tracked := primitive.NewObjectID()
	single := primitive.NewObjectID()

	snap := Snapshot{
		Fuel: []models.FuelRecord{
			// 100 liters over 1000 km is 10 L/100km.
			{VehicleID: tracked, Date: statsNow, Liters: 40, Odometer: 10000},
			{VehicleID: tracked, Date: statsNow, Liters: 60, Odometer: 11000},
			// A single odometer reading cannot yield a distance.
			{VehicleID: single, Date: statsNow, Liters: 50, Odometer: 5000},
		},
	}

	stats := Compute(statsNow, snap)
	assert.InDelta(t, 10.0, stats.AvgFuelConsumption, 0.001)
}

func TestComputeAvgFuelConsumptionZeroDistance(t *testing.T) {
	vehicleID := primitive.NewObjectID()
	snap := Snapshot{
		Fuel: []models.FuelRecord{
			{VehicleID: vehicleID, Liters: 40, Odometer: 10000},
			{VehicleID: vehicleID, Liters: 60, Odometer: 10000},
		},
	}

	stats := Compute(statsNow, snap)
	assert.Equal(t, 0.0, stats.AvgFuelConsumption)
}

func TestComputeCostAggregation(t *testing.T) {
	vehicleID := primitive.NewObjectID()
	completed := statsNow.AddDate(0, -1, 10)

	snap := Snapshot{
		Maintenance: []models.MaintenanceRecord{
			// Booked under the completion month, not the scheduled month.
			{VehicleID: vehicleID, Status: models.MaintenanceStatusCompleted, ScheduledDate: statsNow.AddDate(0, -3, 0), CompletedAt: &completed, Cost: 300},
			{VehicleID: vehicleID, Status: models.MaintenanceStatusScheduled, ScheduledDate: statsNow, Cost: 200},
		},
		OilChanges: []models.OilChangeRecord{
			{VehicleID: vehicleID, Date: statsNow, Cost: 50},
		},
		Fuel: []models.FuelRecord{
			{VehicleID: vehicleID, Date: statsNow, Cost: 80},
			// Older than the month window, still part of the category total.
			{VehicleID: vehicleID, Date: statsNow.AddDate(-2, 0, 0), Cost: 40},
		},
		Extras: []models.ExtraExpense{
			{VehicleID: vehicleID, Date: statsNow, Category: "parking", Cost: 15},
		},
	}

	stats := Compute(statsNow, snap)

	assert.Equal(t, 500.0, stats.CostByCategory[models.CostCategoryMaintenance])
	assert.Equal(t, 50.0, stats.CostByCategory[models.CostCategoryOilChange])
	assert.Equal(t, 120.0, stats.CostByCategory[models.CostCategoryFuel])
	assert.Equal(t, 15.0, stats.CostByCategory[models.CostCategoryExtra])
	assert.Equal(t, 685.0, stats.TotalCost)

	assert.Equal(t, 300.0, stats.CostByMonth[completed.Format("2006-01")])
	assert.Equal(t, 345.0, stats.CostByMonth["2024-06"])
	assert.NotContains(t, stats.CostByMonth, statsNow.AddDate(-2, 0, 0).Format("2006-01"))
}
