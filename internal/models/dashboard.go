package models

// DashboardStats is the flat statistics record behind the dashboard screen.
// All ratio fields are 0 when the underlying collection is empty.
type DashboardStats struct {
	TotalVehicles      int            `json:"totalVehicles"`
	VehiclesByStatus   map[string]int `json:"vehiclesByStatus"`
	VehiclesByType     map[string]int `json:"vehiclesByType"`
	ActiveVehicleRate  float64        `json:"activeVehicleRate"`
	TotalDrivers       int            `json:"totalDrivers"`
	DriversByStatus    map[string]int `json:"driversByStatus"`
	MaintenanceDueSoon int            `json:"maintenanceDueSoon"`

	MonthlyFuelCost    float64 `json:"monthlyFuelCost"`
	AvgFuelConsumption float64 `json:"avgFuelConsumption"` // liters per 100 km

	CostByCategory map[string]float64 `json:"costByCategory"`
	CostByMonth    map[string]float64 `json:"costByMonth"` // key "2006-01"
	TotalCost      float64            `json:"totalCost"`
}
