package dashboard

import (
	"time"

	"fleet-admin/internal/alerts"
	"fleet-admin/internal/models"
)

// Snapshot is the read-only record set a single aggregation pass works on.
type Snapshot struct {
	Vehicles    []models.Vehicle
	Drivers     []models.Driver
	Maintenance []models.MaintenanceRecord
	OilChanges  []models.OilChangeRecord
	TireChanges []models.TireChangeRecord
	Washings    []models.WashingRecord
	Inspections []models.TechnicalInspection
	Insurance   []models.InsurancePolicy
	Fuel        []models.FuelRecord
	Extras      []models.ExtraExpense
}

const costMonths = 12

// Compute maps a record snapshot to the flat dashboard statistics record.
// Pure: "now" is injected, there are no side effects, and every ratio guards
// an empty denominator by returning 0.
func Compute(now time.Time, snap Snapshot) models.DashboardStats {
	stats := models.DashboardStats{
		TotalVehicles:    len(snap.Vehicles),
		VehiclesByStatus: make(map[string]int),
		VehiclesByType:   make(map[string]int),
		TotalDrivers:     len(snap.Drivers),
		DriversByStatus:  make(map[string]int),
		CostByCategory:   make(map[string]float64),
		CostByMonth:      monthBuckets(now),
	}

	for _, v := range snap.Vehicles {
		stats.VehiclesByStatus[v.Status]++
		stats.VehiclesByType[v.Type]++
	}
	if stats.TotalVehicles > 0 {
		stats.ActiveVehicleRate = float64(stats.VehiclesByStatus[models.VehicleStatusActive]) / float64(stats.TotalVehicles)
	}

	for _, d := range snap.Drivers {
		stats.DriversByStatus[d.Status]++
	}

	for _, m := range snap.Maintenance {
		if m.Status != models.MaintenanceStatusScheduled || m.ScheduledDate.IsZero() {
			continue
		}
		d := alerts.DaysUntil(now, m.ScheduledDate)
		if d > 0 && d <= alerts.DefaultWindowDays {
			stats.MaintenanceDueSoon++
		}
	}

	stats.MonthlyFuelCost = monthlyFuelCost(now, snap.Fuel)
	stats.AvgFuelConsumption = avgFuelConsumption(snap.Fuel)

	addCosts(&stats, models.CostCategoryMaintenance, maintenanceCosts(snap.Maintenance))
	addCosts(&stats, models.CostCategoryOilChange, dateCosts(snap.OilChanges, func(r models.OilChangeRecord) (time.Time, float64) { return r.Date, r.Cost }))
	addCosts(&stats, models.CostCategoryTireChange, dateCosts(snap.TireChanges, func(r models.TireChangeRecord) (time.Time, float64) { return r.Date, r.Cost }))
	addCosts(&stats, models.CostCategoryWashing, dateCosts(snap.Washings, func(r models.WashingRecord) (time.Time, float64) { return r.Date, r.Cost }))
	addCosts(&stats, models.CostCategoryInspection, dateCosts(snap.Inspections, func(r models.TechnicalInspection) (time.Time, float64) { return r.InspectionDate, r.Cost }))
	addCosts(&stats, models.CostCategoryInsurance, dateCosts(snap.Insurance, func(r models.InsurancePolicy) (time.Time, float64) { return r.StartDate, r.Cost }))
	addCosts(&stats, models.CostCategoryFuel, dateCosts(snap.Fuel, func(r models.FuelRecord) (time.Time, float64) { return r.Date, r.Cost }))
	addCosts(&stats, models.CostCategoryExtra, dateCosts(snap.Extras, func(r models.ExtraExpense) (time.Time, float64) { return r.Date, r.Cost }))

	for _, c := range stats.CostByCategory {
		stats.TotalCost += c
	}

	return stats
}

type datedCost struct {
	date time.Time
	cost float64
}

func dateCosts[T any](records []T, pick func(T) (time.Time, float64)) []datedCost {
	out := make([]datedCost, 0, len(records))
	for _, r := range records {
		date, cost := pick(r)
		out = append(out, datedCost{date: date, cost: cost})
	}
	return out
}

// maintenanceCosts books a record under its completion date when present,
// otherwise under the scheduled date.
func maintenanceCosts(records []models.MaintenanceRecord) []datedCost {
	out := make([]datedCost, 0, len(records))
	for _, m := range records {
		date := m.ScheduledDate
		if m.CompletedAt != nil {
			date = *m.CompletedAt
		}
		out = append(out, datedCost{date: date, cost: m.Cost})
	}
	return out
}

func addCosts(stats *models.DashboardStats, category string, costs []datedCost) {
	total := 0.0
	for _, c := range costs {
		total += c.cost
		key := c.date.Format("2006-01")
		if _, ok := stats.CostByMonth[key]; ok {
			stats.CostByMonth[key] += c.cost
		}
	}
	stats.CostByCategory[category] = total
}

// monthBuckets seeds the trailing twelve month keys with zero so charts get a
// continuous axis even for empty months.
func monthBuckets(now time.Time) map[string]float64 {
	buckets := make(map[string]float64, costMonths)
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := 0; i < costMonths; i++ {
		buckets[start.AddDate(0, -i, 0).Format("2006-01")] = 0
	}
	return buckets
}

func monthlyFuelCost(now time.Time, fuel []models.FuelRecord) float64 {
	total := 0.0
	for _, f := range fuel {
		if f.Date.Year() == now.Year() && f.Date.Month() == now.Month() {
			total += f.Cost
		}
	}
	return total
}

// avgFuelConsumption estimates fleet consumption in liters per 100 km from
// refuelling history: per vehicle, liters filled over the odometer span of
// its records. Vehicles with fewer than two odometer readings are skipped;
// with no usable data the result is 0, never NaN.
func avgFuelConsumption(fuel []models.FuelRecord) float64 {
	type usage struct {
		liters           float64
		minOdo, maxOdo   int
		odometerReadings int
	}
	byVehicle := make(map[string]*usage)

	for _, f := range fuel {
		key := f.VehicleID.Hex()
		u, ok := byVehicle[key]
		if !ok {
			u = &usage{}
			byVehicle[key] = u
		}
		u.liters += f.Liters
		if f.Odometer > 0 {
			if u.odometerReadings == 0 || f.Odometer < u.minOdo {
				u.minOdo = f.Odometer
			}
			if f.Odometer > u.maxOdo {
				u.maxOdo = f.Odometer
			}
			u.odometerReadings++
		}
	}

	totalLiters := 0.0
	totalDistance := 0
	for _, u := range byVehicle {
		if u.odometerReadings < 2 || u.maxOdo <= u.minOdo {
			continue
		}
		totalLiters += u.liters
		totalDistance += u.maxOdo - u.minOdo
	}

	if totalDistance == 0 {
		return 0
	}
	return totalLiters / float64(totalDistance) * 100
}
