package services

import (
	"context"
	"log"
	"time"

	"fleet-admin/internal/dashboard"
	"fleet-admin/internal/models"
	"fleet-admin/internal/repository"
	"fleet-admin/pkg/cache"
)

// DashboardService aggregates every record store into the dashboard snapshot,
// with a short-lived Redis cache in front.
type DashboardService struct {
	vehicleRepo   *repository.VehicleRepository
	driverRepo    *repository.DriverRepository
	serviceRepo   *repository.ServiceRepository
	insuranceRepo *repository.InsuranceRepository
	expenseRepo   *repository.ExpenseRepository
	statsCache    *cache.StatsCache
	now           func() time.Time
}

func NewDashboardService(
	vehicleRepo *repository.VehicleRepository,
	driverRepo *repository.DriverRepository,
	serviceRepo *repository.ServiceRepository,
	insuranceRepo *repository.InsuranceRepository,
	expenseRepo *repository.ExpenseRepository,
) *DashboardService {
	return &DashboardService{
		vehicleRepo:   vehicleRepo,
		driverRepo:    driverRepo,
		serviceRepo:   serviceRepo,
		insuranceRepo: insuranceRepo,
		expenseRepo:   expenseRepo,
		now:           time.Now,
	}
}

func (s *DashboardService) SetStatsCache(statsCache *cache.StatsCache) {
	s.statsCache = statsCache
}

// SetClock overrides the time source. Used by tests.
func (s *DashboardService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *DashboardService) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	if s.statsCache != nil {
		cached, err := s.statsCache.Get(ctx)
		if err != nil {
			log.Printf("Dashboard stats cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	stats := dashboard.Compute(s.now(), snap)

	if s.statsCache != nil {
		if err := s.statsCache.Set(ctx, &stats); err != nil {
			log.Printf("Dashboard stats cache write failed: %v", err)
		}
	}

	return &stats, nil
}

func (s *DashboardService) snapshot() (dashboard.Snapshot, error) {
	snap := dashboard.Snapshot{}

	vehicles, err := s.vehicleRepo.FindAll()
	if err != nil {
		return snap, err
	}
	for _, v := range vehicles {
		snap.Vehicles = append(snap.Vehicles, *v)
	}

	drivers, err := s.driverRepo.FindAll()
	if err != nil {
		return snap, err
	}
	for _, d := range drivers {
		snap.Drivers = append(snap.Drivers, *d)
	}

	maintenance, err := s.serviceRepo.FindAllMaintenance()
	if err != nil {
		return snap, err
	}
	for _, m := range maintenance {
		snap.Maintenance = append(snap.Maintenance, *m)
	}

	oilChanges, err := s.serviceRepo.FindAllOilChanges()
	if err != nil {
		return snap, err
	}
	for _, o := range oilChanges {
		snap.OilChanges = append(snap.OilChanges, *o)
	}

	tireChanges, err := s.serviceRepo.FindAllTireChanges()
	if err != nil {
		return snap, err
	}
	for _, t := range tireChanges {
		snap.TireChanges = append(snap.TireChanges, *t)
	}

	washings, err := s.serviceRepo.FindAllWashings()
	if err != nil {
		return snap, err
	}
	for _, w := range washings {
		snap.Washings = append(snap.Washings, *w)
	}

	inspections, err := s.insuranceRepo.FindAllInspections()
	if err != nil {
		return snap, err
	}
	for _, i := range inspections {
		snap.Inspections = append(snap.Inspections, *i)
	}

	policies, err := s.insuranceRepo.FindAllPolicies()
	if err != nil {
		return snap, err
	}
	for _, p := range policies {
		snap.Insurance = append(snap.Insurance, *p)
	}

	fuel, err := s.expenseRepo.FindAllFuelRecords()
	if err != nil {
		return snap, err
	}
	for _, f := range fuel {
		snap.Fuel = append(snap.Fuel, *f)
	}

	extras, err := s.expenseRepo.FindAllExtraExpenses()
	if err != nil {
		return snap, err
	}
	for _, e := range extras {
		snap.Extras = append(snap.Extras, *e)
	}

	return snap, nil
}
