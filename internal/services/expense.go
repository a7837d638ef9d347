package services

import (
	"time"

	"fleet-admin/internal/models"
	"fleet-admin/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExpenseService handles fuel records and extra expenses.
type ExpenseService struct {
	statsInvalidator

	expenseRepo *repository.ExpenseRepository
	vehicleRepo *repository.VehicleRepository
}

func NewExpenseService(expenseRepo *repository.ExpenseRepository, vehicleRepo *repository.VehicleRepository) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		vehicleRepo: vehicleRepo,
	}
}

func (s *ExpenseService) vehicleObjectID(vehicleID string) (primitive.ObjectID, error) {
	if _, err := s.vehicleRepo.FindByID(vehicleID); err != nil {
		return primitive.NilObjectID, err
	}
	return primitive.ObjectIDFromHex(vehicleID)
}

// Fuel records

type CreateFuelRecordRequest struct {
	VehicleID    string    `json:"vehicleId" validate:"required"`
	Date         time.Time `json:"date"`
	Liters       float64   `json:"liters" validate:"required,gt=0"`
	PricePerUnit float64   `json:"pricePerUnit,omitempty" validate:"omitempty,gte=0"`
	Cost         float64   `json:"cost,omitempty" validate:"omitempty,gte=0"`
	Odometer     int       `json:"odometer,omitempty" validate:"omitempty,gte=0"`
	Station      string    `json:"station,omitempty"`
	FullTank     bool      `json:"fullTank"`
}

type UpdateFuelRecordRequest struct {
	Date         *time.Time `json:"date,omitempty"`
	Liters       *float64   `json:"liters,omitempty" validate:"omitempty,gt=0"`
	PricePerUnit *float64   `json:"pricePerUnit,omitempty" validate:"omitempty,gte=0"`
	Cost         *float64   `json:"cost,omitempty" validate:"omitempty,gte=0"`
	Odometer     int        `json:"odometer,omitempty" validate:"omitempty,gte=0"`
	Station      string     `json:"station,omitempty"`
	FullTank     *bool      `json:"fullTank,omitempty"`
}

func (s *ExpenseService) CreateFuelRecord(req *CreateFuelRecordRequest) (*models.FuelRecord, error) {
	vehicleID, err := s.vehicleObjectID(req.VehicleID)
	if err != nil {
		return nil, err
	}

	cost := req.Cost
	if cost == 0 && req.PricePerUnit > 0 {
		cost = req.Liters * req.PricePerUnit
	}

	record := &models.FuelRecord{
		VehicleID:    vehicleID,
		Date:         req.Date,
		Liters:       req.Liters,
		PricePerUnit: req.PricePerUnit,
		Cost:         cost,
		Odometer:     req.Odometer,
		Station:      req.Station,
		FullTank:     req.FullTank,
	}

	if err := s.expenseRepo.CreateFuelRecord(record); err != nil {
		return nil, err
	}

	s.invalidateStats()
	return record, nil
}

func (s *ExpenseService) GetAllFuelRecords() ([]*models.FuelRecord, error) {
	return s.expenseRepo.FindAllFuelRecords()
}

func (s *ExpenseService) GetFuelRecordByID(id string) (*models.FuelRecord, error) {
	return s.expenseRepo.FindFuelRecordByID(id)
}

func (s *ExpenseService) GetFuelRecordsByVehicleID(vehicleID string) ([]*models.FuelRecord, error) {
	return s.expenseRepo.FindFuelRecordsByVehicleID(vehicleID)
}

func (s *ExpenseService) UpdateFuelRecord(id string, req *UpdateFuelRecordRequest) (*models.FuelRecord, error) {
	record, err := s.expenseRepo.FindFuelRecordByID(id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		record.Date = *req.Date
	}
	if req.Liters != nil {
		record.Liters = *req.Liters
	}
	if req.PricePerUnit != nil {
		record.PricePerUnit = *req.PricePerUnit
	}
	if req.Cost != nil {
		record.Cost = *req.Cost
	}
	if req.Odometer != 0 {
		record.Odometer = req.Odometer
	}
	if req.Station != "" {
		record.Station = req.Station
	}
	if req.FullTank != nil {
		record.FullTank = *req.FullTank
	}

	if err := s.expenseRepo.UpdateFuelRecord(id, record); err != nil {
		return nil, err
	}

	s.invalidateStats()
	return record, nil
}

func (s *ExpenseService) DeleteFuelRecord(id string) error {
	if err := s.expenseRepo.DeleteFuelRecord(id); err != nil {
		return err
	}

	s.invalidateStats()
	return nil
}

// Extra expenses

type CreateExtraExpenseRequest struct {
	VehicleID   string    `json:"vehicleId" validate:"required"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category" validate:"required"`
	Description string    `json:"description,omitempty"`
	Cost        float64   `json:"cost" validate:"required,gte=0"`
}

type UpdateExtraExpenseRequest struct {
	Date        *time.Time `json:"date,omitempty"`
	Category    string     `json:"category,omitempty"`
	Description string     `json:"description,omitempty"`
	Cost        *float64   `json:"cost,omitempty" validate:"omitempty,gte=0"`
}

func (s *ExpenseService) CreateExtraExpense(req *CreateExtraExpenseRequest) (*models.ExtraExpense, error) {
	vehicleID, err := s.vehicleObjectID(req.VehicleID)
	if err != nil {
		return nil, err
	}

	expense := &models.ExtraExpense{
		VehicleID:   vehicleID,
		Date:        req.Date,
		Category:    req.Category,
		Description: req.Description,
		Cost:        req.Cost,
	}

	if err := s.expenseRepo.CreateExtraExpense(expense); err != nil {
		return nil, err
	}

	s.invalidateStats()
	return expense, nil
}

func (s *ExpenseService) GetAllExtraExpenses() ([]*models.ExtraExpense, error) {
	return s.expenseRepo.FindAllExtraExpenses()
}

func (s *ExpenseService) GetExtraExpenseByID(id string) (*models.ExtraExpense, error) {
	return s.expenseRepo.FindExtraExpenseByID(id)
}

func (s *ExpenseService) UpdateExtraExpense(id string, req *UpdateExtraExpenseRequest) (*models.ExtraExpense, error) {
	expense, err := s.expenseRepo.FindExtraExpenseByID(id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		expense.Date = *req.Date
	}
	if req.Category != "" {
		expense.Category = req.Category
	}
	if req.Description != "" {
		expense.Description = req.Description
	}
	if req.Cost != nil {
		expense.Cost = *req.Cost
	}

	if err := s.expenseRepo.UpdateExtraExpense(id, expense); err != nil {
		return nil, err
	}

	s.invalidateStats()
	return expense, nil
}

func (s *ExpenseService) DeleteExtraExpense(id string) error {
	if err := s.expenseRepo.DeleteExtraExpense(id); err != nil {
		return err
	}

	s.invalidateStats()
	return nil
}
