package services

import (
	"errors"
	"time"

	"fleet-admin/internal/models"
	"fleet-admin/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceRecordService handles maintenance, oil change, tire change and
// washing records.
type ServiceRecordService struct {
	statsInvalidator

	serviceRepo *repository.ServiceRepository
	vehicleRepo *repository.VehicleRepository
}

func NewServiceRecordService(serviceRepo *repository.ServiceRepository, vehicleRepo *repository.VehicleRepository) *ServiceRecordService {
	return &ServiceRecordService{
		serviceRepo: serviceRepo,
		vehicleRepo: vehicleRepo,
	}
}

func (s *ServiceRecordService) vehicleObjectID(vehicleID string) (primitive.ObjectID, error) {
	if _, err := s.vehicleRepo.FindByID(vehicleID); err != nil {
		return primitive.NilObjectID, err
	}
	return primitive.ObjectIDFromHex(vehicleID)
}

// Maintenance

type CreateMaintenanceRequest struct {
	VehicleID     string    `json:"vehicleId" validate:"required"`
	Type          string    `json:"type" validate:"required,oneof=general brake_service engine transmission electrical bodywork repair other"`
	Description   string    `json:"description,omitempty"`
	ScheduledDate time.Time `json:"scheduledDate"`
	Cost          float64   `json:"cost,omitempty" validate:"omitempty,gte=0"`
	ServiceCenter string    `json:"serviceCenter,omitempty"`
	Odometer      int       `json:"odometer,omitempty" validate:"omitempty,gte=0"`
	Notes         string    `json:"notes,omitempty"`
}

type UpdateMaintenanceRequest struct {
	Type          string     `json:"type,omitempty" validate:"omitempty,oneof=general brake_service engine transmission electrical bodywork repair other"`
	Description   string     `json:"description,omitempty"`
	ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
	Cost          *float64   `json:"cost,omitempty" validate:"omitempty,gte=0"`
	ServiceCenter string     `json:"serviceCenter,omitempty"`
	Odometer      int        `json:"odometer,omitempty" validate:"omitempty,gte=0"`
	Status        string     `json:"status,omitempty" validate:"omitempty,oneof=scheduled in_progress completed cancelled"`
	Notes         string     `json:"notes,omitempty"`
}

func (s *ServiceRecordService) CreateMaintenance(req *CreateMaintenanceRequest) (*models.MaintenanceRecord, error) {
	vehicleID, err := s.vehicleObjectID(req.VehicleID)
	if err != nil {
		return nil, err
	}

	record := &models.MaintenanceRecord{
		VehicleID:     vehicleID,
		Type:          req.Type,
		Description:   req.Description,
		ScheduledDate: req.ScheduledDate,
		Cost:          req.Cost,
		ServiceCenter: req.ServiceCenter,
		Odometer:      req.Odometer,
		Status:        models.MaintenanceStatusScheduled,
		Notes:         req.Notes,
	}

	if err := s.serviceRepo.CreateMaintenance(record); err != nil {
		return nil, err
	}

	s.invalidateStats()
	return record, nil
}

func (s *ServiceRecordService) GetAllMaintenance() ([]*models.MaintenanceRecord, error) {
	return s.serviceRepo.FindAllMaintenance()
}

func (s *ServiceRecordService) GetMaintenanceByID(id string) (*models.MaintenanceRecord, error) {
	return s.serviceRepo.FindMaintenanceByID(id)
}

func (s *ServiceRecordService) GetMaintenanceByVehicleID(vehicleID string) ([]*models.MaintenanceRecord, error) {
	return s.serviceRepo.FindMaintenanceByVehicleID(vehicleID)
}

func (s *ServiceRecordService) UpdateMaintenance(id string, req *UpdateMaintenanceRequest) (*models.MaintenanceRecord, error) {
	record, err := s.serviceRepo.FindMaintenanceByID(id)
	if err != nil {
		return nil, err
	}

	if req.Type != "" {
		record.Type = req.Type
	}
	if req.Description != "" {
		record.Description = req.Description
	}
	if req.ScheduledDate != nil {
		record.ScheduledDate = *req.ScheduledDate
	}
	if req.Cost != nil {
		record.Cost = *req.Cost
	}
	if req.ServiceCenter != "" {
		record.ServiceCenter = req.ServiceCenter
	}
	if req.Odometer != 0 {
		record.Odometer = req.Odometer
	}
	if req.Notes != "" {
		record.Notes = req.Notes
	}
	if req.Status != "" {
		if err := applyMaintenanceStatus(record, req.Status); err != nil {
			return nil, err
		}
	}

	if err := s.serviceRepo.UpdateMaintenance(id, record); err != nil {
		return nil, err
	}

	s.invalidateStats()
	return record, nil
}

// applyMaintenanceStatus enforces the status lifecycle. Completing a record
// stamps CompletedAt; a completed record cannot move back.
func applyMaintenanceStatus(record *models.MaintenanceRecord, status string) error {
	if record.Status == models.MaintenanceStatusCompleted && status != models.MaintenanceStatusCompleted {
		return errors.New("completed maintenance cannot change status")
	}

	if status == models.MaintenanceStatusCompleted && record.CompletedAt == nil {
		now := time.Now()
		record.CompletedAt = &now
	}

	record.Status = status
	return nil
}

func (s *ServiceRecordService) DeleteMaintenance(id string) error {
	if err := s.serviceRepo.DeleteMaintenance(id); err != nil {
		return err
	}

	s.invalidateStats()
	return nil
}

// Oil changes

type CreateOilChangeRequest struct {
	VehicleID         string     `json:"vehicleId" validate:"required"`
	Date              time.Time  `json:"date"`
	Odometer          int        `json:"odometer,omitempty" validate:"omitempty,gte=0"`
	OilType           string     `json:"oilType,omitempty"`
	Cost              float64    `json:"cost,omitempty" validate:"omitempty,gte=0"`
	NextOilChangeDate *time.Time `json:"nextOilChangeDate,omitempty"`
	NextOdometer      *int       `json:"nextOdometer,omitempty"`
	Notes             string     `json:"notes,omitempty"`
}

type UpdateOilChangeRequest struct {
	Date              *time.Time `json:"date,omitempty"`
	Odometer          int        `json:"odometer,omitempty" validate:"omitempty,gte=0"`
	OilType           string     `json:"oilType,omitempty"`
	Cost              *float64   `json:"cost,omitempty" validate:"omitempty,gte=0"`
	NextOilChangeDate *time.Time `json:"nextOilChangeDate,omitempty"`
	NextOdometer      *int       `json:"nextOdometer,omitempty"`
	Notes             string     `json:"notes,omitempty"`
}

func (s *ServiceRecordService) CreateOilChange(req *CreateOilChangeRequest) (*models.OilChangeRecord, error) {
	vehicleID, err := s.vehicleObjectID(req.VehicleID)
	if err != nil {
		return nil, err
	}

	record := &models.OilChangeRecord{
		VehicleID:         vehicleID,
		Date:              req.Date,
		Odometer:          req.Odometer,
		OilType:           req.OilType,
		Cost:              req.Cost,
		NextOilChangeDate: req.NextOilChangeDate,
		NextOdometer:      req.NextOdometer,
		Status:            models.MaintenanceStatusCompleted,
		Notes:             req.Notes,
	}

	if err := s.serviceRepo.CreateOilChange(record); err != nil {
		return nil, err
	}

	s.invalidateStats()
	return record, nil
}

func (s *ServiceRecordService) GetAllOilChanges() ([]*models.OilChangeRecord, error) {
	return s.serviceRepo.FindAllOilChanges()
}

func (s *ServiceRecordService) GetOilChangeByID(id string) (*models.OilChangeRecord, error) {
	return s.serviceRepo.FindOilChangeByID(id)
}

func (s *ServiceRecordService) GetOilChangesByVehicleID(vehicleID string) ([]*models.OilChangeRecord, error) {
	return s.serviceRepo.FindOilChangesByVehicleID(vehicleID)
}

func (s *ServiceRecordService) UpdateOilChange(id string, req *UpdateOilChangeRequest) (*models.OilChangeRecord, error) {
	record, err := s.serviceRepo.FindOilChangeByID(id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		record.Date = *req.Date
	}
	if req.Odometer != 0 {
		record.Odometer = req.Odometer
	}
	if req.OilType != "" {
		record.OilType = req.OilType
	}
	if req.Cost != nil {
		record.Cost = *req.Cost
	}
	if req.NextOilChangeDate != nil {
		record.NextOilChangeDate = req.NextOilChangeDate
	}
	if req.NextOdometer != nil {
		record.NextOdometer = req.NextOdometer
	}
	if req.Notes != "" {
		record.Notes = req.Notes
	}

	if err := s.serviceRepo.UpdateOilChange(id, record); err != nil {
		return nil, err
	}

	s.invalidateStats()
	return record, nil
}

func (s *ServiceRecordService) DeleteOilChange(id string) error {
	if err := s.serviceRepo.DeleteOilChange(id); err != nil {
		return err
	}

	s.invalidateStats()
	return nil
}

// Tire changes

type CreateTireChangeRequest struct {
	VehicleID string    `json:"vehicleId" validate:"required"`
	Date      time.Time `json:"date"`
	TireType  string    `json:"tireType,omitempty"`
	Position  string    `json:"position,omitempty"`
	Cost      float64   `json:"cost,omitempty" validate:"omitempty,gte=0"`
	Odometer  int       `json:"odometer,omitempty" validate:"omitempty,gte=0"`
	Notes     string    `json:"notes,omitempty"`
}

func (s *ServiceRecordService) CreateTireChange(req *CreateTireChangeRequest) (*models.TireChangeRecord, error) {
	vehicleID, err := s.vehicleObjectID(req.VehicleID)
	if err != nil {
		return nil, err
	}

	record := &models.TireChangeRecord{
		VehicleID: vehicleID,
		Date:      req.Date,
		TireType:  req.TireType,
		Position:  req.Position,
		Cost:      req.Cost,
		Odometer:  req.Odometer,
		Notes:     req.Notes,
	}

	if err := s.serviceRepo.CreateTireChange(record); err != nil {
		return nil, err
	}

	s.invalidateStats()
	return record, nil
}

func (s *ServiceRecordService) GetAllTireChanges() ([]*models.TireChangeRecord, error) {
	return s.serviceRepo.FindAllTireChanges()
}

func (s *ServiceRecordService) GetTireChangeByID(id string) (*models.TireChangeRecord, error) {
	return s.serviceRepo.FindTireChangeByID(id)
}

func (s *ServiceRecordService) UpdateTireChange(id string, record *models.TireChangeRecord) (*models.TireChangeRecord, error) {
	existing, err := s.serviceRepo.FindTireChangeByID(id)
	if err != nil {
		return nil, err
	}

	record.ID = existing.ID
	record.VehicleID = existing.VehicleID
	record.CreatedAt = existing.CreatedAt

	if err := s.serviceRepo.UpdateTireChange(id, record); err != nil {
		return nil, err
	}

	s.invalidateStats()
	return record, nil
}

func (s *ServiceRecordService) DeleteTireChange(id string) error {
	if err := s.serviceRepo.DeleteTireChange(id); err != nil {
		return err
	}

	s.invalidateStats()
	return nil
}

// Washings

type CreateWashingRequest struct {
	VehicleID string    `json:"vehicleId" validate:"required"`
	Date      time.Time `json:"date"`
	WashType  string    `json:"washType,omitempty"`
	Cost      float64   `json:"cost,omitempty" validate:"omitempty,gte=0"`
	Location  string    `json:"location,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}

func (s *ServiceRecordService) CreateWashing(req *CreateWashingRequest) (*models.WashingRecord, error) {
	vehicleID, err := s.vehicleObjectID(req.VehicleID)
	if err != nil {
		return nil, err
	}

	record := &models.WashingRecord{
		VehicleID: vehicleID,
		Date:      req.Date,
		WashType:  req.WashType,
		Cost:      req.Cost,
		Location:  req.Location,
		Notes:     req.Notes,
	}

	if err := s.serviceRepo.CreateWashing(record); err != nil {
		return nil, err
	}

	s.invalidateStats()
	return record, nil
}

func (s *ServiceRecordService) GetAllWashings() ([]*models.WashingRecord, error) {
	return s.serviceRepo.FindAllWashings()
}

func (s *ServiceRecordService) GetWashingByID(id string) (*models.WashingRecord, error) {
	return s.serviceRepo.FindWashingByID(id)
}

func (s *ServiceRecordService) UpdateWashing(id string, record *models.WashingRecord) (*models.WashingRecord, error) {
	existing, err := s.serviceRepo.FindWashingByID(id)
	if err != nil {
		return nil, err
	}

	record.ID = existing.ID
	record.VehicleID = existing.VehicleID
	record.CreatedAt = existing.CreatedAt

	if err := s.serviceRepo.UpdateWashing(id, record); err != nil {
		return nil, err
	}

	s.invalidateStats()
	return record, nil
}

func (s *ServiceRecordService) DeleteWashing(id string) error {
	if err := s.serviceRepo.DeleteWashing(id); err != nil {
		return err
	}

	s.invalidateStats()
	return nil
}
