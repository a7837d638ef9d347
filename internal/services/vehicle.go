package services

import (
	"errors"

	"fleet-admin/internal/models"
	"fleet-admin/internal/repository"
)

type VehicleService struct {
	statsInvalidator

	vehicleRepo *repository.VehicleRepository
}

func NewVehicleService(vehicleRepo *repository.VehicleRepository) *VehicleService {
	return &VehicleService{vehicleRepo: vehicleRepo}
}

type CreateVehicleRequest struct {
	PlateNumber string `json:"plateNumber" validate:"required,min=1,max=20"`
	Brand       string `json:"brand" validate:"required,min=1,max=50"`
	Model       string `json:"model" validate:"required,min=1,max=50"`
	Year        int    `json:"year,omitempty" validate:"omitempty,min=1900,max=2030"`
	VIN         string `json:"vin,omitempty"`
	Type        string `json:"type" validate:"required,oneof=car van truck bus motorcycle"`
	FuelType    string `json:"fuelType,omitempty" validate:"omitempty,oneof=petrol diesel electric hybrid lpg"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=active in_service out_of_service sold"`
	Odometer    int    `json:"odometer,omitempty" validate:"omitempty,gte=0"`
	DriverID    string `json:"driverId,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type UpdateVehicleRequest struct {
	PlateNumber string `json:"plateNumber,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Model       string `json:"model,omitempty"`
	Year        int    `json:"year,omitempty" validate:"omitempty,min=1900,max=2030"`
	VIN         string `json:"vin,omitempty"`
	Type        string `json:"type,omitempty" validate:"omitempty,oneof=car van truck bus motorcycle"`
	FuelType    string `json:"fuelType,omitempty" validate:"omitempty,oneof=petrol diesel electric hybrid lpg"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=active in_service out_of_service sold"`
	Odometer    int    `json:"odometer,omitempty" validate:"omitempty,gte=0"`
	DriverID    string `json:"driverId,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

func (s *VehicleService) GetAllVehicles() ([]*models.Vehicle, error) {
	return s.vehicleRepo.FindAll()
}

func (s *VehicleService) GetVehicleByID(id string) (*models.Vehicle, error) {
	return s.vehicleRepo.FindByID(id)
}

func (s *VehicleService) GetVehiclesByStatus(status string) ([]*models.Vehicle, error) {
	return s.vehicleRepo.FindByStatus(status)
}

func (s *VehicleService) CreateVehicle(req *CreateVehicleRequest) (*models.Vehicle, error) {
	if existing, _ := s.vehicleRepo.FindByPlateNumber(req.PlateNumber); existing != nil {
		return nil, errors.New("plate number already exists")
	}

	status := req.Status
	if status == "" {
		status = models.VehicleStatusActive
	}

	vehicle := &models.Vehicle{
		PlateNumber: req.PlateNumber,
		Brand:       req.Brand,
		Model:       req.Model,
		Year:        req.Year,
		VIN:         req.VIN,
		Type:        req.Type,
		FuelType:    req.FuelType,
		Status:      status,
		Odometer:    req.Odometer,
		DriverID:    req.DriverID,
		Notes:       req.Notes,
	}

	created, err := s.vehicleRepo.Create(vehicle)
	if err != nil {
		return nil, err
	}

	s.invalidateStats()
	return created, nil
}

func (s *VehicleService) UpdateVehicle(id string, req *UpdateVehicleRequest) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.PlateNumber != "" && req.PlateNumber != vehicle.PlateNumber {
		if existing, _ := s.vehicleRepo.FindByPlateNumber(req.PlateNumber); existing != nil {
			return nil, errors.New("plate number already exists")
		}
		vehicle.PlateNumber = req.PlateNumber
	}
	if req.Brand != "" {
		vehicle.Brand = req.Brand
	}
	if req.Model != "" {
		vehicle.Model = req.Model
	}
	if req.Year != 0 {
		vehicle.Year = req.Year
	}
	if req.VIN != "" {
		vehicle.VIN = req.VIN
	}
	if req.Type != "" {
		vehicle.Type = req.Type
	}
	if req.FuelType != "" {
		vehicle.FuelType = req.FuelType
	}
	if req.Status != "" {
		vehicle.Status = req.Status
	}
	if req.Odometer != 0 {
		vehicle.Odometer = req.Odometer
	}
	if req.DriverID != "" {
		vehicle.DriverID = req.DriverID
	}
	if req.Notes != "" {
		vehicle.Notes = req.Notes
	}

	updated, err := s.vehicleRepo.Update(id, vehicle)
	if err != nil {
		return nil, err
	}

	s.invalidateStats()
	return updated, nil
}

func (s *VehicleService) DeleteVehicle(id string) error {
	if err := s.vehicleRepo.Delete(id); err != nil {
		return err
	}

	s.invalidateStats()
	return nil
}
