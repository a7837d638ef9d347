package services

import (
	"time"

	"fleet-admin/internal/models"
	"fleet-admin/internal/repository"
)

type DriverService struct {
	statsInvalidator

	driverRepo *repository.DriverRepository
}

func NewDriverService(driverRepo *repository.DriverRepository) *DriverService {
	return &DriverService{driverRepo: driverRepo}
}

type CreateDriverRequest struct {
	FirstName         string    `json:"firstName" validate:"required"`
	LastName          string    `json:"lastName" validate:"required"`
	Phone             string    `json:"phone,omitempty"`
	Email             string    `json:"email,omitempty" validate:"omitempty,email"`
	LicenseNumber     string    `json:"licenseNumber" validate:"required"`
	LicenseCategory   string    `json:"licenseCategory,omitempty"`
	LicenseExpiryDate time.Time `json:"licenseExpiryDate"`
	Status            string    `json:"status,omitempty" validate:"omitempty,oneof=active inactive suspended"`
	AssignedVehicleID string    `json:"assignedVehicleId,omitempty"`
}

type UpdateDriverRequest struct {
	FirstName         string     `json:"firstName,omitempty"`
	LastName          string     `json:"lastName,omitempty"`
	Phone             string     `json:"phone,omitempty"`
	Email             string     `json:"email,omitempty" validate:"omitempty,email"`
	LicenseNumber     string     `json:"licenseNumber,omitempty"`
	LicenseCategory   string     `json:"licenseCategory,omitempty"`
	LicenseExpiryDate *time.Time `json:"licenseExpiryDate,omitempty"`
	Status            string     `json:"status,omitempty" validate:"omitempty,oneof=active inactive suspended"`
	AssignedVehicleID string     `json:"assignedVehicleId,omitempty"`
}

func (s *DriverService) GetAllDrivers() ([]*models.Driver, error) {
	return s.driverRepo.FindAll()
}

func (s *DriverService) GetDriverByID(id string) (*models.Driver, error) {
	return s.driverRepo.FindByID(id)
}

func (s *DriverService) GetDriversByStatus(status string) ([]*models.Driver, error) {
	return s.driverRepo.FindByStatus(status)
}

func (s *DriverService) CreateDriver(req *CreateDriverRequest) (*models.Driver, error) {
	status := req.Status
	if status == "" {
		status = models.DriverStatusActive
	}

	driver := &models.Driver{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Phone:             req.Phone,
		Email:             req.Email,
		LicenseNumber:     req.LicenseNumber,
		LicenseCategory:   req.LicenseCategory,
		LicenseExpiryDate: req.LicenseExpiryDate,
		Status:            status,
		AssignedVehicleID: req.AssignedVehicleID,
	}

	created, err := s.driverRepo.Create(driver)
	if err != nil {
		return nil, err
	}

	s.invalidateStats()
	return created, nil
}

func (s *DriverService) UpdateDriver(id string, req *UpdateDriverRequest) (*models.Driver, error) {
	driver, err := s.driverRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" {
		driver.FirstName = req.FirstName
	}
	if req.LastName != "" {
		driver.LastName = req.LastName
	}
	if req.Phone != "" {
		driver.Phone = req.Phone
	}
	if req.Email != "" {
		driver.Email = req.Email
	}
	if req.LicenseNumber != "" {
		driver.LicenseNumber = req.LicenseNumber
	}
	if req.LicenseCategory != "" {
		driver.LicenseCategory = req.LicenseCategory
	}
	if req.LicenseExpiryDate != nil {
		driver.LicenseExpiryDate = *req.LicenseExpiryDate
	}
	if req.Status != "" {
		driver.Status = req.Status
	}
	if req.AssignedVehicleID != "" {
		driver.AssignedVehicleID = req.AssignedVehicleID
	}

	updated, err := s.driverRepo.Update(id, driver)
	if err != nil {
		return nil, err
	}

	s.invalidateStats()
	return updated, nil
}

func (s *DriverService) DeleteDriver(id string) error {
	if err := s.driverRepo.Delete(id); err != nil {
		return err
	}

	s.invalidateStats()
	return nil
}
