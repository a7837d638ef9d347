package services

import (
	"errors"
	"time"

	"fleet-admin/internal/models"
	"fleet-admin/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InsuranceService handles insurance policies and technical inspections.
type InsuranceService struct {
	statsInvalidator

	insuranceRepo *repository.InsuranceRepository
	vehicleRepo   *repository.VehicleRepository
}

func NewInsuranceService(insuranceRepo *repository.InsuranceRepository, vehicleRepo *repository.VehicleRepository) *InsuranceService {
	return &InsuranceService{
		insuranceRepo: insuranceRepo,
		vehicleRepo:   vehicleRepo,
	}
}

func (s *InsuranceService) vehicleObjectID(vehicleID string) (primitive.ObjectID, error) {
	if _, err := s.vehicleRepo.FindByID(vehicleID); err != nil {
		return primitive.NilObjectID, err
	}
	return primitive.ObjectIDFromHex(vehicleID)
}

// Insurance policies

type CreatePolicyRequest struct {
	VehicleID    string    `json:"vehicleId" validate:"required"`
	Company      string    `json:"company" validate:"required"`
	PolicyNumber string    `json:"policyNumber" validate:"required"`
	Coverage     string    `json:"coverage,omitempty"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Cost         float64   `json:"cost,omitempty" validate:"omitempty,gte=0"`
	Notes        string    `json:"notes,omitempty"`
}

type UpdatePolicyRequest struct {
	Company      string     `json:"company,omitempty"`
	PolicyNumber string     `json:"policyNumber,omitempty"`
	Coverage     string     `json:"coverage,omitempty"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	Cost         *float64   `json:"cost,omitempty" validate:"omitempty,gte=0"`
	Status       string     `json:"status,omitempty" validate:"omitempty,oneof=active expired cancelled"`
	Notes        string     `json:"notes,omitempty"`
}

func (s *InsuranceService) CreatePolicy(req *CreatePolicyRequest) (*models.InsurancePolicy, error) {
	vehicleID, err := s.vehicleObjectID(req.VehicleID)
	if err != nil {
		return nil, err
	}

	if !req.EndDate.After(req.StartDate) {
		return nil, errors.New("end date must be after start date")
	}

	policy := &models.InsurancePolicy{
		VehicleID:    vehicleID,
		Company:      req.Company,
		PolicyNumber: req.PolicyNumber,
		Coverage:     req.Coverage,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Cost:         req.Cost,
		Status:       models.InsuranceStatusActive,
		Notes:        req.Notes,
	}

	if err := s.insuranceRepo.CreatePolicy(policy); err != nil {
		return nil, err
	}

	s.invalidateStats()
	return policy, nil
}

func (s *InsuranceService) GetAllPolicies() ([]*models.InsurancePolicy, error) {
	return s.insuranceRepo.FindAllPolicies()
}

func (s *InsuranceService) GetPolicyByID(id string) (*models.InsurancePolicy, error) {
	return s.insuranceRepo.FindPolicyByID(id)
}

func (s *InsuranceService) GetPoliciesByVehicleID(vehicleID string) ([]*models.InsurancePolicy, error) {
	return s.insuranceRepo.FindPoliciesByVehicleID(vehicleID)
}

func (s *InsuranceService) UpdatePolicy(id string, req *UpdatePolicyRequest) (*models.InsurancePolicy, error) {
	policy, err := s.insuranceRepo.FindPolicyByID(id)
	if err != nil {
		return nil, err
	}

	if req.Company != "" {
		policy.Company = req.Company
	}
	if req.PolicyNumber != "" {
		policy.PolicyNumber = req.PolicyNumber
	}
	if req.Coverage != "" {
		policy.Coverage = req.Coverage
	}
	if req.StartDate != nil {
		policy.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		policy.EndDate = *req.EndDate
	}
	if req.Cost != nil {
		policy.Cost = *req.Cost
	}
	if req.Status != "" {
		policy.Status = req.Status
	}
	if req.Notes != "" {
		policy.Notes = req.Notes
	}

	if !policy.EndDate.After(policy.StartDate) {
		return nil, errors.New("end date must be after start date")
	}

	if err := s.insuranceRepo.UpdatePolicy(id, policy); err != nil {
		return nil, err
	}

	s.invalidateStats()
	return policy, nil
}

func (s *InsuranceService) DeletePolicy(id string) error {
	if err := s.insuranceRepo.DeletePolicy(id); err != nil {
		return err
	}

	s.invalidateStats()
	return nil
}

// Technical inspections

type CreateInspectionRequest struct {
	VehicleID      string    `json:"vehicleId" validate:"required"`
	InspectionDate time.Time `json:"inspectionDate"`
	ExpiryDate     time.Time `json:"expiryDate"`
	Result         string    `json:"result" validate:"required,oneof=passed failed"`
	Station        string    `json:"station,omitempty"`
	Cost           float64   `json:"cost,omitempty" validate:"omitempty,gte=0"`
	Notes          string    `json:"notes,omitempty"`
}

type UpdateInspectionRequest struct {
	InspectionDate *time.Time `json:"inspectionDate,omitempty"`
	ExpiryDate     *time.Time `json:"expiryDate,omitempty"`
	Result         string     `json:"result,omitempty" validate:"omitempty,oneof=passed failed"`
	Station        string     `json:"station,omitempty"`
	Cost           *float64   `json:"cost,omitempty" validate:"omitempty,gte=0"`
	Notes          string     `json:"notes,omitempty"`
}

func (s *InsuranceService) CreateInspection(req *CreateInspectionRequest) (*models.TechnicalInspection, error) {
	vehicleID, err := s.vehicleObjectID(req.VehicleID)
	if err != nil {
		return nil, err
	}

	inspection := &models.TechnicalInspection{
		VehicleID:      vehicleID,
		InspectionDate: req.InspectionDate,
		ExpiryDate:     req.ExpiryDate,
		Result:         req.Result,
		Station:        req.Station,
		Cost:           req.Cost,
		Notes:          req.Notes,
	}

	if err := s.insuranceRepo.CreateInspection(inspection); err != nil {
		return nil, err
	}

	s.invalidateStats()
	return inspection, nil
}

func (s *InsuranceService) GetAllInspections() ([]*models.TechnicalInspection, error) {
	return s.insuranceRepo.FindAllInspections()
}

func (s *InsuranceService) GetInspectionByID(id string) (*models.TechnicalInspection, error) {
	return s.insuranceRepo.FindInspectionByID(id)
}

func (s *InsuranceService) UpdateInspection(id string, req *UpdateInspectionRequest) (*models.TechnicalInspection, error) {
	inspection, err := s.insuranceRepo.FindInspectionByID(id)
	if err != nil {
		return nil, err
	}

	if req.InspectionDate != nil {
		inspection.InspectionDate = *req.InspectionDate
	}
	if req.ExpiryDate != nil {
		inspection.ExpiryDate = *req.ExpiryDate
	}
	if req.Result != "" {
		inspection.Result = req.Result
	}
	if req.Station != "" {
		inspection.Station = req.Station
	}
	if req.Cost != nil {
		inspection.Cost = *req.Cost
	}
	if req.Notes != "" {
		inspection.Notes = req.Notes
	}

	if err := s.insuranceRepo.UpdateInspection(id, inspection); err != nil {
		return nil, err
	}

	s.invalidateStats()
	return inspection, nil
}

func (s *InsuranceService) DeleteInspection(id string) error {
	if err := s.insuranceRepo.DeleteInspection(id); err != nil {
		return err
	}

	s.invalidateStats()
	return nil
}
