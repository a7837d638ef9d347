package handlers

import (
	"net/http"

	"fleet-admin/internal/services"
	"fleet-admin/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// InsuranceHandler exposes insurance policy and technical inspection endpoints.
type InsuranceHandler struct {
	insuranceService *services.InsuranceService
	validator        *validator.Validate
}

func NewInsuranceHandler(insuranceService *services.InsuranceService) *InsuranceHandler {
	return &InsuranceHandler{
		insuranceService: insuranceService,
		validator:        validator.New(),
	}
}

// Insurance policies

func (h *InsuranceHandler) GetPolicies(c *gin.Context) {
	if vehicleID := c.Query("vehicleId"); vehicleID != "" {
		policies, err := h.insuranceService.GetPoliciesByVehicleID(vehicleID)
		if err != nil {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve insurance policies", err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "Insurance policies retrieved successfully", policies)
		return
	}

	policies, err := h.insuranceService.GetAllPolicies()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve insurance policies", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Insurance policies retrieved successfully", policies)
}

func (h *InsuranceHandler) GetPolicy(c *gin.Context) {
	policy, err := h.insuranceService.GetPolicyByID(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Insurance policy not found", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Insurance policy retrieved successfully", policy)
}

func (h *InsuranceHandler) CreatePolicy(c *gin.Context) {
	var req services.CreatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	policy, err := h.insuranceService.CreatePolicy(&req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to create insurance policy", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Insurance policy created successfully", policy)
}

func (h *InsuranceHandler) UpdatePolicy(c *gin.Context) {
	var req services.UpdatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	policy, err := h.insuranceService.UpdatePolicy(c.Param("id"), &req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to update insurance policy", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Insurance policy updated successfully", policy)
}

func (h *InsuranceHandler) DeletePolicy(c *gin.Context) {
	if err := h.insuranceService.DeletePolicy(c.Param("id")); err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Failed to delete insurance policy", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Insurance policy deleted successfully", nil)
}

// Technical inspections

func (h *InsuranceHandler) GetInspections(c *gin.Context) {
	inspections, err := h.insuranceService.GetAllInspections()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve inspections", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Inspections retrieved successfully", inspections)
}

func (h *InsuranceHandler) GetInspection(c *gin.Context) {
	inspection, err := h.insuranceService.GetInspectionByID(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Inspection not found", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Inspection retrieved successfully", inspection)
}

func (h *InsuranceHandler) CreateInspection(c *gin.Context) {
	var req services.CreateInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	inspection, err := h.insuranceService.CreateInspection(&req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to create inspection", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Inspection created successfully", inspection)
}

func (h *InsuranceHandler) UpdateInspection(c *gin.Context) {
	var req services.UpdateInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	inspection, err := h.insuranceService.UpdateInspection(c.Param("id"), &req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to update inspection", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Inspection updated successfully", inspection)
}

func (h *InsuranceHandler) DeleteInspection(c *gin.Context) {
	if err := h.insuranceService.DeleteInspection(c.Param("id")); err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Failed to delete inspection", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Inspection deleted successfully", nil)
}
