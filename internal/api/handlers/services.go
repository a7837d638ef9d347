package handlers

import (
	"net/http"

	"fleet-admin/internal/models"
	"fleet-admin/internal/services"
	"fleet-admin/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ServiceRecordHandler exposes maintenance, oil change, tire change and
// washing endpoints.
type ServiceRecordHandler struct {
	recordService *services.ServiceRecordService
	validator     *validator.Validate
}

func NewServiceRecordHandler(recordService *services.ServiceRecordService) *ServiceRecordHandler {
	return &ServiceRecordHandler{
		recordService: recordService,
		validator:     validator.New(),
	}
}

// Maintenance

func (h *ServiceRecordHandler) GetMaintenanceRecords(c *gin.Context) {
	if vehicleID := c.Query("vehicleId"); vehicleID != "" {
		records, err := h.recordService.GetMaintenanceByVehicleID(vehicleID)
		if err != nil {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve maintenance records", err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "Maintenance records retrieved successfully", records)
		return
	}

	records, err := h.recordService.GetAllMaintenance()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve maintenance records", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Maintenance records retrieved successfully", records)
}

func (h *ServiceRecordHandler) GetMaintenanceRecord(c *gin.Context) {
	record, err := h.recordService.GetMaintenanceByID(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Maintenance record not found", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Maintenance record retrieved successfully", record)
}

func (h *ServiceRecordHandler) CreateMaintenanceRecord(c *gin.Context) {
	var req services.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	record, err := h.recordService.CreateMaintenance(&req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to create maintenance record", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Maintenance record created successfully", record)
}

func (h *ServiceRecordHandler) UpdateMaintenanceRecord(c *gin.Context) {
	var req services.UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	record, err := h.recordService.UpdateMaintenance(c.Param("id"), &req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to update maintenance record", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Maintenance record updated successfully", record)
}

func (h *ServiceRecordHandler) DeleteMaintenanceRecord(c *gin.Context) {
	if err := h.recordService.DeleteMaintenance(c.Param("id")); err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Failed to delete maintenance record", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Maintenance record deleted successfully", nil)
}

// Oil changes

func (h *ServiceRecordHandler) GetOilChanges(c *gin.Context) {
	if vehicleID := c.Query("vehicleId"); vehicleID != "" {
		records, err := h.recordService.GetOilChangesByVehicleID(vehicleID)
		if err != nil {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve oil changes", err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "Oil changes retrieved successfully", records)
		return
	}

	records, err := h.recordService.GetAllOilChanges()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve oil changes", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Oil changes retrieved successfully", records)
}

func (h *ServiceRecordHandler) GetOilChange(c *gin.Context) {
	record, err := h.recordService.GetOilChangeByID(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Oil change not found", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Oil change retrieved successfully", record)
}

func (h *ServiceRecordHandler) CreateOilChange(c *gin.Context) {
	var req services.CreateOilChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	record, err := h.recordService.CreateOilChange(&req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to create oil change", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Oil change created successfully", record)
}

func (h *ServiceRecordHandler) UpdateOilChange(c *gin.Context) {
	var req services.UpdateOilChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	record, err := h.recordService.UpdateOilChange(c.Param("id"), &req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to update oil change", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Oil change updated successfully", record)
}

func (h *ServiceRecordHandler) DeleteOilChange(c *gin.Context) {
	if err := h.recordService.DeleteOilChange(c.Param("id")); err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Failed to delete oil change", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Oil change deleted successfully", nil)
}

// Tire changes

func (h *ServiceRecordHandler) GetTireChanges(c *gin.Context) {
	records, err := h.recordService.GetAllTireChanges()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve tire changes", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tire changes retrieved successfully", records)
}

func (h *ServiceRecordHandler) GetTireChange(c *gin.Context) {
	record, err := h.recordService.GetTireChangeByID(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Tire change not found", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tire change retrieved successfully", record)
}

func (h *ServiceRecordHandler) CreateTireChange(c *gin.Context) {
	var req services.CreateTireChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	record, err := h.recordService.CreateTireChange(&req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to create tire change", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Tire change created successfully", record)
}

func (h *ServiceRecordHandler) UpdateTireChange(c *gin.Context) {
	var record models.TireChangeRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	updated, err := h.recordService.UpdateTireChange(c.Param("id"), &record)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to update tire change", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tire change updated successfully", updated)
}

func (h *ServiceRecordHandler) DeleteTireChange(c *gin.Context) {
	if err := h.recordService.DeleteTireChange(c.Param("id")); err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Failed to delete tire change", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tire change deleted successfully", nil)
}

// Washings

func (h *ServiceRecordHandler) GetWashings(c *gin.Context) {
	records, err := h.recordService.GetAllWashings()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve washings", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Washings retrieved successfully", records)
}

func (h *ServiceRecordHandler) GetWashing(c *gin.Context) {
	record, err := h.recordService.GetWashingByID(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Washing not found", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Washing retrieved successfully", record)
}

func (h *ServiceRecordHandler) CreateWashing(c *gin.Context) {
	var req services.CreateWashingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	record, err := h.recordService.CreateWashing(&req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to create washing", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Washing created successfully", record)
}

func (h *ServiceRecordHandler) UpdateWashing(c *gin.Context) {
	var record models.WashingRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	updated, err := h.recordService.UpdateWashing(c.Param("id"), &record)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to update washing", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Washing updated successfully", updated)
}

func (h *ServiceRecordHandler) DeleteWashing(c *gin.Context) {
	if err := h.recordService.DeleteWashing(c.Param("id")); err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Failed to delete washing", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Washing deleted successfully", nil)
}
