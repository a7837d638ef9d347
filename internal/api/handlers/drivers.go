package handlers

import (
	"net/http"

	"fleet-admin/internal/services"
	"fleet-admin/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type DriverHandler struct {
	driverService *services.DriverService
	validator     *validator.Validate
}

func NewDriverHandler(driverService *services.DriverService) *DriverHandler {
	return &DriverHandler{
		driverService: driverService,
		validator:     validator.New(),
	}
}

func (h *DriverHandler) GetDrivers(c *gin.Context) {
	if status := c.Query("status"); status != "" {
		drivers, err := h.driverService.GetDriversByStatus(status)
		if err != nil {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve drivers", err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "Drivers retrieved successfully", drivers)
		return
	}

	drivers, err := h.driverService.GetAllDrivers()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve drivers", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Drivers retrieved successfully", drivers)
}

func (h *DriverHandler) GetDriver(c *gin.Context) {
	driverID := c.Param("id")
	if driverID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Driver ID is required", nil)
		return
	}

	driver, err := h.driverService.GetDriverByID(driverID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Driver not found", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Driver retrieved successfully", driver)
}

func (h *DriverHandler) CreateDriver(c *gin.Context) {
	var req services.CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	driver, err := h.driverService.CreateDriver(&req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to create driver", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Driver created successfully", driver)
}

func (h *DriverHandler) UpdateDriver(c *gin.Context) {
	driverID := c.Param("id")
	if driverID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Driver ID is required", nil)
		return
	}

	var req services.UpdateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	driver, err := h.driverService.UpdateDriver(driverID, &req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to update driver", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Driver updated successfully", driver)
}

func (h *DriverHandler) DeleteDriver(c *gin.Context) {
	driverID := c.Param("id")
	if driverID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Driver ID is required", nil)
		return
	}

	if err := h.driverService.DeleteDriver(driverID); err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Failed to delete driver", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Driver deleted successfully", nil)
}
