package handlers

import (
	"net/http"

	"fleet-admin/internal/models"
	"fleet-admin/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MetaHandler serves static lookup data the UI needs to render enum values.
type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// GetDescriptors returns the label/color table for every enum in one call.
func (h *MetaHandler) GetDescriptors(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Descriptors retrieved successfully", gin.H{
		"vehicleStatus":     models.VehicleStatusDescriptors,
		"driverStatus":      models.DriverStatusDescriptors,
		"maintenanceStatus": models.MaintenanceStatusDescriptors,
		"insuranceStatus":   models.InsuranceStatusDescriptors,
		"alertPriority":     models.AlertPriorityDescriptors,
	})
}
