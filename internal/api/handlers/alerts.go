package handlers

import (
	"net/http"

	"fleet-admin/internal/services"
	"fleet-admin/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AlertHandler serves the derived notification feed and the user actions on
// it. Alert ids are composite (type-recordID) and stable across requests.
type AlertHandler struct {
	alertService *services.AlertService
	validator    *validator.Validate
}

func NewAlertHandler(alertService *services.AlertService) *AlertHandler {
	return &AlertHandler{
		alertService: alertService,
		validator:    validator.New(),
	}
}

func (h *AlertHandler) GetAlerts(c *gin.Context) {
	feed, err := h.alertService.GetFeed(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to derive alerts", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Alerts retrieved successfully", feed)
}

func (h *AlertHandler) GetUnreadCount(c *gin.Context) {
	count, err := h.alertService.GetUnreadCount(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to derive alerts", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Unread count retrieved successfully", gin.H{"unreadCount": count})
}

func (h *AlertHandler) MarkRead(c *gin.Context) {
	alertID := c.Param("id")
	if alertID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Alert ID is required", nil)
		return
	}

	if err := h.alertService.MarkRead(c.Request.Context(), alertID); err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Failed to mark alert read", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Alert marked read", nil)
}

func (h *AlertHandler) MarkAllRead(c *gin.Context) {
	if err := h.alertService.MarkAllRead(c.Request.Context()); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to mark alerts read", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "All alerts marked read", nil)
}

func (h *AlertHandler) DismissAlert(c *gin.Context) {
	alertID := c.Param("id")
	if alertID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Alert ID is required", nil)
		return
	}

	if err := h.alertService.DismissAlert(c.Request.Context(), alertID); err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Failed to dismiss alert", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Alert dismissed", nil)
}

func (h *AlertHandler) CompleteAlert(c *gin.Context) {
	alertID := c.Param("id")
	if alertID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Alert ID is required", nil)
		return
	}

	if err := h.alertService.CompleteAlert(c.Request.Context(), alertID); err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Failed to complete alert", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Alert completed", nil)
}

func (h *AlertHandler) SendDigest(c *gin.Context) {
	var req struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	if err := h.alertService.SendDigest(c.Request.Context(), req.Email); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to send digest", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Digest sent", nil)
}
