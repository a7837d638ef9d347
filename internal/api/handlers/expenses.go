package handlers

import (
	"net/http"

	"fleet-admin/internal/services"
	"fleet-admin/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ExpenseHandler exposes fuel record and extra expense endpoints.
type ExpenseHandler struct {
	expenseService *services.ExpenseService
	validator      *validator.Validate
}

func NewExpenseHandler(expenseService *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		validator:      validator.New(),
	}
}

// Fuel records

func (h *ExpenseHandler) GetFuelRecords(c *gin.Context) {
	if vehicleID := c.Query("vehicleId"); vehicleID != "" {
		records, err := h.expenseService.GetFuelRecordsByVehicleID(vehicleID)
		if err != nil {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve fuel records", err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "Fuel records retrieved successfully", records)
		return
	}

	records, err := h.expenseService.GetAllFuelRecords()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve fuel records", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Fuel records retrieved successfully", records)
}

func (h *ExpenseHandler) GetFuelRecord(c *gin.Context) {
	record, err := h.expenseService.GetFuelRecordByID(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Fuel record not found", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Fuel record retrieved successfully", record)
}

func (h *ExpenseHandler) CreateFuelRecord(c *gin.Context) {
	var req services.CreateFuelRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	record, err := h.expenseService.CreateFuelRecord(&req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to create fuel record", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Fuel record created successfully", record)
}

func (h *ExpenseHandler) UpdateFuelRecord(c *gin.Context) {
	var req services.UpdateFuelRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	record, err := h.expenseService.UpdateFuelRecord(c.Param("id"), &req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to update fuel record", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Fuel record updated successfully", record)
}

func (h *ExpenseHandler) DeleteFuelRecord(c *gin.Context) {
	if err := h.expenseService.DeleteFuelRecord(c.Param("id")); err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Failed to delete fuel record", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Fuel record deleted successfully", nil)
}

// Extra expenses

func (h *ExpenseHandler) GetExtraExpenses(c *gin.Context) {
	expenses, err := h.expenseService.GetAllExtraExpenses()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve expenses", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Expenses retrieved successfully", expenses)
}

func (h *ExpenseHandler) GetExtraExpense(c *gin.Context) {
	expense, err := h.expenseService.GetExtraExpenseByID(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Expense not found", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Expense retrieved successfully", expense)
}

func (h *ExpenseHandler) CreateExtraExpense(c *gin.Context) {
	var req services.CreateExtraExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	expense, err := h.expenseService.CreateExtraExpense(&req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to create expense", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Expense created successfully", expense)
}

func (h *ExpenseHandler) UpdateExtraExpense(c *gin.Context) {
	var req services.UpdateExtraExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	expense, err := h.expenseService.UpdateExtraExpense(c.Param("id"), &req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to update expense", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Expense updated successfully", expense)
}

func (h *ExpenseHandler) DeleteExtraExpense(c *gin.Context) {
	if err := h.expenseService.DeleteExtraExpense(c.Param("id")); err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Failed to delete expense", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Expense deleted successfully", nil)
}
