package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/apperrors"
	portssvc "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/services"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/dto"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/middleware"
)

// expenseHandler handles HTTP requests related to expenses.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
	payeeService   portssvc.PayeeSvcFacade
}

// newExpenseHandler creates a new expenseHandler.
func newExpenseHandler(es portssvc.ExpenseSvcFacade, ps portssvc.PayeeSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: es, payeeService: ps}
}

// registerExpenseRoutes registers routes related to expenses.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade, payeeService portssvc.PayeeSvcFacade) {
	h := newExpenseHandler(expenseService, payeeService)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.DELETE("/:id", h.deleteExpense)
		expenses.GET("/categories", h.listCategories)
	}
}

// createExpense godoc
// @Summary Record an expense
// @Description Records an INVOICE (new cost) or PAYMENT (settlement) against an optional payee
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to record expense"
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	newExpense, err := h.expenseService.CreateExpense(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating expense", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create expense in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record expense"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseResponse(newExpense, h.payeeNames(c)))
}

// listExpenses godoc
// @Summary List all expenses
// @Description Returns every expense with its payee name resolved
// @Tags expenses
// @Produce  json
// @Success 200 {array} dto.ExpenseResponse
// @Failure 500 {object} map[string]string "Failed to list expenses"
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expenses, err := h.expenseService.ListExpenses(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list expenses from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list expenses"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListExpenseResponse(expenses, h.payeeNames(c)))
}

// deleteExpense godoc
// @Summary Delete an expense
// @Description Removes one expense by ID; unknown IDs are a no-op
// @Tags expenses
// @Param   id path string true "Expense ID"
// @Success 204 "Deleted"
// @Failure 500 {object} map[string]string "Failed to delete expense"
// @Router /expenses/{id} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("id")

	if err := h.expenseService.DeleteExpense(c.Request.Context(), expenseID); err != nil {
		logger.Error("Failed to delete expense in service", slog.String("expense_id", expenseID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense"})
		return
	}

	c.Status(http.StatusNoContent)
}

// listCategories godoc
// @Summary List suggested expense categories
// @Description Returns the suggested category list; custom categories are still accepted
// @Tags expenses
// @Produce  json
// @Success 200 {object} dto.ExpenseCategoriesResponse
// @Router /expenses/categories [get]
func (h *expenseHandler) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ExpenseCategoriesResponse{Categories: h.expenseService.SuggestedCategories()})
}

// payeeNames builds the id-to-name lookup used to resolve payee references.
// Lookup failures degrade to the general placeholder rather than failing the
// expense listing.
func (h *expenseHandler) payeeNames(c *gin.Context) map[string]string {
	payees, err := h.payeeService.ListPayees(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to resolve payee names", slog.String("error", err.Error()))
		return nil
	}
	names := make(map[string]string, len(payees))
	for _, p := range payees {
		names[p.PayeeID] = p.Name
	}
	return names
}
