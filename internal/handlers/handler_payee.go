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

// payeeHandler handles HTTP requests related to payees.
type payeeHandler struct {
	payeeService portssvc.PayeeSvcFacade
}

// newPayeeHandler creates a new payeeHandler.
func newPayeeHandler(ps portssvc.PayeeSvcFacade) *payeeHandler {
	return &payeeHandler{payeeService: ps}
}

// registerPayeeRoutes registers routes related to payees.
func registerPayeeRoutes(rg *gin.RouterGroup, payeeService portssvc.PayeeSvcFacade) {
	h := newPayeeHandler(payeeService)

	payees := rg.Group("/payees")
	{
		payees.POST("", h.createPayee)
		payees.GET("", h.listPayees)
		payees.DELETE("/:id", h.deletePayee)
	}
}

// createPayee godoc
// @Summary Register a new payee
// @Description Registers a vendor, employee or custom payee
// @Tags payees
// @Accept  json
// @Produce  json
// @Param   payee body dto.CreatePayeeRequest true "Payee details"
// @Success 201 {object} dto.PayeeResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create payee"
// @Router /payees [post]
func (h *payeeHandler) createPayee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePayeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePayee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	newPayee, err := h.payeeService.CreatePayee(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating payee", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create payee in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payee"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPayeeResponse(newPayee))
}

// listPayees godoc
// @Summary List all payees
// @Tags payees
// @Produce  json
// @Success 200 {array} dto.PayeeResponse
// @Failure 500 {object} map[string]string "Failed to list payees"
// @Router /payees [get]
func (h *payeeHandler) listPayees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payees, err := h.payeeService.ListPayees(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list payees from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payees"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPayeeResponse(payees))
}

// deletePayee godoc
// @Summary Delete a payee
// @Description Removes a payee; its expenses stay and render as general cash
// @Tags payees
// @Param   id path string true "Payee ID"
// @Success 204 "Deleted"
// @Failure 500 {object} map[string]string "Failed to delete payee"
// @Router /payees/{id} [delete]
func (h *payeeHandler) deletePayee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	payeeID := c.Param("id")

	if err := h.payeeService.DeletePayee(c.Request.Context(), payeeID); err != nil {
		logger.Error("Failed to delete payee in service", slog.String("payee_id", payeeID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payee"})
		return
	}

	c.Status(http.StatusNoContent)
}
