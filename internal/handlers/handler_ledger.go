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

// ledgerHandler handles HTTP requests related to customer ledger entries.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers routes related to the customer ledger.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledger := rg.Group("/ledger")
	{
		ledger.POST("", h.createLedgerEntry)
		ledger.GET("", h.listLedgerEntries)
		ledger.DELETE("/:id", h.deleteLedgerEntry)
	}
}

// createLedgerEntry godoc
// @Summary Record a ledger entry
// @Description Records a DEBIT (sale on credit) or CREDIT (payment received). DEBIT entries with a quantity also create a linked egg log, returned alongside.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateLedgerEntryRequest true "Ledger entry details"
// @Success 201 {object} dto.CreateLedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to record ledger entry"
// @Router /ledger [post]
func (h *ledgerHandler) createLedgerEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateLedgerEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, generatedLog, err := h.ledgerService.CreateLedgerEntry(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating ledger entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create ledger entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record ledger entry"})
		}
		return
	}

	res := dto.CreateLedgerEntryResponse{Entry: dto.ToLedgerEntryResponse(entry)}
	if generatedLog != nil {
		logRes := dto.ToEggLogResponse(generatedLog)
		res.GeneratedEggLog = &logRes
	}
	c.JSON(http.StatusCreated, res)
}

// listLedgerEntries godoc
// @Summary List all ledger entries
// @Tags ledger
// @Produce  json
// @Success 200 {array} dto.LedgerEntryResponse
// @Failure 500 {object} map[string]string "Failed to list ledger entries"
// @Router /ledger [get]
func (h *ledgerHandler) listLedgerEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.ledgerService.ListLedgerEntries(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list ledger entries from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list ledger entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListLedgerEntryResponse(entries))
}

// deleteLedgerEntry godoc
// @Summary Delete a ledger entry
// @Description Removes the entry and cascades to the egg log it generated, if any
// @Tags ledger
// @Param   id path string true "Ledger entry ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Ledger entry not found"
// @Failure 500 {object} map[string]string "Failed to delete ledger entry"
// @Router /ledger/{id} [delete]
func (h *ledgerHandler) deleteLedgerEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledgerEntryID := c.Param("id")

	if err := h.ledgerService.DeleteLedgerEntry(c.Request.Context(), ledgerEntryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ledger entry not found"})
		} else {
			logger.Error("Failed to delete ledger entry in service", slog.String("ledger_entry_id", ledgerEntryID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete ledger entry"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
