package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/apperrors"
	portssvc "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/services"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/dto"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/middleware"
)

// eggLogHandler handles HTTP requests related to egg logs.
type eggLogHandler struct {
	eggLogService portssvc.EggLogSvcFacade
}

// newEggLogHandler creates a new eggLogHandler.
func newEggLogHandler(es portssvc.EggLogSvcFacade) *eggLogHandler {
	return &eggLogHandler{eggLogService: es}
}

// registerEggLogRoutes registers routes related to egg logs.
func registerEggLogRoutes(rg *gin.RouterGroup, eggLogService portssvc.EggLogSvcFacade) {
	h := newEggLogHandler(eggLogService)

	eggs := rg.Group("/eggs")
	{
		eggs.POST("", h.createEggLog)
		eggs.GET("", h.listEggLogs)
		eggs.DELETE("/:id", h.deleteEggLog)
		eggs.GET("/inventory", h.currentInventory)
		eggs.GET("/inventory/:date", h.inventoryStats)
	}
}

// createEggLog godoc
// @Summary Record a manual egg log
// @Description Records eggs collected on a day, optionally with a direct cash sale
// @Tags eggs
// @Accept  json
// @Produce  json
// @Param   eggLog body dto.CreateEggLogRequest true "Egg log details"
// @Success 201 {object} dto.EggLogResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to record egg log"
// @Router /eggs [post]
func (h *eggLogHandler) createEggLog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEggLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEggLog", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	newLog, err := h.eggLogService.CreateEggLog(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating egg log", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create egg log in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record egg log"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToEggLogResponse(newLog))
}

// listEggLogs godoc
// @Summary List all egg logs
// @Description Returns the full egg log collection, generated logs included
// @Tags eggs
// @Produce  json
// @Success 200 {array} dto.EggLogResponse
// @Failure 500 {object} map[string]string "Failed to list egg logs"
// @Router /eggs [get]
func (h *eggLogHandler) listEggLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	logs, err := h.eggLogService.ListEggLogs(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list egg logs from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list egg logs"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListEggLogResponse(logs))
}

// deleteEggLog godoc
// @Summary Delete an egg log
// @Description Removes one egg log by ID; unknown IDs are a no-op
// @Tags eggs
// @Param   id path string true "Egg log ID"
// @Success 204 "Deleted"
// @Failure 500 {object} map[string]string "Failed to delete egg log"
// @Router /eggs/{id} [delete]
func (h *eggLogHandler) deleteEggLog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eggLogID := c.Param("id")

	if err := h.eggLogService.DeleteEggLog(c.Request.Context(), eggLogID); err != nil {
		logger.Error("Failed to delete egg log in service", slog.String("egg_log_id", eggLogID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete egg log"})
		return
	}

	c.Status(http.StatusNoContent)
}

// currentInventory godoc
// @Summary Get current egg inventory
// @Description Returns eggs collected minus eggs sold across all logs
// @Tags eggs
// @Produce  json
// @Success 200 {object} dto.InventoryResponse
// @Failure 500 {object} map[string]string "Failed to compute inventory"
// @Router /eggs/inventory [get]
func (h *eggLogHandler) currentInventory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stock, err := h.eggLogService.CurrentInventory(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute inventory", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute inventory"})
		return
	}

	c.JSON(http.StatusOK, dto.InventoryResponse{CurrentInventory: stock})
}

// inventoryStats godoc
// @Summary Get inventory stats for a date
// @Description Returns opening/closing stock and the day's collected/sold counts
// @Tags eggs
// @Produce  json
// @Param   date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.InventoryStatsResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to compute inventory stats"
// @Router /eggs/inventory/{date} [get]
func (h *eggLogHandler) inventoryStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	stats, err := h.eggLogService.InventoryStats(c.Request.Context(), date)
	if err != nil {
		logger.Error("Failed to compute inventory stats", slog.String("date", date), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute inventory stats"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInventoryStatsResponse(date, stats))
}
