package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/apperrors"
	portssvc "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/services"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/dto"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/middleware"
)

// csvExportFilenames maps each collection to its download filename.
var csvExportFilenames = map[string]string{
	portssvc.CollectionEggs:      "egg_tracker_export.csv",
	portssvc.CollectionCustomers: "customers_export.csv",
	portssvc.CollectionLedger:    "customer_ledger_export.csv",
	portssvc.CollectionExpenses:  "expenses_export.csv",
	portssvc.CollectionPayees:    "payees_export.csv",
}

// backupHandler handles HTTP requests for full backups and CSV interchange.
type backupHandler struct {
	backupService portssvc.BackupSvcFacade
}

// newBackupHandler creates a new backupHandler.
func newBackupHandler(bs portssvc.BackupSvcFacade) *backupHandler {
	return &backupHandler{backupService: bs}
}

// registerBackupRoutes registers routes related to backup and restore.
func registerBackupRoutes(rg *gin.RouterGroup, backupService portssvc.BackupSvcFacade) {
	h := newBackupHandler(backupService)

	backup := rg.Group("/backup")
	{
		backup.GET("", h.exportBackup)
		backup.POST("/restore", h.restoreBackup)
		backup.GET("/csv/:collection", h.exportCSV)
		backup.POST("/csv/:collection", h.importCSV)
	}
}

// exportBackup godoc
// @Summary Export a full backup
// @Description Snapshots every collection into one versioned JSON document
// @Tags backup
// @Produce  json
// @Success 200 {object} dto.BackupDocument
// @Failure 500 {object} map[string]string "Failed to export backup"
// @Router /backup [get]
func (h *backupHandler) exportBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	doc, err := h.backupService.ExportBackup(c.Request.Context())
	if err != nil {
		logger.Error("Failed to export backup", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export backup"})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// restoreBackup godoc
// @Summary Restore from a full backup
// @Description Replaces every collection from a backup document. Accepts the full document or its bare data object.
// @Tags backup
// @Accept  json
// @Success 204 "Restored"
// @Failure 400 {object} map[string]string "Invalid or incomplete backup document"
// @Failure 500 {object} map[string]string "Failed to restore backup"
// @Router /backup/restore [post]
func (h *backupHandler) restoreBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	// Accept either the exported document or its bare data object.
	var doc dto.BackupDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		logger.Warn("Failed to parse backup document", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid backup document: " + err.Error()})
		return
	}
	data := doc.Data
	if data.EggLogs == nil && data.Customers == nil && data.Ledger == nil {
		if err := json.Unmarshal(body, &data); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid backup document: " + err.Error()})
			return
		}
	}

	if err := h.backupService.RestoreBackup(c.Request.Context(), data); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Rejected backup restore", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to restore backup", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore backup"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// exportCSV godoc
// @Summary Export one collection as CSV
// @Tags backup
// @Produce  text/csv
// @Param   collection path string true "Collection (eggs, customers, ledger, expenses, payees)"
// @Success 200 {string} string "CSV content"
// @Failure 400 {object} map[string]string "Unknown collection"
// @Failure 500 {object} map[string]string "Failed to export CSV"
// @Router /backup/csv/{collection} [get]
func (h *backupHandler) exportCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	collection := c.Param("collection")

	data, err := h.backupService.ExportCSV(c.Request.Context(), collection)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to export CSV", slog.String("collection", collection), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export CSV"})
		}
		return
	}

	filename := csvExportFilenames[collection]
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// importCSV godoc
// @Summary Import one collection from CSV
// @Description Replaces the collection with the uploaded rows. Ledger rows naming unknown customers are skipped.
// @Tags backup
// @Accept  text/csv
// @Produce  json
// @Param   collection path string true "Collection (eggs, customers, ledger, expenses, payees)"
// @Success 200 {object} dto.ImportResultResponse
// @Failure 400 {object} map[string]string "Unknown collection or malformed CSV"
// @Failure 500 {object} map[string]string "Failed to import CSV"
// @Router /backup/csv/{collection} [post]
func (h *backupHandler) importCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	collection := c.Param("collection")

	result, err := h.backupService.ImportCSV(c.Request.Context(), collection, c.Request.Body)
	if err != nil {
		if errors.Is(err, apperrors.ErrMalformedPayload) || errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Rejected CSV import", slog.String("collection", collection), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to import CSV", slog.String("collection", collection), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import CSV"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
