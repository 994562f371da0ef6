package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/ports/services"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/dto"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/middleware"
)

// reportingHandler handles HTTP requests for the derived financial views.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/balance-sheet", h.balanceSheet)
		reports.GET("/outstanding", h.outstanding)
		reports.GET("/overview", h.overview)
	}
}

// balanceSheet godoc
// @Summary Get the daily balance sheet
// @Description Aggregates sales and expenses per day with grand totals, newest day first
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 500 {object} map[string]string "Failed to build balance sheet"
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) balanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sheet, err := h.reportingService.BalanceSheet(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build balance sheet", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build balance sheet"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(sheet))
}

// outstanding godoc
// @Summary Get outstanding balances
// @Description Rolls up non-zero customer and payee balances into receivables and payables
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.OutstandingResponse
// @Failure 500 {object} map[string]string "Failed to build outstanding report"
// @Router /reports/outstanding [get]
func (h *reportingHandler) outstanding(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.Outstanding(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build outstanding report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build outstanding report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOutstandingResponse(report))
}

// overview godoc
// @Summary Get the dashboard overview
// @Description Returns chart points across all dates plus the movement breakdown for one date (today by default)
// @Tags reports
// @Produce  json
// @Param   date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.OverviewResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to build overview"
// @Router /reports/overview [get]
func (h *reportingHandler) overview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	chart, err := h.reportingService.ChartData(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build chart data", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build overview"})
		return
	}

	day, err := h.reportingService.DayOverview(c.Request.Context(), date)
	if err != nil {
		logger.Error("Failed to build day overview", slog.String("date", date), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build overview"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOverviewResponse(chart, day))
}
