package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/portfel_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfel_tracker/internal/dto"
	"github.com/SscSPs/portfel_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type analyticsHandler struct {
	analyticsService portssvc.AnalyticsService
}

func newAnalyticsHandler(as portssvc.AnalyticsService) *analyticsHandler {
	return &analyticsHandler{analyticsService: as}
}

// registerAnalyticsRoutes registers the read-only analytics endpoints.
func registerAnalyticsRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsService) {
	h := newAnalyticsHandler(analyticsService)

	analytics := rg.Group("/analytics")
	{
		analytics.GET("/dashboard", h.getDashboard)
		analytics.GET("/monthly/:year/:month", h.getMonthly)
		analytics.GET("/annual/:year", h.getAnnual)
		analytics.GET("/period", h.getPeriod)
	}
	rg.GET("/investments/summary", h.getInvestmentSummary)
}

// getDashboard godoc
// @Summary Dashboard statistics
// @Description Summarises the month containing asOf (today when omitted) with goal progress and all-time investments.
// @Tags analytics
// @Produce json
// @Param asOf query string false "Reference date (YYYY-MM-DD)"
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/dashboard [get]
func (h *analyticsHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	asOf, ok := queryDate(c, "asOf")
	if !ok {
		return
	}
	if asOf.IsZero() {
		asOf = timeNow().UTC()
	}

	stats, err := h.analyticsService.DashboardStats(c.Request.Context(), userID, asOf)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute dashboard statistics")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats))
}

// getMonthly godoc
// @Summary Monthly analytics
// @Description Totals, category breakdown and goal progress for one calendar month.
// @Tags analytics
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} dto.MonthlyAnalyticsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Month outside 1-12"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/monthly/{year}/{month} [get]
func (h *analyticsHandler) getMonthly(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	year, month, ok := pathYearMonth(c)
	if !ok {
		return
	}

	monthly, err := h.analyticsService.MonthlyAnalytics(c.Request.Context(), userID, year, month)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute monthly analytics")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyAnalyticsResponse(monthly))
}

// getAnnual godoc
// @Summary Annual analytics
// @Description Yearly totals with a per-month breakdown. Any failing month fails the whole request.
// @Tags analytics
// @Produce json
// @Param year path int true "Year"
// @Success 200 {object} dto.AnnualAnalyticsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/annual/{year} [get]
func (h *analyticsHandler) getAnnual(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	year, ok := pathInt(c, "year")
	if !ok {
		return
	}

	annual, err := h.analyticsService.AnnualAnalytics(c.Request.Context(), userID, year)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute annual analytics")
		return
	}

	logger.Debug("Annual analytics computed", slog.Int("year", year), slog.Int("months", len(annual.MonthlyBreakdown)))
	c.JSON(http.StatusOK, dto.ToAnnualAnalyticsResponse(annual))
}

// getPeriod godoc
// @Summary Period analytics
// @Description Totals and category breakdown for an inclusive date range.
// @Tags analytics
// @Produce json
// @Param fromDate query string true "Start date (YYYY-MM-DD)"
// @Param toDate query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.PeriodAnalyticsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "fromDate after toDate"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/period [get]
func (h *analyticsHandler) getPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	from, ok := queryDate(c, "fromDate")
	if !ok {
		return
	}
	to, ok := queryDate(c, "toDate")
	if !ok {
		return
	}
	if from.IsZero() || to.IsZero() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "fromDate and toDate are required"})
		return
	}

	period, err := h.analyticsService.PeriodAnalytics(c.Request.Context(), userID, from, to)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute period analytics")
		return
	}

	c.JSON(http.StatusOK, dto.ToPeriodAnalyticsResponse(period))
}

// getInvestmentSummary godoc
// @Summary Investment summary
// @Description Total invested and current value grouped by investment type.
// @Tags investments
// @Produce json
// @Success 200 {array} dto.InvestmentSummaryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments/summary [get]
func (h *analyticsHandler) getInvestmentSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	summaries, err := h.analyticsService.InvestmentSummary(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to summarise investments")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestmentSummaryResponse(summaries))
}
