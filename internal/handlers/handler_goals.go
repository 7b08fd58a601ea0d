package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/portfel_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfel_tracker/internal/dto"
	"github.com/SscSPs/portfel_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type goalHandler struct {
	goalService portssvc.GoalSvcFacade
}

func newGoalHandler(gs portssvc.GoalSvcFacade) *goalHandler {
	return &goalHandler{goalService: gs}
}

func registerGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvcFacade) {
	h := newGoalHandler(goalService)

	goals := rg.Group("/goals")
	{
		goals.GET("/monthly/:year/:month", h.getMonthlyGoal)
		goals.PUT("/monthly/:year/:month", h.upsertMonthlyGoal)
		goals.GET("/yearly/:year", h.listYearlyGoals)
	}
}

// getMonthlyGoal godoc
// @Summary Get a monthly goal
// @Description Returns the saved goal, or the configured defaults with isDefault set.
// @Tags goals
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} dto.MonthlyGoalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /goals/monthly/{year}/{month} [get]
func (h *goalHandler) getMonthlyGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	year, month, ok := pathYearMonth(c)
	if !ok {
		return
	}

	goal, err := h.goalService.GetMonthlyGoal(c.Request.Context(), userID, year, month)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve goal")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyGoalResponse(goal))
}

// upsertMonthlyGoal godoc
// @Summary Set a monthly goal
// @Description Creates or updates the goal of a month. Omitted targets keep their current value.
// @Tags goals
// @Accept json
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Param goal body dto.UpsertMonthlyGoalRequest true "Targets"
// @Success 200 {object} dto.MonthlyGoalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /goals/monthly/{year}/{month} [put]
func (h *goalHandler) upsertMonthlyGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertMonthlyGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertMonthlyGoal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	year, month, ok := pathYearMonth(c)
	if !ok {
		return
	}

	goal, err := h.goalService.UpsertMonthlyGoal(c.Request.Context(), userID, year, month, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to save goal")
		return
	}

	logger.Info("Goal saved", slog.String("goal_id", goal.GoalID), slog.Int("year", year), slog.Int("month", month))
	c.JSON(http.StatusOK, dto.ToMonthlyGoalResponse(goal))
}

// listYearlyGoals godoc
// @Summary List the goals of a year
// @Description Only saved goals are returned.
// @Tags goals
// @Produce json
// @Param year path int true "Year"
// @Success 200 {object} dto.YearlyGoalsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /goals/yearly/{year} [get]
func (h *goalHandler) listYearlyGoals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	year, ok := pathInt(c, "year")
	if !ok {
		return
	}

	goals, err := h.goalService.ListYearlyGoals(c.Request.Context(), userID, year)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list goals")
		return
	}

	c.JSON(http.StatusOK, dto.ToYearlyGoalsResponse(year, goals))
}
