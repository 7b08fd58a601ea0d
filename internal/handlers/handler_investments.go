package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/portfel_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfel_tracker/internal/dto"
	"github.com/SscSPs/portfel_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// investmentHandler handles HTTP requests for investments.
type investmentHandler struct {
	investmentService portssvc.InvestmentSvcFacade
}

func newInvestmentHandler(is portssvc.InvestmentSvcFacade) *investmentHandler {
	return &investmentHandler{investmentService: is}
}

// registerInvestmentRoutes registers the investment CRUD routes.
// The summary route lives with the analytics handler.
func registerInvestmentRoutes(rg *gin.RouterGroup, investmentService portssvc.InvestmentSvcFacade) {
	h := newInvestmentHandler(investmentService)

	investments := rg.Group("/investments")
	{
		investments.GET("", h.listInvestments)
		investments.POST("", h.createInvestment)
		investments.GET("/:investmentID", h.getInvestment)
		investments.PUT("/:investmentID", h.updateInvestment)
		investments.DELETE("/:investmentID", h.deleteInvestment)
	}
}

// createInvestment godoc
// @Summary Record an investment
// @Tags investments
// @Accept json
// @Produce json
// @Param investment body dto.CreateInvestmentRequest true "Investment details"
// @Success 201 {object} dto.InvestmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments [post]
func (h *investmentHandler) createInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvestment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	investment, err := h.investmentService.CreateInvestment(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create investment")
		return
	}

	logger.Info("Investment created", slog.String("investment_id", investment.InvestmentID))
	c.JSON(http.StatusCreated, dto.ToInvestmentResponse(investment))
}

// listInvestments godoc
// @Summary List investments
// @Description Lists the user's investments, newest purchase first.
// @Tags investments
// @Produce json
// @Success 200 {object} dto.ListInvestmentsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments [get]
func (h *investmentHandler) listInvestments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	investments, err := h.investmentService.ListInvestments(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list investments")
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvestmentsResponse(investments))
}

// getInvestment godoc
// @Summary Get an investment
// @Tags investments
// @Produce json
// @Param investmentID path string true "Investment ID"
// @Success 200 {object} dto.InvestmentResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments/{investmentID} [get]
func (h *investmentHandler) getInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	investment, err := h.investmentService.GetInvestment(c.Request.Context(), userID, c.Param("investmentID"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve investment")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestmentResponse(investment))
}

// updateInvestment godoc
// @Summary Update an investment
// @Description Patches the given fields, typically the current value.
// @Tags investments
// @Accept json
// @Produce json
// @Param investmentID path string true "Investment ID"
// @Param investment body dto.UpdateInvestmentRequest true "Fields to update"
// @Success 200 {object} dto.InvestmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments/{investmentID} [put]
func (h *investmentHandler) updateInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateInvestment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	investmentID := c.Param("investmentID")
	logger = logger.With(slog.String("investment_id", investmentID))

	investment, err := h.investmentService.UpdateInvestment(c.Request.Context(), userID, investmentID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update investment")
		return
	}

	logger.Info("Investment updated")
	c.JSON(http.StatusOK, dto.ToInvestmentResponse(investment))
}

// deleteInvestment godoc
// @Summary Delete an investment
// @Tags investments
// @Param investmentID path string true "Investment ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments/{investmentID} [delete]
func (h *investmentHandler) deleteInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	investmentID := c.Param("investmentID")

	if err := h.investmentService.DeleteInvestment(c.Request.Context(), userID, investmentID); err != nil {
		respondWithError(c, logger, err, "Failed to delete investment")
		return
	}

	logger.Info("Investment deleted", slog.String("investment_id", investmentID))
	c.Status(http.StatusNoContent)
}
