package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/portfel_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfel_tracker/internal/dto"
	"github.com/SscSPs/portfel_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

func newNotificationHandler(ns portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{notificationService: ns}
}

func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := newNotificationHandler(notificationService)

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.GET("/unread/count", h.unreadCount)
		notifications.PUT("/read-all", h.markAllRead)
		notifications.PUT("/:notificationID/read", h.markRead)
		notifications.DELETE("/:notificationID", h.deleteNotification)
	}
}

// listNotifications godoc
// @Summary List notifications
// @Description Lists notifications newest first.
// @Tags notifications
// @Produce json
// @Param unreadOnly query bool false "Only unread notifications"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListNotificationsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var params dto.ListNotificationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListNotifications", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), userID, params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list notifications")
		return
	}

	c.JSON(http.StatusOK, dto.ToListNotificationsResponse(notifications))
}

// unreadCount godoc
// @Summary Count unread notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.UnreadCountResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/unread/count [get]
func (h *notificationHandler) unreadCount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	count, err := h.notificationService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to count notifications")
		return
	}

	c.JSON(http.StatusOK, dto.UnreadCountResponse{Count: count})
}

// markRead godoc
// @Summary Mark a notification read
// @Tags notifications
// @Produce json
// @Param notificationID path string true "Notification ID"
// @Success 200 {object} dto.NotificationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/{notificationID}/read [put]
func (h *notificationHandler) markRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	notification, err := h.notificationService.MarkRead(c.Request.Context(), userID, c.Param("notificationID"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to update notification")
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationResponse(notification))
}

// markAllRead godoc
// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.MarkAllReadResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/read-all [put]
func (h *notificationHandler) markAllRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	updated, err := h.notificationService.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update notifications")
		return
	}

	logger.Info("Notifications marked read", slog.Int("updated", updated))
	c.JSON(http.StatusOK, dto.MarkAllReadResponse{Updated: updated})
}

// deleteNotification godoc
// @Summary Delete a notification
// @Tags notifications
// @Param notificationID path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/{notificationID} [delete]
func (h *notificationHandler) deleteNotification(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.notificationService.DeleteNotification(c.Request.Context(), userID, c.Param("notificationID")); err != nil {
		respondWithError(c, logger, err, "Failed to delete notification")
		return
	}

	c.Status(http.StatusNoContent)
}
