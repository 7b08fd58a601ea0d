package dto

import (
	"time"

	"github.com/SscSPs/portfel_tracker/internal/core/domain"
)

// ListNotificationsParams defines query parameters for listing notifications.
type ListNotificationsParams struct {
	UnreadOnly bool `form:"unreadOnly"`
	Limit      int  `form:"limit,default=50" binding:"min=1,max=100"`
	Offset     int  `form:"offset,default=0" binding:"min=0"`
}

// NotificationResponse defines the data returned for a notification.
type NotificationResponse struct {
	NotificationID   string                  `json:"notificationID"`
	Title            string                  `json:"title"`
	Message          string                  `json:"message"`
	NotificationType domain.NotificationType `json:"notificationType"`
	IsRead           bool                    `json:"isRead"`
	CreatedAt        time.Time               `json:"createdAt"`
}

// ListNotificationsResponse wraps a page of notifications.
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// UnreadCountResponse carries the number of unread notifications.
type UnreadCountResponse struct {
	Count int `json:"count"`
}

// MarkAllReadResponse carries how many notifications were marked read.
type MarkAllReadResponse struct {
	Updated int `json:"updated"`
}

// ToNotificationResponse converts a domain.Notification to NotificationResponse DTO
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID:   n.NotificationID,
		Title:            n.Title,
		Message:          n.Message,
		NotificationType: n.NotificationType,
		IsRead:           n.IsRead,
		CreatedAt:        n.CreatedAt,
	}
}

// ToListNotificationsResponse converts a slice of domain.Notification to ListNotificationsResponse DTO
func ToListNotificationsResponse(notifications []domain.Notification) ListNotificationsResponse {
	res := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		res[i] = ToNotificationResponse(&notifications[i])
	}
	return ListNotificationsResponse{Notifications: res}
}
