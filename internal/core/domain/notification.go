package domain

import "time"

// NotificationType categorises a notification for display.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationSuccess NotificationType = "success"
)

// Notification is a message addressed to one user.
type Notification struct {
	NotificationID   string           `json:"notificationID"`
	UserID           string           `json:"userID"`
	Title            string           `json:"title"`
	Message          string           `json:"message"`
	NotificationType NotificationType `json:"notificationType"`
	IsRead           bool             `json:"isRead"`
	CreatedAt        time.Time        `json:"createdAt"`
}
