package models

import "time"

// Notification is a row of the notifications table.
type Notification struct {
	NotificationID   string     `db:"notification_id"`
	UserID           string     `db:"user_id"`
	Title            string     `db:"title"`
	Message          string     `db:"message"`
	NotificationType string     `db:"notification_type"`
	IsRead           bool       `db:"is_read"`
	CreatedAt        time.Time  `db:"created_at"`
	DeletedAt        *time.Time `db:"deleted_at"`
}
