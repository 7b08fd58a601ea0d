package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/portfel_tracker/internal/core/domain"
)

// NotificationReader defines read operations for notifications.
type NotificationReader interface {
	// FindNotificationByID retrieves a non-deleted notification regardless of owner,
	// so callers can tell "missing" apart from "not yours".
	FindNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error)

	// ListNotifications retrieves a page of userID's notifications, newest first.
	ListNotifications(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]domain.Notification, error)

	// CountUnread counts userID's unread notifications.
	CountUnread(ctx context.Context, userID string) (int, error)
}

// NotificationWriter defines write operations for notifications.
type NotificationWriter interface {
	SaveNotification(ctx context.Context, notification domain.Notification) error
	MarkNotificationRead(ctx context.Context, notificationID string) error
	// MarkAllNotificationsRead returns how many notifications changed.
	MarkAllNotificationsRead(ctx context.Context, userID string) (int, error)
	MarkNotificationDeleted(ctx context.Context, notificationID string, deletedAt time.Time) error
}

// NotificationRepositoryFacade combines all notification-related repository interfaces.
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}
