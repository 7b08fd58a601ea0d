package services

import (
	"context"

	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	"github.com/SscSPs/portfel_tracker/internal/dto"
)

// NotificationSvcFacade defines operations on a user's notifications.
type NotificationSvcFacade interface {
	CreateNotification(ctx context.Context, userID, title, message string, notificationType domain.NotificationType) (*domain.Notification, error)
	ListNotifications(ctx context.Context, userID string, params dto.ListNotificationsParams) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	// MarkRead returns apperrors.ErrNotFound for a missing notification and apperrors.ErrForbidden for another user's.
	MarkRead(ctx context.Context, userID, notificationID string) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int, error)
	DeleteNotification(ctx context.Context, userID, notificationID string) error
}
