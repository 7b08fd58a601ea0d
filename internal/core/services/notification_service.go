package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/portfel_tracker/internal/apperrors"
	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/portfel_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/portfel_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfel_tracker/internal/dto"
	"github.com/google/uuid"
)

const (
	defaultNotificationLimit = 50
	maxNotificationLimit     = 100
)

type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepositoryFacade
	now              func() time.Time
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo portsrepo.NotificationRepositoryFacade) portssvc.NotificationSvcFacade {
	return &notificationService{
		notificationRepo: repo,
		now:              time.Now,
	}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// CreateNotification stores an unread notification for userID.
func (s *notificationService) CreateNotification(ctx context.Context, userID, title, message string, notificationType domain.NotificationType) (*domain.Notification, error) {
	if notificationType == "" {
		notificationType = domain.NotificationInfo
	}
	n := domain.Notification{
		NotificationID:   uuid.NewString(),
		UserID:           userID,
		Title:            title,
		Message:          message,
		NotificationType: notificationType,
		CreatedAt:        s.now(),
	}
	if err := s.notificationRepo.SaveNotification(ctx, n); err != nil {
		s.LogError(ctx, err, "Failed to save notification", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return &n, nil
}

// ListNotifications returns a page of userID's notifications, newest first.
func (s *notificationService) ListNotifications(ctx context.Context, userID string, params dto.ListNotificationsParams) ([]domain.Notification, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}
	offset := max(params.Offset, 0)

	notifications, err := s.notificationRepo.ListNotifications(ctx, userID, params.UnreadOnly, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list notifications")
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// UnreadCount counts userID's unread notifications.
func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	count, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count unread notifications")
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// owned loads a notification and checks that it belongs to userID.
func (s *notificationService) owned(ctx context.Context, userID, notificationID string) (*domain.Notification, error) {
	n, err := s.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get notification", slog.String("notification_id", notificationID))
		}
		return nil, fmt.Errorf("failed to get notification %s: %w", notificationID, err)
	}
	if n.UserID != userID {
		s.LogWarn(ctx, "Notification belongs to another user", slog.String("notification_id", notificationID))
		return nil, fmt.Errorf("notification %s: %w", notificationID, apperrors.ErrForbidden)
	}
	return n, nil
}

// MarkRead marks one of userID's notifications as read.
func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID string) (*domain.Notification, error) {
	n, err := s.owned(ctx, userID, notificationID)
	if err != nil {
		return nil, err
	}
	if n.IsRead {
		return n, nil
	}
	if err := s.notificationRepo.MarkNotificationRead(ctx, notificationID); err != nil {
		s.LogError(ctx, err, "Failed to mark notification read", slog.String("notification_id", notificationID))
		return nil, fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	n.IsRead = true
	return n, nil
}

// MarkAllRead marks every unread notification of userID as read and returns how many changed.
func (s *notificationService) MarkAllRead(ctx context.Context, userID string) (int, error) {
	count, err := s.notificationRepo.MarkAllNotificationsRead(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to mark all notifications read")
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	s.LogInfo(ctx, "Notifications marked read", slog.Int("count", count))
	return count, nil
}

// DeleteNotification soft-deletes one of userID's notifications.
func (s *notificationService) DeleteNotification(ctx context.Context, userID, notificationID string) error {
	if _, err := s.owned(ctx, userID, notificationID); err != nil {
		return err
	}
	if err := s.notificationRepo.MarkNotificationDeleted(ctx, notificationID, s.now()); err != nil {
		s.LogError(ctx, err, "Failed to delete notification", slog.String("notification_id", notificationID))
		return fmt.Errorf("failed to delete notification %s: %w", notificationID, err)
	}
	return nil
}
