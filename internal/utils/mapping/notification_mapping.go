package mapping

import (
	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	"github.com/SscSPs/portfel_tracker/internal/models"
)

// ToModelNotification converts a domain Notification to a model Notification
func ToModelNotification(d domain.Notification) models.Notification {
	return models.Notification{
		NotificationID:   d.NotificationID,
		UserID:           d.UserID,
		Title:            d.Title,
		Message:          d.Message,
		NotificationType: string(d.NotificationType),
		IsRead:           d.IsRead,
		CreatedAt:        d.CreatedAt,
	}
}

// ToDomainNotification converts a model Notification to a domain Notification
func ToDomainNotification(m models.Notification) domain.Notification {
	return domain.Notification{
		NotificationID:   m.NotificationID,
		UserID:           m.UserID,
		Title:            m.Title,
		Message:          m.Message,
		NotificationType: domain.NotificationType(m.NotificationType),
		IsRead:           m.IsRead,
		CreatedAt:        m.CreatedAt,
	}
}
