package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/portfel_tracker/internal/apperrors"
	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/portfel_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/portfel_tracker/internal/models"
	"github.com/SscSPs/portfel_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const notificationColumns = `notification_id, user_id, title, message, notification_type, is_read, created_at`

type PgxNotificationRepository struct {
	BaseRepository
}

func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

func scanNotification(row pgx.Row) (models.Notification, error) {
	var m models.Notification
	err := row.Scan(
		&m.NotificationID,
		&m.UserID,
		&m.Title,
		&m.Message,
		&m.NotificationType,
		&m.IsRead,
		&m.CreatedAt,
	)
	return m, err
}

func (r *PgxNotificationRepository) FindNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error) {
	query := `SELECT ` + notificationColumns + `
		FROM notifications
		WHERE notification_id = $1 AND deleted_at IS NULL;`
	m, err := scanNotification(r.Pool.QueryRow(ctx, query, notificationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find notification %s: %w", notificationID, err)
	}
	n := mapping.ToDomainNotification(m)
	return &n, nil
}

func (r *PgxNotificationRepository) ListNotifications(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]domain.Notification, error) {
	query := `SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1 AND deleted_at IS NULL AND (NOT $2 OR is_read = FALSE)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4;`
	rows, err := r.Pool.Query(ctx, query, userID, unreadOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	notifications := []domain.Notification{}
	for rows.Next() {
		m, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, mapping.ToDomainNotification(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}
	return notifications, nil
}

func (r *PgxNotificationRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND deleted_at IS NULL AND is_read = FALSE;`
	var count int
	if err := r.Pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	m := mapping.ToModelNotification(notification)
	query := `INSERT INTO notifications (` + notificationColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7);`
	_, err := r.Pool.Exec(ctx, query,
		m.NotificationID,
		m.UserID,
		m.Title,
		m.Message,
		m.NotificationType,
		m.IsRead,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save notification %s: %w", m.NotificationID, err)
	}
	return nil
}

func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID string) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE notification_id = $1 AND deleted_at IS NULL;`
	tag, err := r.Pool.Exec(ctx, query, notificationID)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	return requireRowsAffected(tag, "notification")
}

func (r *PgxNotificationRepository) MarkAllNotificationsRead(ctx context.Context, userID string) (int, error) {
	query := `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND deleted_at IS NULL AND is_read = FALSE;`
	tag, err := r.Pool.Exec(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *PgxNotificationRepository) MarkNotificationDeleted(ctx context.Context, notificationID string, deletedAt time.Time) error {
	query := `UPDATE notifications SET deleted_at = $1 WHERE notification_id = $2 AND deleted_at IS NULL;`
	tag, err := r.Pool.Exec(ctx, query, deletedAt, notificationID)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s deleted: %w", notificationID, err)
	}
	return requireRowsAffected(tag, "notification")
}
