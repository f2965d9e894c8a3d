package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	apperrors "github.com/cargolink/cargolink/internal/pkg/errors"
	"github.com/cargolink/cargolink/internal/pkg/models"
)

// NotificationRepo is the PostgreSQL-backed notification repository
type NotificationRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(cfg *models.Config, db *sqlx.DB) *NotificationRepo {
	return &NotificationRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateNotification inserts a new notification record
func (r *NotificationRepo) CreateNotification(ctx context.Context, notification *models.Notification) error {
	query := `
		INSERT INTO notifications (
			id, user_id, type, message, related_id, is_read, created_at
		) VALUES (
			:id, :user_id, :type, :message, :related_id, :is_read, :created_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, notification); err != nil {
		return apperrors.Dependency("failed to insert notification", err)
	}
	return nil
}

// ListForUser returns a user's notifications, newest first
func (r *NotificationRepo) ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Notification, error) {
	query := `
		SELECT id, user_id, type, message, related_id, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var notifications []models.Notification
	if err := r.db.SelectContext(ctx, &notifications, query, userID, limit); err != nil {
		return nil, apperrors.Dependency("failed to list notifications", err)
	}
	return notifications, nil
}

// MarkAllRead flags all of a user's unread notifications
func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE notifications SET is_read = true WHERE user_id = $1 AND is_read = false`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return apperrors.Dependency("failed to mark notifications read", err)
	}
	return nil
}
