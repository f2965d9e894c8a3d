package notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/cargolink/cargolink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/cargolink/cargolink/services/notification NotificationRepo

// NotificationRepo defines the notification data access contract
type NotificationRepo interface {
	// CreateNotification inserts a new notification record
	CreateNotification(ctx context.Context, notification *models.Notification) error

	// ListForUser returns a user's notifications, newest first,
	// at most limit rows.
	ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Notification, error)

	// MarkAllRead flags all of a user's unread notifications
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}
