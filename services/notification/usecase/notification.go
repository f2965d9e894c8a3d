package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cargolink/cargolink/internal/pkg/constants"
	apperrors "github.com/cargolink/cargolink/internal/pkg/errors"
	"github.com/cargolink/cargolink/internal/pkg/models"
	"github.com/cargolink/cargolink/services/notification"
)

// listLimit caps the notification feed per user
const listLimit = 30

// notificationUC implements the notification.NotificationUC interface
type notificationUC struct {
	cfg              *models.Config
	notificationRepo notification.NotificationRepo
}

// NewNotificationUC creates a new notification use case
func NewNotificationUC(cfg *models.Config, notificationRepo notification.NotificationRepo) notification.NotificationUC {
	return &notificationUC{
		cfg:              cfg,
		notificationRepo: notificationRepo,
	}
}

// RecordBookingEvent writes the per-user record for a booking
// lifecycle event. Requests go to the dealer, resolutions back to the
// warehouse.
func (uc *notificationUC) RecordBookingEvent(ctx context.Context, topic string, event *models.BookingEvent) error {
	var (
		recipient uuid.UUID
		kind      models.NotificationType
		message   string
		related   = event.BookingID
	)

	switch topic {
	case constants.TopicBookingRequested:
		recipient = event.DealerID
		kind = models.NotificationBookingRequest
		message = "new booking request for your truck"
	case constants.TopicBookingApproved:
		recipient = event.WarehouseID
		kind = models.NotificationBookingApproved
		message = "your booking request was approved"
		if event.TripID != nil {
			related = *event.TripID
		}
	case constants.TopicBookingRejected:
		recipient = event.WarehouseID
		kind = models.NotificationBookingRejected
		message = "your booking request was rejected"
	default:
		return apperrors.Validation("unknown booking topic " + topic)
	}

	return uc.notificationRepo.CreateNotification(ctx, &models.Notification{
		ID:        uuid.New(),
		UserID:    recipient,
		Type:      kind,
		Message:   message,
		RelatedID: related,
		CreatedAt: time.Now(),
	})
}

// RecordTripStatus writes the warehouse-facing record for a trip stage
// transition. Status names are stored with spaces for display.
func (uc *notificationUC) RecordTripStatus(ctx context.Context, event *models.TripStatusEvent) error {
	stage := strings.ReplaceAll(string(event.Status), "_", " ")

	return uc.notificationRepo.CreateNotification(ctx, &models.Notification{
		ID:        uuid.New(),
		UserID:    event.WarehouseID,
		Type:      models.NotificationShipmentUpdate,
		Message:   "shipment status updated to " + stage,
		RelatedID: event.TripID,
		CreatedAt: time.Now(),
	})
}

// List returns the actor's notifications, newest first
func (uc *notificationUC) List(ctx context.Context, actor models.Actor) ([]models.Notification, error) {
	return uc.notificationRepo.ListForUser(ctx, actor.UserID, listLimit)
}

// MarkAllRead flags all of the actor's unread notifications
func (uc *notificationUC) MarkAllRead(ctx context.Context, actor models.Actor) error {
	return uc.notificationRepo.MarkAllRead(ctx, actor.UserID)
}
