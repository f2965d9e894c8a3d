package notification

import (
	"context"

	"github.com/cargolink/cargolink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/cargolink/cargolink/services/notification NotificationUC

// NotificationUC defines the notification use cases. The Record
// methods are driven by the NSQ consumers, the rest by HTTP.
type NotificationUC interface {
	// RecordBookingEvent writes the per-user record for a booking
	// lifecycle event.
	RecordBookingEvent(ctx context.Context, topic string, event *models.BookingEvent) error

	// RecordTripStatus writes the warehouse-facing record for a trip
	// stage transition.
	RecordTripStatus(ctx context.Context, event *models.TripStatusEvent) error

	// List returns the actor's notifications, newest first, capped
	List(ctx context.Context, actor models.Actor) ([]models.Notification, error)

	// MarkAllRead flags all of the actor's unread notifications
	MarkAllRead(ctx context.Context, actor models.Actor) error
}
