package booking

import (
	"context"

	"github.com/cargolink/cargolink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/cargolink/cargolink/services/booking BookingGW

// BookingGW defines the booking event publishing contract.
// Publishing is best effort; a failed publish never rolls back the
// transition that produced it.
type BookingGW interface {
	PublishBookingEvent(ctx context.Context, topic string, event *models.BookingEvent) error
}
