package booking

import (
	"context"

	"github.com/cargolink/cargolink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/cargolink/cargolink/services/booking BookingUC

// BookingUC defines the booking lifecycle use cases
type BookingUC interface {
	// CreateRequest creates a pending booking for a shipment/truck pair
	// at the quoted price and marks the shipment requested.
	CreateRequest(ctx context.Context, actor models.Actor, req *models.BookingCreateRequest) (*models.Booking, error)

	// Resolve applies a dealer's approve or reject decision. Approval
	// returns the created trip; rejection returns nil.
	Resolve(ctx context.Context, actor models.Actor, bookingID string, action models.BookingAction) (*models.Trip, error)

	// ListForActor returns the actor's bookings, newest first.
	ListForActor(ctx context.Context, actor models.Actor) ([]models.Booking, error)
}
