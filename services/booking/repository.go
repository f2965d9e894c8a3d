package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/cargolink/cargolink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/cargolink/cargolink/services/booking BookingRepo

// BookingRepo defines the booking data access contract
type BookingRepo interface {
	// GetShipment loads a shipment by id
	GetShipment(ctx context.Context, id uuid.UUID) (*models.Shipment, error)

	// GetTruck loads a truck by id
	GetTruck(ctx context.Context, id uuid.UUID) (*models.Truck, error)

	// GetBooking loads a booking by id
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)

	// CreateBooking inserts a pending booking and marks its shipment
	// requested in one transaction.
	CreateBooking(ctx context.Context, booking *models.Booking) error

	// ApproveBooking transitions a pending booking to approved,
	// creates the trip, locks the truck and marks the shipment
	// approved, all in one transaction. Losing the status race
	// returns a conflict.
	ApproveBooking(ctx context.Context, booking *models.Booking) (*models.Trip, error)

	// RejectBooking transitions a pending booking to rejected and
	// releases the shipment back to created. Losing the status race
	// returns a conflict.
	RejectBooking(ctx context.Context, booking *models.Booking) error

	// ListByWarehouse returns a warehouse's bookings, newest first
	ListByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]models.Booking, error)

	// ListByDealer returns a dealer's bookings, newest first
	ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]models.Booking, error)
}
