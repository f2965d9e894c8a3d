package trip

import (
	"context"

	"github.com/google/uuid"

	"github.com/cargolink/cargolink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/cargolink/cargolink/services/trip TripRepo

// TripRepo defines the trip data access contract
type TripRepo interface {
	// GetTrip loads a trip by id
	GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error)

	// GetShipment loads the trip's shipment
	GetShipment(ctx context.Context, id uuid.UUID) (*models.Shipment, error)

	// GetBooking loads the trip's booking
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)

	// AdvanceStatus moves a trip from one stage to the next and
	// propagates the stage onto the shipment, in one transaction. The
	// update is conditional on the current stage; losing that race
	// returns a conflict.
	AdvanceStatus(ctx context.Context, trip *models.Trip, from, to models.TripStatus) error

	// MarkDelivered is AdvanceStatus into the terminal stage: it also
	// stores the CO2 savings and releases the truck. The conditional
	// update guarantees the computation lands at most once.
	MarkDelivered(ctx context.Context, trip *models.Trip, from models.TripStatus, co2Saved int64) error

	// ListByWarehouse returns a warehouse's trips, newest first
	ListByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]models.Trip, error)

	// ListByDealer returns a dealer's trips, newest first
	ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]models.Trip, error)
}
