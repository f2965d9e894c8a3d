package truck

import (
	"context"

	"github.com/google/uuid"

	"github.com/cargolink/cargolink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/cargolink/cargolink/services/truck TruckRepo

// TruckRepo defines the truck data access contract
type TruckRepo interface {
	// CreateTruck inserts a new truck
	CreateTruck(ctx context.Context, truck *models.Truck) error

	// GetTruck loads a truck by id
	GetTruck(ctx context.Context, id uuid.UUID) (*models.Truck, error)

	// UpdateTruck persists a truck's editable specs
	UpdateTruck(ctx context.Context, truck *models.Truck) error

	// ListByDealer returns a dealer's fleet, newest first
	ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]models.Truck, error)

	// SetAvailability flips is_available atomically by id
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error

	// GetDealerStats aggregates fleet size, pending booking requests
	// and active trips for a dealer.
	GetDealerStats(ctx context.Context, dealerID uuid.UUID) (*models.DealerStats, error)
}
