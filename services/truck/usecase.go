package truck

import (
	"context"

	"github.com/cargolink/cargolink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/cargolink/cargolink/services/truck TruckUC

// TruckUC defines the truck fleet use cases
type TruckUC interface {
	// Create registers a new vehicle for the dealer
	Create(ctx context.Context, actor models.Actor, req *models.TruckCreateRequest) (*models.Truck, error)

	// Update edits a vehicle's specs, restricted to its owner
	Update(ctx context.Context, actor models.Actor, truckID string, req *models.TruckUpdateRequest) (*models.Truck, error)

	// List returns the dealer's fleet, newest first
	List(ctx context.Context, actor models.Actor) ([]models.Truck, error)

	// SetAvailability manually toggles a vehicle in or out of the
	// available pool.
	SetAvailability(ctx context.Context, actor models.Actor, truckID string, available bool) (*models.Truck, error)

	// Stats summarizes the dealer's fleet and workload
	Stats(ctx context.Context, actor models.Actor) (*models.DealerStats, error)
}
