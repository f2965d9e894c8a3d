package trip

import (
	"context"

	"github.com/cargolink/cargolink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/cargolink/cargolink/services/trip TripUC

// TripUC defines the trip state machine use cases
type TripUC interface {
	// Advance moves a trip to the target delivery stage. The target
	// must be the immediate successor of the current stage; delivery
	// additionally computes CO2 savings and releases the truck.
	Advance(ctx context.Context, actor models.Actor, tripID string, target models.TripStatus) (*models.Trip, error)

	// GetTrip loads a single trip visible to the actor
	GetTrip(ctx context.Context, actor models.Actor, tripID string) (*models.Trip, error)

	// ListForActor returns the actor's trips, newest first
	ListForActor(ctx context.Context, actor models.Actor) ([]models.Trip, error)
}
