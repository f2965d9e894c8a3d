package match

import (
	"context"

	"github.com/google/uuid"

	"github.com/cargolink/cargolink/internal/pkg/models"
)

// MatchRepo defines the data access operations used by the matcher
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/cargolink/cargolink/services/match MatchRepo
type MatchRepo interface {
	GetShipment(ctx context.Context, id uuid.UUID) (*models.Shipment, error)
	ListAvailableTrucks(ctx context.Context) ([]models.AvailableTruck, error)
	// GetRatingAggregates returns per-dealer rating sums and counts for
	// all given dealer ids in one batch. Dealers without ratings are
	// absent from the result map.
	GetRatingAggregates(ctx context.Context, dealerIDs []uuid.UUID) (map[uuid.UUID]models.RatingAggregate, error)
}
