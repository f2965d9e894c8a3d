package match

import (
	"context"

	"github.com/cargolink/cargolink/internal/pkg/models"
)

// MatchUC defines the interface for truck matching business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/cargolink/cargolink/services/match MatchUC
type MatchUC interface {
	// MatchTrucks ranks the available fleet against a shipment. Only the
	// owning warehouse may request a match. An empty strategy selects the
	// configured default.
	MatchTrucks(ctx context.Context, actor models.Actor, shipmentID string, strategy models.MatchStrategy) ([]models.TruckCandidate, error)
}
