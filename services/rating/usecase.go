package rating

import (
	"context"

	"github.com/cargolink/cargolink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/cargolink/cargolink/services/rating RatingUC

// RatingUC defines the rating ledger use cases
type RatingUC interface {
	// Submit records a rating for a delivered trip. The rated party is
	// derived from the trip: warehouses rate the dealer, dealers rate
	// the warehouse. At most one rating per (trip, rater) pair.
	Submit(ctx context.Context, actor models.Actor, req *models.RatingSubmitRequest) (*models.Rating, error)

	// Exists reports whether the actor already rated the trip
	Exists(ctx context.Context, actor models.Actor, tripID string) (bool, error)

	// ListForUser returns the ratings received by a user, newest first
	ListForUser(ctx context.Context, userID string) ([]models.Rating, error)
}
