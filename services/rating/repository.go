package rating

import (
	"context"

	"github.com/google/uuid"

	"github.com/cargolink/cargolink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/cargolink/cargolink/services/rating RatingRepo

// RatingRepo defines the rating data access contract
type RatingRepo interface {
	// GetTrip loads a trip by id
	GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error)

	// Exists reports whether a rating exists for the (trip, rater) pair
	Exists(ctx context.Context, tripID, fromUserID uuid.UUID) (bool, error)

	// CreateRating inserts a rating. A concurrent duplicate of the
	// same (trip, rater) pair surfaces as a conflict through the
	// unique index, never as a second row.
	CreateRating(ctx context.Context, rating *models.Rating) error

	// InvalidateAggregate drops the cached rating aggregate for a
	// user so the next read recomputes it. Best effort.
	InvalidateAggregate(ctx context.Context, userID uuid.UUID)

	// ListForUser returns the ratings received by a user, newest first
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Rating, error)
}
