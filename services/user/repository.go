package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/cargolink/cargolink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/cargolink/cargolink/services/user UserRepo

// UserRepo defines the account data access contract
type UserRepo interface {
	// CreateUser inserts a new account
	CreateUser(ctx context.Context, user *models.User) error

	// GetUser loads an account by id
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)

	// GetUserByEmail loads an account by email
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetTripCounts returns delivered and active trip counts for a
	// user on either side of the trip.
	GetTripCounts(ctx context.Context, userID uuid.UUID) (completed, active int, err error)

	// GetRecentRatings returns the newest ratings received by a user,
	// at most limit rows.
	GetRecentRatings(ctx context.Context, userID uuid.UUID, limit int) ([]models.Rating, error)

	// GetRatingSummary returns the received rating average and count
	GetRatingSummary(ctx context.Context, userID uuid.UUID) (avg float64, count int, err error)

	// GetMonthlyTrips returns per-month delivered trip counts for the
	// trailing months window.
	GetMonthlyTrips(ctx context.Context, userID uuid.UUID, months int) ([]models.MonthlyTrip, error)
}
