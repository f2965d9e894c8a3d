package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/cargolink/cargolink/internal/pkg/constants"
	"github.com/cargolink/cargolink/internal/pkg/database"
	apperrors "github.com/cargolink/cargolink/internal/pkg/errors"
	"github.com/cargolink/cargolink/internal/pkg/logger"
	"github.com/cargolink/cargolink/internal/pkg/models"
)

const uniqueViolation = "23505"

// RatingRepo is the PostgreSQL-backed rating repository
type RatingRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	cache *database.RedisClient
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(cfg *models.Config, db *sqlx.DB, cache *database.RedisClient) *RatingRepo {
	return &RatingRepo{
		cfg:   cfg,
		db:    db,
		cache: cache,
	}
}

// GetTrip loads a trip by id
func (r *RatingRepo) GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	query := `
		SELECT id, shipment_id, booking_id, dealer_id, warehouse_id,
		       truck_id, status, co2_saved, created_at, updated_at
		FROM trips
		WHERE id = $1
	`

	trip := &models.Trip{}
	if err := r.db.GetContext(ctx, trip, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("trip not found")
		}
		return nil, apperrors.Dependency("failed to load trip", err)
	}
	return trip, nil
}

// Exists reports whether a rating exists for the (trip, rater) pair
func (r *RatingRepo) Exists(ctx context.Context, tripID, fromUserID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM ratings WHERE trip_id = $1 AND from_user_id = $2)`,
		tripID, fromUserID)
	if err != nil {
		return false, apperrors.Dependency("failed to check rating existence", err)
	}
	return exists, nil
}

// CreateRating inserts a rating. The unique index on
// (trip_id, from_user_id) turns a concurrent duplicate into a
// conflict instead of a second row.
func (r *RatingRepo) CreateRating(ctx context.Context, rating *models.Rating) error {
	query := `
		INSERT INTO ratings (id, trip_id, from_user_id, to_user_id, score, comment, created_at)
		VALUES (:id, :trip_id, :from_user_id, :to_user_id, :score, :comment, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, rating); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.Conflict("trip already rated")
		}
		return apperrors.Dependency("failed to insert rating", err)
	}
	return nil
}

// InvalidateAggregate drops the cached rating aggregate for a user.
// A failed delete only delays freshness until the TTL expires.
func (r *RatingRepo) InvalidateAggregate(ctx context.Context, userID uuid.UUID) {
	if r.cache == nil {
		return
	}

	key := fmt.Sprintf(constants.KeyDealerRating, userID.String())
	if err := r.cache.Delete(ctx, key); err != nil {
		logger.Warn("failed to invalidate rating aggregate",
			logger.String("key", key),
			logger.Err(err))
	}
}

// ListForUser returns the ratings received by a user, newest first,
// with the rater's name joined in for display.
func (r *RatingRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Rating, error) {
	query := `
		SELECT r.id, r.trip_id, r.from_user_id, r.to_user_id, r.score,
		       r.comment, r.created_at, u.name AS from_name
		FROM ratings r
		JOIN users u ON u.id = r.from_user_id
		WHERE r.to_user_id = $1
		ORDER BY r.created_at DESC
	`

	var ratings []models.Rating
	if err := r.db.SelectContext(ctx, &ratings, query, userID); err != nil {
		return nil, apperrors.Dependency("failed to list ratings", err)
	}
	return ratings, nil
}
