package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	apperrors "github.com/cargolink/cargolink/internal/pkg/errors"
	"github.com/cargolink/cargolink/internal/pkg/models"
)

// TruckRepo is the PostgreSQL-backed truck repository
type TruckRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTruckRepository creates a new truck repository
func NewTruckRepository(cfg *models.Config, db *sqlx.DB) *TruckRepo {
	return &TruckRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateTruck inserts a new truck
func (r *TruckRepo) CreateTruck(ctx context.Context, truck *models.Truck) error {
	query := `
		INSERT INTO trucks (
			id, dealer_id, truck_type, max_weight, max_volume,
			cost_per_km, is_available, created_at, updated_at
		) VALUES (
			:id, :dealer_id, :truck_type, :max_weight, :max_volume,
			:cost_per_km, :is_available, :created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, truck); err != nil {
		return apperrors.Dependency("failed to insert truck", err)
	}
	return nil
}

// GetTruck loads a truck by id
func (r *TruckRepo) GetTruck(ctx context.Context, id uuid.UUID) (*models.Truck, error) {
	query := `
		SELECT id, dealer_id, truck_type, max_weight, max_volume,
		       cost_per_km, is_available, created_at, updated_at
		FROM trucks
		WHERE id = $1
	`

	truck := &models.Truck{}
	if err := r.db.GetContext(ctx, truck, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("truck not found")
		}
		return nil, apperrors.Dependency("failed to load truck", err)
	}
	return truck, nil
}

// UpdateTruck persists a truck's editable specs
func (r *TruckRepo) UpdateTruck(ctx context.Context, truck *models.Truck) error {
	query := `
		UPDATE trucks
		SET truck_type = :truck_type, max_weight = :max_weight,
		    max_volume = :max_volume, cost_per_km = :cost_per_km,
		    updated_at = :updated_at
		WHERE id = :id
	`
	if _, err := r.db.NamedExecContext(ctx, query, truck); err != nil {
		return apperrors.Dependency("failed to update truck", err)
	}
	return nil
}

// ListByDealer returns a dealer's fleet, newest first
func (r *TruckRepo) ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]models.Truck, error) {
	query := `
		SELECT id, dealer_id, truck_type, max_weight, max_volume,
		       cost_per_km, is_available, created_at, updated_at
		FROM trucks
		WHERE dealer_id = $1
		ORDER BY created_at DESC
	`

	var trucks []models.Truck
	if err := r.db.SelectContext(ctx, &trucks, query, dealerID); err != nil {
		return nil, apperrors.Dependency("failed to list trucks", err)
	}
	return trucks, nil
}

// SetAvailability flips is_available atomically by id
func (r *TruckRepo) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	query := `UPDATE trucks SET is_available = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, available, time.Now(), id)
	if err != nil {
		return apperrors.Dependency("failed to update truck availability", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Dependency("failed to read affected rows", err)
	}
	if rows == 0 {
		return apperrors.NotFound("truck not found")
	}
	return nil
}

// GetDealerStats aggregates fleet size, pending booking requests and
// active trips for a dealer.
func (r *TruckRepo) GetDealerStats(ctx context.Context, dealerID uuid.UUID) (*models.DealerStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM trucks WHERE dealer_id = $1) AS trucks,
			(SELECT COUNT(*) FROM bookings WHERE dealer_id = $1 AND status = 'pending') AS requests,
			(SELECT COUNT(*) FROM trips WHERE dealer_id = $1 AND status <> 'delivered') AS trips
	`

	stats := &models.DealerStats{}
	if err := r.db.GetContext(ctx, stats, query, dealerID); err != nil {
		return nil, apperrors.Dependency("failed to load dealer stats", err)
	}
	return stats, nil
}
