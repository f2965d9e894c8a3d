package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	apperrors "github.com/cargolink/cargolink/internal/pkg/errors"
	"github.com/cargolink/cargolink/internal/pkg/models"
)

// TripRepo is the PostgreSQL-backed trip repository
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetTrip loads a trip by id
func (r *TripRepo) GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
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

// GetShipment loads the trip's shipment
func (r *TripRepo) GetShipment(ctx context.Context, id uuid.UUID) (*models.Shipment, error) {
	query := `
		SELECT id, warehouse_id, weight, volume, boxes, source, destination,
		       distance, pickup, deadline, status, assigned_truck_id,
		       created_at, updated_at
		FROM shipments
		WHERE id = $1
	`

	shipment := &models.Shipment{}
	if err := r.db.GetContext(ctx, shipment, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("shipment not found")
		}
		return nil, apperrors.Dependency("failed to load shipment", err)
	}
	return shipment, nil
}

// GetBooking loads the trip's booking
func (r *TripRepo) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	query := `
		SELECT id, shipment_id, warehouse_id, dealer_id, truck_id,
		       utilization, final_price, status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	booking := &models.Booking{}
	if err := r.db.GetContext(ctx, booking, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("booking not found")
		}
		return nil, apperrors.Dependency("failed to load booking", err)
	}
	return booking, nil
}

// AdvanceStatus moves a trip to the next stage and mirrors the stage
// onto the shipment. The trip update is conditional on the current
// stage so concurrent advances cannot both win.
func (r *TripRepo) AdvanceStatus(ctx context.Context, trip *models.Trip, from, to models.TripStatus) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.Dependency("failed to begin transaction", err)
	}
	defer tx.Rollback()

	if err := r.advanceTripTx(ctx, tx, trip.ID, from, to, nil); err != nil {
		return err
	}
	if err := r.mirrorShipmentStatusTx(ctx, tx, trip.ShipmentID, to); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return apperrors.Dependency("failed to commit trip advance", err)
	}
	return nil
}

// MarkDelivered applies the terminal transition: trip delivered with
// its CO2 savings, truck released, shipment delivered. All four writes
// commit together, and the conditional trip update ensures the CO2
// figure and truck release land exactly once.
func (r *TripRepo) MarkDelivered(ctx context.Context, trip *models.Trip, from models.TripStatus, co2Saved int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.Dependency("failed to begin transaction", err)
	}
	defer tx.Rollback()

	if err := r.advanceTripTx(ctx, tx, trip.ID, from, models.TripStatusDelivered, &co2Saved); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE trucks SET is_available = true, updated_at = $1 WHERE id = $2`,
		time.Now(), trip.TruckID)
	if err != nil {
		return apperrors.Dependency("failed to release truck", err)
	}

	if err := r.mirrorShipmentStatusTx(ctx, tx, trip.ShipmentID, models.TripStatusDelivered); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return apperrors.Dependency("failed to commit delivery", err)
	}
	return nil
}

func (r *TripRepo) advanceTripTx(ctx context.Context, tx *sqlx.Tx, tripID uuid.UUID, from, to models.TripStatus, co2Saved *int64) error {
	var res sql.Result
	var err error

	if co2Saved != nil {
		res, err = tx.ExecContext(ctx,
			`UPDATE trips SET status = $1, co2_saved = $2, updated_at = $3 WHERE id = $4 AND status = $5`,
			to, *co2Saved, time.Now(), tripID, from)
	} else {
		res, err = tx.ExecContext(ctx,
			`UPDATE trips SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`,
			to, time.Now(), tripID, from)
	}
	if err != nil {
		return apperrors.Dependency("failed to update trip status", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.Conflict("trip was advanced concurrently")
	}
	return nil
}

func (r *TripRepo) mirrorShipmentStatusTx(ctx context.Context, tx *sqlx.Tx, shipmentID uuid.UUID, status models.TripStatus) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE shipments SET status = $1, updated_at = $2 WHERE id = $3`,
		models.ShipmentStatus(status), time.Now(), shipmentID)
	if err != nil {
		return apperrors.Dependency("failed to mirror shipment status", err)
	}
	return nil
}

// ListByWarehouse returns a warehouse's trips, newest first
func (r *TripRepo) ListByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]models.Trip, error) {
	return r.listTrips(ctx, "warehouse_id", warehouseID)
}

// ListByDealer returns a dealer's trips, newest first
func (r *TripRepo) ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]models.Trip, error) {
	return r.listTrips(ctx, "dealer_id", dealerID)
}

func (r *TripRepo) listTrips(ctx context.Context, column string, id uuid.UUID) ([]models.Trip, error) {
	query := fmt.Sprintf(`
		SELECT id, shipment_id, booking_id, dealer_id, warehouse_id,
		       truck_id, status, co2_saved, created_at, updated_at
		FROM trips
		WHERE %s = $1
		ORDER BY created_at DESC
	`, column)

	var trips []models.Trip
	if err := r.db.SelectContext(ctx, &trips, query, id); err != nil {
		return nil, apperrors.Dependency("failed to list trips", err)
	}
	return trips, nil
}
