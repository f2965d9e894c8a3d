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

// BookingRepo is the PostgreSQL-backed booking repository
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(cfg *models.Config, db *sqlx.DB) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetShipment loads a shipment by id
func (r *BookingRepo) GetShipment(ctx context.Context, id uuid.UUID) (*models.Shipment, error) {
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

// GetTruck loads a truck by id
func (r *BookingRepo) GetTruck(ctx context.Context, id uuid.UUID) (*models.Truck, error) {
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

// GetBooking loads a booking by id
func (r *BookingRepo) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
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

// CreateBooking inserts a pending booking and marks its shipment
// requested in one transaction.
func (r *BookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.Dependency("failed to begin transaction", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO bookings (
			id, shipment_id, warehouse_id, dealer_id, truck_id,
			utilization, final_price, status, created_at, updated_at
		) VALUES (
			:id, :shipment_id, :warehouse_id, :dealer_id, :truck_id,
			:utilization, :final_price, :status, :created_at, :updated_at
		)
	`
	if _, err := tx.NamedExecContext(ctx, query, booking); err != nil {
		return apperrors.Dependency("failed to insert booking", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE shipments SET status = $1, updated_at = $2 WHERE id = $3`,
		models.ShipmentStatusRequested, time.Now(), booking.ShipmentID)
	if err != nil {
		return apperrors.Dependency("failed to mark shipment requested", err)
	}

	if err := tx.Commit(); err != nil {
		return apperrors.Dependency("failed to commit booking", err)
	}
	return nil
}

// ApproveBooking resolves a pending booking to approved, creates its
// trip, locks the truck and marks the shipment approved in one
// transaction. The status update is conditional on the booking still
// being pending so only one of two racing approvals wins.
func (r *BookingRepo) ApproveBooking(ctx context.Context, booking *models.Booking) (*models.Trip, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, apperrors.Dependency("failed to begin transaction", err)
	}
	defer tx.Rollback()

	if err := r.resolveStatusTx(ctx, tx, booking.ID, models.BookingStatusApproved); err != nil {
		return nil, err
	}

	now := time.Now()
	trip := &models.Trip{
		ID:          uuid.New(),
		ShipmentID:  booking.ShipmentID,
		BookingID:   booking.ID,
		DealerID:    booking.DealerID,
		WarehouseID: booking.WarehouseID,
		TruckID:     booking.TruckID,
		Status:      models.TripStatusAssigned,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	tripQuery := `
		INSERT INTO trips (
			id, shipment_id, booking_id, dealer_id, warehouse_id,
			truck_id, status, co2_saved, created_at, updated_at
		) VALUES (
			:id, :shipment_id, :booking_id, :dealer_id, :warehouse_id,
			:truck_id, :status, :co2_saved, :created_at, :updated_at
		)
	`
	if _, err := tx.NamedExecContext(ctx, tripQuery, trip); err != nil {
		return nil, apperrors.Dependency("failed to insert trip", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE trucks SET is_available = false, updated_at = $1 WHERE id = $2`,
		now, booking.TruckID)
	if err != nil {
		return nil, apperrors.Dependency("failed to lock truck", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE shipments SET status = $1, assigned_truck_id = $2, updated_at = $3 WHERE id = $4`,
		models.ShipmentStatusApproved, booking.TruckID, now, booking.ShipmentID)
	if err != nil {
		return nil, apperrors.Dependency("failed to mark shipment approved", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, apperrors.Dependency("failed to commit approval", err)
	}
	return trip, nil
}

// RejectBooking resolves a pending booking to rejected and releases
// the shipment back to created.
func (r *BookingRepo) RejectBooking(ctx context.Context, booking *models.Booking) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.Dependency("failed to begin transaction", err)
	}
	defer tx.Rollback()

	if err := r.resolveStatusTx(ctx, tx, booking.ID, models.BookingStatusRejected); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE shipments SET status = $1, updated_at = $2 WHERE id = $3`,
		models.ShipmentStatusCreated, time.Now(), booking.ShipmentID)
	if err != nil {
		return apperrors.Dependency("failed to release shipment", err)
	}

	if err := tx.Commit(); err != nil {
		return apperrors.Dependency("failed to commit rejection", err)
	}
	return nil
}

// resolveStatusTx flips a booking out of pending. Zero rows affected
// means another request already resolved it.
func (r *BookingRepo) resolveStatusTx(ctx context.Context, tx *sqlx.Tx, bookingID uuid.UUID, to models.BookingStatus) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE bookings SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`,
		to, time.Now(), bookingID, models.BookingStatusPending)
	if err != nil {
		return apperrors.Dependency("failed to update booking status", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.Conflict("booking is already resolved")
	}
	return nil
}

// ListByWarehouse returns a warehouse's bookings, newest first
func (r *BookingRepo) ListByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]models.Booking, error) {
	return r.listBookings(ctx, "warehouse_id", warehouseID)
}

// ListByDealer returns a dealer's bookings, newest first
func (r *BookingRepo) ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]models.Booking, error) {
	return r.listBookings(ctx, "dealer_id", dealerID)
}

func (r *BookingRepo) listBookings(ctx context.Context, column string, id uuid.UUID) ([]models.Booking, error) {
	query := fmt.Sprintf(`
		SELECT id, shipment_id, warehouse_id, dealer_id, truck_id,
		       utilization, final_price, status, created_at, updated_at
		FROM bookings
		WHERE %s = $1
		ORDER BY created_at DESC
	`, column)

	var bookings []models.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, id); err != nil {
		return nil, apperrors.Dependency("failed to list bookings", err)
	}
	return bookings, nil
}
