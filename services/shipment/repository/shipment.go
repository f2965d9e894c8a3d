package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	apperrors "github.com/cargolink/cargolink/internal/pkg/errors"
	"github.com/cargolink/cargolink/internal/pkg/models"
)

// ShipmentRepo is the PostgreSQL-backed shipment repository
type ShipmentRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewShipmentRepository creates a new shipment repository
func NewShipmentRepository(cfg *models.Config, db *sqlx.DB) *ShipmentRepo {
	return &ShipmentRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateShipment inserts a new shipment
func (r *ShipmentRepo) CreateShipment(ctx context.Context, shipment *models.Shipment) error {
	query := `
		INSERT INTO shipments (
			id, warehouse_id, weight, volume, boxes, source, destination,
			distance, pickup, deadline, status, created_at, updated_at
		) VALUES (
			:id, :warehouse_id, :weight, :volume, :boxes, :source, :destination,
			:distance, :pickup, :deadline, :status, :created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, shipment); err != nil {
		return apperrors.Dependency("failed to insert shipment", err)
	}
	return nil
}

// GetShipment loads a shipment by id
func (r *ShipmentRepo) GetShipment(ctx context.Context, id uuid.UUID) (*models.Shipment, error) {
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

// ListByWarehouse returns a warehouse's shipments, newest first,
// optionally filtered by status.
func (r *ShipmentRepo) ListByWarehouse(ctx context.Context, warehouseID uuid.UUID, status models.ShipmentStatus) ([]models.Shipment, error) {
	query := `
		SELECT id, warehouse_id, weight, volume, boxes, source, destination,
		       distance, pickup, deadline, status, assigned_truck_id,
		       created_at, updated_at
		FROM shipments
		WHERE warehouse_id = $1
	`
	args := []interface{}{warehouseID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	var shipments []models.Shipment
	if err := r.db.SelectContext(ctx, &shipments, query, args...); err != nil {
		return nil, apperrors.Dependency("failed to list shipments", err)
	}
	return shipments, nil
}

// GetWarehouseStats aggregates delivered trips, CO2 savings and
// received ratings for a warehouse. The rating average is computed on
// read; it is NULL until the first rating arrives.
func (r *ShipmentRepo) GetWarehouseStats(ctx context.Context, warehouseID uuid.UUID) (*models.WarehouseStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM trips WHERE warehouse_id = $1 AND status = 'delivered') AS trips_completed,
			(SELECT COALESCE(SUM(co2_saved), 0) FROM trips WHERE warehouse_id = $1 AND status = 'delivered') AS co2_saved,
			(SELECT ROUND(AVG(score)::numeric, 1) FROM ratings WHERE to_user_id = $1) AS avg_rating
	`

	stats := &models.WarehouseStats{}
	if err := r.db.GetContext(ctx, stats, query, warehouseID); err != nil {
		return nil, apperrors.Dependency("failed to load warehouse stats", err)
	}
	return stats, nil
}
