package shipment

import (
	"context"

	"github.com/google/uuid"

	"github.com/cargolink/cargolink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/cargolink/cargolink/services/shipment ShipmentRepo

// ShipmentRepo defines the shipment data access contract
type ShipmentRepo interface {
	// CreateShipment inserts a new shipment
	CreateShipment(ctx context.Context, shipment *models.Shipment) error

	// GetShipment loads a shipment by id
	GetShipment(ctx context.Context, id uuid.UUID) (*models.Shipment, error)

	// ListByWarehouse returns a warehouse's shipments, newest first,
	// optionally filtered by status.
	ListByWarehouse(ctx context.Context, warehouseID uuid.UUID, status models.ShipmentStatus) ([]models.Shipment, error)

	// GetWarehouseStats aggregates delivered trips, CO2 savings and
	// received ratings for a warehouse.
	GetWarehouseStats(ctx context.Context, warehouseID uuid.UUID) (*models.WarehouseStats, error)
}
