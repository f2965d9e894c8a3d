package shipment

import (
	"context"

	"github.com/cargolink/cargolink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/cargolink/cargolink/services/shipment ShipmentUC

// ShipmentUC defines the shipment use cases
type ShipmentUC interface {
	// Create posts a new shipment for the warehouse. Distance is
	// either supplied or estimated from the city registry.
	Create(ctx context.Context, actor models.Actor, req *models.ShipmentCreateRequest) (*models.Shipment, error)

	// Get loads a shipment, restricted to its owning warehouse
	Get(ctx context.Context, actor models.Actor, shipmentID string) (*models.Shipment, error)

	// List returns the warehouse's shipments, optionally filtered by
	// status, newest first.
	List(ctx context.Context, actor models.Actor, status models.ShipmentStatus) ([]models.Shipment, error)

	// Stats summarizes the warehouse's delivered volume
	Stats(ctx context.Context, actor models.Actor) (*models.WarehouseStats, error)
}
