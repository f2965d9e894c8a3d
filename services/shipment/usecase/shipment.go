package usecase

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/cargolink/cargolink/internal/pkg/errors"
	"github.com/cargolink/cargolink/internal/pkg/models"
	"github.com/cargolink/cargolink/internal/utils"
	"github.com/cargolink/cargolink/services/shipment"
)

// shipmentUC implements the shipment.ShipmentUC interface
type shipmentUC struct {
	cfg          *models.Config
	shipmentRepo shipment.ShipmentRepo
}

// NewShipmentUC creates a new shipment use case
func NewShipmentUC(cfg *models.Config, shipmentRepo shipment.ShipmentRepo) shipment.ShipmentUC {
	return &shipmentUC{
		cfg:          cfg,
		shipmentRepo: shipmentRepo,
	}
}

// Create posts a new shipment. When the caller did not supply a
// distance it is estimated from the city registry; map pins are
// resolved to their nearest known city first.
func (uc *shipmentUC) Create(ctx context.Context, actor models.Actor, req *models.ShipmentCreateRequest) (*models.Shipment, error) {
	if actor.Role != models.RoleWarehouse {
		return nil, apperrors.Authorization("only warehouses can post shipments")
	}
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	source, destination := req.Source, req.Destination
	if req.SourcePin != nil {
		source = utils.NearestCity(utils.GeoPoint{Latitude: req.SourcePin.Latitude, Longitude: req.SourcePin.Longitude}).Name
	}
	if req.DestPin != nil {
		destination = utils.NearestCity(utils.GeoPoint{Latitude: req.DestPin.Latitude, Longitude: req.DestPin.Longitude}).Name
	}

	distance := req.Distance
	if distance <= 0 {
		estimated, ok := utils.CityDistance(source, destination)
		if !ok {
			return nil, apperrors.Validation("unknown city and no distance supplied")
		}
		distance = estimated
	}

	now := time.Now()
	s := &models.Shipment{
		ID:          uuid.New(),
		WarehouseID: actor.UserID,
		Weight:      req.Weight,
		Volume:      req.Volume,
		Boxes:       req.Boxes,
		Source:      source,
		Destination: destination,
		Distance:    distance,
		Pickup:      req.Pickup,
		Deadline:    req.Deadline,
		Status:      models.ShipmentStatusCreated,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.shipmentRepo.CreateShipment(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Get loads a shipment for its owning warehouse
func (uc *shipmentUC) Get(ctx context.Context, actor models.Actor, shipmentID string) (*models.Shipment, error) {
	id, err := uuid.Parse(shipmentID)
	if err != nil {
		return nil, apperrors.Validation("shipment id is not a valid UUID")
	}

	s, err := uc.shipmentRepo.GetShipment(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.WarehouseID != actor.UserID {
		return nil, apperrors.Authorization("shipment belongs to another warehouse")
	}
	return s, nil
}

// List returns the warehouse's shipments, optionally by status
func (uc *shipmentUC) List(ctx context.Context, actor models.Actor, status models.ShipmentStatus) ([]models.Shipment, error) {
	if actor.Role != models.RoleWarehouse {
		return nil, apperrors.Authorization("only warehouses can list shipments")
	}
	return uc.shipmentRepo.ListByWarehouse(ctx, actor.UserID, status)
}

// Stats summarizes the warehouse's delivered volume
func (uc *shipmentUC) Stats(ctx context.Context, actor models.Actor) (*models.WarehouseStats, error) {
	if actor.Role != models.RoleWarehouse {
		return nil, apperrors.Authorization("only warehouses have shipment stats")
	}
	return uc.shipmentRepo.GetWarehouseStats(ctx, actor.UserID)
}

func validateCreate(req *models.ShipmentCreateRequest) error {
	if req.Weight <= 0 || math.IsNaN(req.Weight) || math.IsInf(req.Weight, 0) {
		return apperrors.Validation("weight must be positive")
	}
	if req.Volume <= 0 || math.IsNaN(req.Volume) || math.IsInf(req.Volume, 0) {
		return apperrors.Validation("volume must be positive")
	}
	if req.Boxes <= 0 {
		return apperrors.Validation("boxes must be positive")
	}
	if math.IsNaN(req.Distance) || math.IsInf(req.Distance, 0) || req.Distance < 0 {
		return apperrors.Validation("distance must be finite and non-negative")
	}
	if req.SourcePin == nil && strings.TrimSpace(req.Source) == "" {
		return apperrors.Validation("source city or pin is required")
	}
	if req.DestPin == nil && strings.TrimSpace(req.Destination) == "" {
		return apperrors.Validation("destination city or pin is required")
	}
	if req.Pickup.IsZero() || req.Deadline.IsZero() || !req.Pickup.Before(req.Deadline) {
		return apperrors.Validation("pickup must be before deadline")
	}
	return nil
}
