package usecase

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/cargolink/cargolink/internal/pkg/errors"
	"github.com/cargolink/cargolink/internal/pkg/models"
	"github.com/cargolink/cargolink/services/truck"
)

// truckUC implements the truck.TruckUC interface
type truckUC struct {
	cfg       *models.Config
	truckRepo truck.TruckRepo
}

// NewTruckUC creates a new truck use case
func NewTruckUC(cfg *models.Config, truckRepo truck.TruckRepo) truck.TruckUC {
	return &truckUC{
		cfg:       cfg,
		truckRepo: truckRepo,
	}
}

// Create registers a new vehicle for the dealer. New trucks enter the
// available pool immediately.
func (uc *truckUC) Create(ctx context.Context, actor models.Actor, req *models.TruckCreateRequest) (*models.Truck, error) {
	if actor.Role != models.RoleDealer {
		return nil, apperrors.Authorization("only dealers can register trucks")
	}
	if err := validateSpecs(req.TruckType, req.MaxWeight, req.MaxVolume, req.CostPerKm); err != nil {
		return nil, err
	}

	now := time.Now()
	t := &models.Truck{
		ID:          uuid.New(),
		DealerID:    actor.UserID,
		TruckType:   req.TruckType,
		MaxWeight:   req.MaxWeight,
		MaxVolume:   req.MaxVolume,
		CostPerKm:   req.CostPerKm,
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.truckRepo.CreateTruck(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update edits a vehicle's specs. Availability is not touched here,
// trips may be holding the truck.
func (uc *truckUC) Update(ctx context.Context, actor models.Actor, truckID string, req *models.TruckUpdateRequest) (*models.Truck, error) {
	t, err := uc.ownedTruck(ctx, actor, truckID)
	if err != nil {
		return nil, err
	}
	if err := validateSpecs(req.TruckType, req.MaxWeight, req.MaxVolume, req.CostPerKm); err != nil {
		return nil, err
	}

	t.TruckType = req.TruckType
	t.MaxWeight = req.MaxWeight
	t.MaxVolume = req.MaxVolume
	t.CostPerKm = req.CostPerKm
	t.UpdatedAt = time.Now()

	if err := uc.truckRepo.UpdateTruck(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// List returns the dealer's fleet
func (uc *truckUC) List(ctx context.Context, actor models.Actor) ([]models.Truck, error) {
	if actor.Role != models.RoleDealer {
		return nil, apperrors.Authorization("only dealers have a fleet")
	}
	return uc.truckRepo.ListByDealer(ctx, actor.UserID)
}

// SetAvailability manually toggles a vehicle in or out of the pool.
// The flip is a single targeted update keyed by id so it cannot
// interleave with the booking and trip lifecycle flips.
func (uc *truckUC) SetAvailability(ctx context.Context, actor models.Actor, truckID string, available bool) (*models.Truck, error) {
	t, err := uc.ownedTruck(ctx, actor, truckID)
	if err != nil {
		return nil, err
	}

	if err := uc.truckRepo.SetAvailability(ctx, t.ID, available); err != nil {
		return nil, err
	}
	t.IsAvailable = available
	return t, nil
}

// Stats summarizes the dealer's fleet and workload
func (uc *truckUC) Stats(ctx context.Context, actor models.Actor) (*models.DealerStats, error) {
	if actor.Role != models.RoleDealer {
		return nil, apperrors.Authorization("only dealers have fleet stats")
	}
	return uc.truckRepo.GetDealerStats(ctx, actor.UserID)
}

func (uc *truckUC) ownedTruck(ctx context.Context, actor models.Actor, truckID string) (*models.Truck, error) {
	if actor.Role != models.RoleDealer {
		return nil, apperrors.Authorization("only dealers manage trucks")
	}
	id, err := uuid.Parse(truckID)
	if err != nil {
		return nil, apperrors.Validation("invalid truck id")
	}

	t, err := uc.truckRepo.GetTruck(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.DealerID != actor.UserID {
		return nil, apperrors.Authorization("truck belongs to another dealer")
	}
	return t, nil
}

func validateSpecs(truckType models.TruckType, maxWeight, maxVolume, costPerKm float64) error {
	if !models.ValidTruckType(truckType) {
		return apperrors.Validation("unsupported truck type")
	}
	for _, v := range []float64{maxWeight, maxVolume, costPerKm} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return apperrors.Validation("capacities and cost must be positive numbers")
		}
	}
	return nil
}
