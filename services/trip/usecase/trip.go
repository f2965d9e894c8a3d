package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/cargolink/cargolink/internal/pkg/errors"
	"github.com/cargolink/cargolink/internal/pkg/logger"
	"github.com/cargolink/cargolink/internal/pkg/models"
	"github.com/cargolink/cargolink/services/trip"
)

// tripUC implements the trip.TripUC interface
type tripUC struct {
	cfg      *models.Config
	tripRepo trip.TripRepo
	tripGW   trip.TripGW
}

// NewTripUC creates a new trip state machine use case
func NewTripUC(cfg *models.Config, tripRepo trip.TripRepo, tripGW trip.TripGW) trip.TripUC {
	return &tripUC{
		cfg:      cfg,
		tripRepo: tripRepo,
		tripGW:   tripGW,
	}
}

// Advance moves a trip one stage forward. The caller supplies the
// target stage and it must be the immediate successor of the current
// one; skipping ahead or going backwards is rejected. Only the trip's
// dealer may advance it.
func (uc *tripUC) Advance(ctx context.Context, actor models.Actor, tripID string, target models.TripStatus) (*models.Trip, error) {
	if !models.ValidTripStatus(target) {
		return nil, apperrors.Validation("unknown trip status")
	}
	if actor.Role != models.RoleDealer {
		return nil, apperrors.Authorization("only dealers can advance trips")
	}

	id, err := uuid.Parse(tripID)
	if err != nil {
		return nil, apperrors.Validation("trip id is not a valid UUID")
	}

	t, err := uc.tripRepo.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.DealerID != actor.UserID {
		return nil, apperrors.Authorization("trip belongs to another dealer")
	}

	next := models.NextTripStatus(t.Status)
	if next == "" {
		return nil, apperrors.InvalidTransition("trip is already delivered")
	}
	if target != next {
		return nil, apperrors.InvalidTransition("trip stages cannot be skipped or reversed")
	}

	prev := t.Status
	if target == models.TripStatusDelivered {
		if err := uc.deliver(ctx, t, prev); err != nil {
			return nil, err
		}
	} else {
		if err := uc.tripRepo.AdvanceStatus(ctx, t, prev, target); err != nil {
			return nil, err
		}
		t.Status = target
	}

	uc.publish(ctx, t)

	return t, nil
}

// deliver computes the CO2 savings and applies the terminal
// transition. The repository's conditional update keeps the
// computation and truck release from landing twice.
func (uc *tripUC) deliver(ctx context.Context, t *models.Trip, prev models.TripStatus) error {
	distance := 0.0
	if shipment, err := uc.tripRepo.GetShipment(ctx, t.ShipmentID); err == nil {
		distance = shipment.Distance
	} else {
		logger.Warn("delivering trip without shipment distance",
			logger.String("trip_id", t.ID.String()),
			logger.Err(err))
	}

	utilization := defaultUtilization
	if booking, err := uc.tripRepo.GetBooking(ctx, t.BookingID); err == nil {
		utilization = booking.Utilization
	} else {
		logger.Warn("delivering trip without booking utilization",
			logger.String("trip_id", t.ID.String()),
			logger.Err(err))
	}

	co2Saved := EstimateCO2Saved(distance, utilization)
	if err := uc.tripRepo.MarkDelivered(ctx, t, prev, co2Saved); err != nil {
		return err
	}

	t.Status = models.TripStatusDelivered
	t.CO2Saved = co2Saved
	return nil
}

// GetTrip loads a trip, restricted to its two parties
func (uc *tripUC) GetTrip(ctx context.Context, actor models.Actor, tripID string) (*models.Trip, error) {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return nil, apperrors.Validation("trip id is not a valid UUID")
	}

	t, err := uc.tripRepo.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.DealerID != actor.UserID && t.WarehouseID != actor.UserID {
		return nil, apperrors.Authorization("trip belongs to other parties")
	}
	return t, nil
}

// ListForActor returns the trips visible to the actor
func (uc *tripUC) ListForActor(ctx context.Context, actor models.Actor) ([]models.Trip, error) {
	switch actor.Role {
	case models.RoleWarehouse:
		return uc.tripRepo.ListByWarehouse(ctx, actor.UserID)
	case models.RoleDealer:
		return uc.tripRepo.ListByDealer(ctx, actor.UserID)
	}
	return nil, apperrors.Authorization("unknown role")
}

func (uc *tripUC) publish(ctx context.Context, t *models.Trip) {
	event := &models.TripStatusEvent{
		TripID:      t.ID,
		ShipmentID:  t.ShipmentID,
		WarehouseID: t.WarehouseID,
		DealerID:    t.DealerID,
		Status:      t.Status,
		CO2Saved:    t.CO2Saved,
		Timestamp:   time.Now(),
	}
	if err := uc.tripGW.PublishTripStatusEvent(ctx, event); err != nil {
		logger.Warn("failed to publish trip status event",
			logger.String("trip_id", t.ID.String()),
			logger.String("status", string(t.Status)),
			logger.Err(err))
	}
}
