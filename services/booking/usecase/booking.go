package usecase

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/cargolink/cargolink/internal/pkg/constants"
	apperrors "github.com/cargolink/cargolink/internal/pkg/errors"
	"github.com/cargolink/cargolink/internal/pkg/logger"
	"github.com/cargolink/cargolink/internal/pkg/models"
	"github.com/cargolink/cargolink/services/booking"
)

// bookingUC implements the booking.BookingUC interface
type bookingUC struct {
	cfg         *models.Config
	bookingRepo booking.BookingRepo
	bookingGW   booking.BookingGW
}

// NewBookingUC creates a new booking lifecycle use case
func NewBookingUC(cfg *models.Config, bookingRepo booking.BookingRepo, bookingGW booking.BookingGW) booking.BookingUC {
	return &bookingUC{
		cfg:         cfg,
		bookingRepo: bookingRepo,
		bookingGW:   bookingGW,
	}
}

// CreateRequest creates a pending booking at the quoted price. The
// price arrives with the request because it was quoted by the matcher
// the warehouse accepted; it is never recomputed here.
func (uc *bookingUC) CreateRequest(ctx context.Context, actor models.Actor, req *models.BookingCreateRequest) (*models.Booking, error) {
	if actor.Role != models.RoleWarehouse {
		return nil, apperrors.Authorization("only warehouses can request trucks")
	}

	shipmentID, err := uuid.Parse(req.ShipmentID)
	if err != nil {
		return nil, apperrors.Validation("shipment id is not a valid UUID")
	}
	truckID, err := uuid.Parse(req.TruckID)
	if err != nil {
		return nil, apperrors.Validation("truck id is not a valid UUID")
	}
	if err := validateNumbers(req); err != nil {
		return nil, err
	}

	shipment, err := uc.bookingRepo.GetShipment(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	if shipment.WarehouseID != actor.UserID {
		return nil, apperrors.Authorization("only the owning warehouse can request a truck")
	}

	truck, err := uc.bookingRepo.GetTruck(ctx, truckID)
	if err != nil {
		return nil, err
	}
	if !truck.IsAvailable {
		return nil, apperrors.Conflict("truck is no longer available")
	}

	now := time.Now()
	b := &models.Booking{
		ID:          uuid.New(),
		ShipmentID:  shipment.ID,
		WarehouseID: shipment.WarehouseID,
		DealerID:    truck.DealerID,
		TruckID:     truck.ID,
		Utilization: *req.Utilization,
		FinalPrice:  int64(math.Round(*req.FinalPrice)),
		Status:      models.BookingStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.bookingRepo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.publish(ctx, constants.TopicBookingRequested, b, nil)

	return b, nil
}

// Resolve applies a dealer decision on a pending booking. A booking
// already resolved rejects further attempts with a conflict; the
// storage layer enforces the same rule under concurrency.
func (uc *bookingUC) Resolve(ctx context.Context, actor models.Actor, bookingID string, action models.BookingAction) (*models.Trip, error) {
	if action != models.BookingActionApprove && action != models.BookingActionReject {
		return nil, apperrors.Validation("action must be approve or reject")
	}
	if actor.Role != models.RoleDealer {
		return nil, apperrors.Authorization("only dealers can resolve bookings")
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, apperrors.Validation("booking id is not a valid UUID")
	}

	b, err := uc.bookingRepo.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.DealerID != actor.UserID {
		return nil, apperrors.Authorization("booking belongs to another dealer")
	}
	if b.Status != models.BookingStatusPending {
		return nil, apperrors.Conflict("booking is already resolved")
	}

	if action == models.BookingActionReject {
		if err := uc.bookingRepo.RejectBooking(ctx, b); err != nil {
			return nil, err
		}
		b.Status = models.BookingStatusRejected
		uc.publish(ctx, constants.TopicBookingRejected, b, nil)
		return nil, nil
	}

	trip, err := uc.bookingRepo.ApproveBooking(ctx, b)
	if err != nil {
		return nil, err
	}
	b.Status = models.BookingStatusApproved
	uc.publish(ctx, constants.TopicBookingApproved, b, &trip.ID)

	return trip, nil
}

// ListForActor returns the bookings visible to the actor
func (uc *bookingUC) ListForActor(ctx context.Context, actor models.Actor) ([]models.Booking, error) {
	switch actor.Role {
	case models.RoleWarehouse:
		return uc.bookingRepo.ListByWarehouse(ctx, actor.UserID)
	case models.RoleDealer:
		return uc.bookingRepo.ListByDealer(ctx, actor.UserID)
	}
	return nil, apperrors.Authorization("unknown role")
}

func (uc *bookingUC) publish(ctx context.Context, topic string, b *models.Booking, tripID *uuid.UUID) {
	event := &models.BookingEvent{
		BookingID:   b.ID,
		ShipmentID:  b.ShipmentID,
		WarehouseID: b.WarehouseID,
		DealerID:    b.DealerID,
		TruckID:     b.TruckID,
		TripID:      tripID,
		Status:      b.Status,
		Timestamp:   time.Now(),
	}
	if err := uc.bookingGW.PublishBookingEvent(ctx, topic, event); err != nil {
		logger.Warn("failed to publish booking event",
			logger.String("topic", topic),
			logger.String("booking_id", b.ID.String()),
			logger.Err(err))
	}
}

func validateNumbers(req *models.BookingCreateRequest) error {
	if req.Distance == nil || req.Utilization == nil || req.FinalPrice == nil {
		return apperrors.Validation("distance, utilization and final_price are required")
	}
	for _, v := range []float64{*req.Distance, *req.Utilization, *req.FinalPrice} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return apperrors.Validation("numeric fields must be finite and non-negative")
		}
	}
	if *req.Utilization > 100 {
		return apperrors.Validation("utilization must be between 0 and 100")
	}
	return nil
}
