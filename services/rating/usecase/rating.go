package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/cargolink/cargolink/internal/pkg/errors"
	"github.com/cargolink/cargolink/internal/pkg/logger"
	"github.com/cargolink/cargolink/internal/pkg/models"
	"github.com/cargolink/cargolink/services/rating"
)

// ratingUC implements the rating.RatingUC interface
type ratingUC struct {
	cfg        *models.Config
	ratingRepo rating.RatingRepo
	ratingGW   rating.RatingGW
}

// NewRatingUC creates a new rating ledger use case
func NewRatingUC(cfg *models.Config, ratingRepo rating.RatingRepo, ratingGW rating.RatingGW) rating.RatingUC {
	return &ratingUC{
		cfg:        cfg,
		ratingRepo: ratingRepo,
		ratingGW:   ratingGW,
	}
}

// Submit records a rating for a delivered trip. The pre-insert
// duplicate check gives a friendly error on the common path; the
// unique index closes the race between two concurrent submissions.
func (uc *ratingUC) Submit(ctx context.Context, actor models.Actor, req *models.RatingSubmitRequest) (*models.Rating, error) {
	if req.Score < 1 || req.Score > 5 {
		return nil, apperrors.Validation("score must be between 1 and 5")
	}

	tripID, err := uuid.Parse(req.TripID)
	if err != nil {
		return nil, apperrors.Validation("trip id is not a valid UUID")
	}

	trip, err := uc.ratingRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	to, err := ratedParty(actor, trip)
	if err != nil {
		return nil, err
	}

	if trip.Status != models.TripStatusDelivered {
		return nil, apperrors.Conflict("trip is not eligible for rating")
	}

	exists, err := uc.ratingRepo.Exists(ctx, trip.ID, actor.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("trip already rated")
	}

	r := &models.Rating{
		ID:        uuid.New(),
		TripID:    trip.ID,
		From:      actor.UserID,
		To:        to,
		Score:     req.Score,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	if err := uc.ratingRepo.CreateRating(ctx, r); err != nil {
		return nil, err
	}

	uc.ratingRepo.InvalidateAggregate(ctx, to)

	event := &models.RatingEvent{
		RatingID:  r.ID,
		TripID:    r.TripID,
		From:      r.From,
		To:        r.To,
		Score:     r.Score,
		Timestamp: time.Now(),
	}
	if err := uc.ratingGW.PublishRatingEvent(ctx, event); err != nil {
		logger.Warn("failed to publish rating event",
			logger.String("rating_id", r.ID.String()),
			logger.Err(err))
	}

	return r, nil
}

// Exists reports whether the actor already rated the trip
func (uc *ratingUC) Exists(ctx context.Context, actor models.Actor, tripID string) (bool, error) {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return false, apperrors.Validation("trip id is not a valid UUID")
	}
	return uc.ratingRepo.Exists(ctx, id, actor.UserID)
}

// ListForUser returns the ratings received by a user
func (uc *ratingUC) ListForUser(ctx context.Context, userID string) ([]models.Rating, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.Validation("user id is not a valid UUID")
	}
	return uc.ratingRepo.ListForUser(ctx, id)
}

// ratedParty derives who receives the rating from the rater's side of
// the trip. Only the trip's two parties may rate it.
func ratedParty(actor models.Actor, trip *models.Trip) (uuid.UUID, error) {
	switch {
	case actor.Role == models.RoleWarehouse && actor.UserID == trip.WarehouseID:
		return trip.DealerID, nil
	case actor.Role == models.RoleDealer && actor.UserID == trip.DealerID:
		return trip.WarehouseID, nil
	}
	return uuid.Nil, apperrors.Authorization("only the trip's parties can rate it")
}
