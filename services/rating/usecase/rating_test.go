package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/cargolink/cargolink/internal/pkg/errors"
	"github.com/cargolink/cargolink/internal/pkg/models"
	"github.com/cargolink/cargolink/services/rating/mocks"
)

func deliveredTrip() *models.Trip {
	return &models.Trip{
		ID:          uuid.New(),
		ShipmentID:  uuid.New(),
		BookingID:   uuid.New(),
		DealerID:    uuid.New(),
		WarehouseID: uuid.New(),
		TruckID:     uuid.New(),
		Status:      models.TripStatusDelivered,
	}
}

func TestSubmit_WarehouseRatesDealer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRatingRepo(ctrl)
	mockGW := mocks.NewMockRatingGW(ctrl)
	uc := NewRatingUC(&models.Config{}, mockRepo, mockGW)

	tr := deliveredTrip()

	mockRepo.EXPECT().
		GetTrip(gomock.Any(), tr.ID).
		Return(tr, nil)
	mockRepo.EXPECT().
		Exists(gomock.Any(), tr.ID, tr.WarehouseID).
		Return(false, nil)
	mockRepo.EXPECT().
		CreateRating(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Rating) error {
			assert.Equal(t, tr.WarehouseID, r.From)
			assert.Equal(t, tr.DealerID, r.To)
			assert.Equal(t, 5, r.Score)
			return nil
		})
	mockRepo.EXPECT().
		InvalidateAggregate(gomock.Any(), tr.DealerID)
	mockGW.EXPECT().
		PublishRatingEvent(gomock.Any(), gomock.Any()).
		Return(nil)

	actor := models.Actor{UserID: tr.WarehouseID, Role: models.RoleWarehouse}
	created, err := uc.Submit(context.Background(), actor, &models.RatingSubmitRequest{
		TripID:  tr.ID.String(),
		Score:   5,
		Comment: "on time, careful handling",
	})

	require.NoError(t, err)
	assert.Equal(t, tr.DealerID, created.To)
}

func TestSubmit_DealerRatesWarehouse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRatingRepo(ctrl)
	mockGW := mocks.NewMockRatingGW(ctrl)
	uc := NewRatingUC(&models.Config{}, mockRepo, mockGW)

	tr := deliveredTrip()

	mockRepo.EXPECT().
		GetTrip(gomock.Any(), tr.ID).
		Return(tr, nil)
	mockRepo.EXPECT().
		Exists(gomock.Any(), tr.ID, tr.DealerID).
		Return(false, nil)
	mockRepo.EXPECT().
		CreateRating(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Rating) error {
			assert.Equal(t, tr.DealerID, r.From)
			assert.Equal(t, tr.WarehouseID, r.To)
			return nil
		})
	mockRepo.EXPECT().
		InvalidateAggregate(gomock.Any(), tr.WarehouseID)
	mockGW.EXPECT().
		PublishRatingEvent(gomock.Any(), gomock.Any()).
		Return(nil)

	actor := models.Actor{UserID: tr.DealerID, Role: models.RoleDealer}
	_, err := uc.Submit(context.Background(), actor, &models.RatingSubmitRequest{
		TripID: tr.ID.String(),
		Score:  4,
	})

	assert.NoError(t, err)
}

func TestSubmit_UndeliveredTripNotEligible(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRatingRepo(ctrl)
	uc := NewRatingUC(&models.Config{}, mockRepo, mocks.NewMockRatingGW(ctrl))

	tr := deliveredTrip()
	tr.Status = models.TripStatusInTransit

	mockRepo.EXPECT().
		GetTrip(gomock.Any(), tr.ID).
		Return(tr, nil)

	actor := models.Actor{UserID: tr.WarehouseID, Role: models.RoleWarehouse}
	_, err := uc.Submit(context.Background(), actor, &models.RatingSubmitRequest{
		TripID: tr.ID.String(),
		Score:  5,
	})

	assert.True(t, apperrors.Is(err, apperrors.KindConflict))
}

func TestSubmit_DuplicateRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRatingRepo(ctrl)
	uc := NewRatingUC(&models.Config{}, mockRepo, mocks.NewMockRatingGW(ctrl))

	tr := deliveredTrip()

	mockRepo.EXPECT().
		GetTrip(gomock.Any(), tr.ID).
		Return(tr, nil)
	mockRepo.EXPECT().
		Exists(gomock.Any(), tr.ID, tr.WarehouseID).
		Return(true, nil)

	actor := models.Actor{UserID: tr.WarehouseID, Role: models.RoleWarehouse}
	_, err := uc.Submit(context.Background(), actor, &models.RatingSubmitRequest{
		TripID: tr.ID.String(),
		Score:  3,
	})

	assert.True(t, apperrors.Is(err, apperrors.KindConflict))
}

func TestSubmit_RaceLoserGetsConflictFromStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRatingRepo(ctrl)
	uc := NewRatingUC(&models.Config{}, mockRepo, mocks.NewMockRatingGW(ctrl))

	tr := deliveredTrip()

	mockRepo.EXPECT().
		GetTrip(gomock.Any(), tr.ID).
		Return(tr, nil)
	// pre-check passes but the unique index catches the race
	mockRepo.EXPECT().
		Exists(gomock.Any(), tr.ID, tr.WarehouseID).
		Return(false, nil)
	mockRepo.EXPECT().
		CreateRating(gomock.Any(), gomock.Any()).
		Return(apperrors.Conflict("trip already rated"))

	actor := models.Actor{UserID: tr.WarehouseID, Role: models.RoleWarehouse}
	_, err := uc.Submit(context.Background(), actor, &models.RatingSubmitRequest{
		TripID: tr.ID.String(),
		Score:  4,
	})

	assert.True(t, apperrors.Is(err, apperrors.KindConflict))
}

func TestSubmit_StrangerForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRatingRepo(ctrl)
	uc := NewRatingUC(&models.Config{}, mockRepo, mocks.NewMockRatingGW(ctrl))

	tr := deliveredTrip()
	mockRepo.EXPECT().
		GetTrip(gomock.Any(), tr.ID).
		Return(tr, nil)

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleWarehouse}
	_, err := uc.Submit(context.Background(), actor, &models.RatingSubmitRequest{
		TripID: tr.ID.String(),
		Score:  5,
	})

	assert.True(t, apperrors.Is(err, apperrors.KindAuthorization))
}

func TestSubmit_ScoreValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewRatingUC(&models.Config{}, mocks.NewMockRatingRepo(ctrl), mocks.NewMockRatingGW(ctrl))
	actor := models.Actor{UserID: uuid.New(), Role: models.RoleWarehouse}

	for _, score := range []int{0, -1, 6, 100} {
		_, err := uc.Submit(context.Background(), actor, &models.RatingSubmitRequest{
			TripID: uuid.New().String(),
			Score:  score,
		})
		assert.True(t, apperrors.Is(err, apperrors.KindValidation), "score %d", score)
	}
}

func TestExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRatingRepo(ctrl)
	uc := NewRatingUC(&models.Config{}, mockRepo, mocks.NewMockRatingGW(ctrl))

	tripID := uuid.New()
	actor := models.Actor{UserID: uuid.New(), Role: models.RoleDealer}

	mockRepo.EXPECT().
		Exists(gomock.Any(), tripID, actor.UserID).
		Return(true, nil)

	exists, err := uc.Exists(context.Background(), actor, tripID.String())

	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestListForUser_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewRatingUC(&models.Config{}, mocks.NewMockRatingRepo(ctrl), mocks.NewMockRatingGW(ctrl))

	_, err := uc.ListForUser(context.Background(), "not-a-uuid")

	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}
