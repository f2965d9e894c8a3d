package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargolink/cargolink/internal/pkg/constants"
	apperrors "github.com/cargolink/cargolink/internal/pkg/errors"
	"github.com/cargolink/cargolink/internal/pkg/models"
	"github.com/cargolink/cargolink/services/notification/mocks"
)

func setupNotificationUC(t *testing.T) (*notificationUC, *mocks.MockNotificationRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockNotificationRepo(ctrl)
	uc := NewNotificationUC(&models.Config{}, repo).(*notificationUC)
	return uc, repo
}

func bookingEvent() *models.BookingEvent {
	return &models.BookingEvent{
		BookingID:   uuid.New(),
		ShipmentID:  uuid.New(),
		WarehouseID: uuid.New(),
		DealerID:    uuid.New(),
		TruckID:     uuid.New(),
		Status:      models.BookingStatusPending,
		Timestamp:   time.Now(),
	}
}

func TestRecordBookingEvent_RequestGoesToDealer(t *testing.T) {
	uc, repo := setupNotificationUC(t)
	event := bookingEvent()

	repo.EXPECT().
		CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Notification) error {
			assert.Equal(t, event.DealerID, n.UserID)
			assert.Equal(t, models.NotificationBookingRequest, n.Type)
			assert.Equal(t, event.BookingID, n.RelatedID)
			assert.False(t, n.IsRead)
			return nil
		})

	err := uc.RecordBookingEvent(context.Background(), constants.TopicBookingRequested, event)

	assert.NoError(t, err)
}

func TestRecordBookingEvent_ApprovalGoesToWarehouse(t *testing.T) {
	uc, repo := setupNotificationUC(t)
	event := bookingEvent()
	tripID := uuid.New()
	event.TripID = &tripID
	event.Status = models.BookingStatusApproved

	repo.EXPECT().
		CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Notification) error {
			assert.Equal(t, event.WarehouseID, n.UserID)
			assert.Equal(t, models.NotificationBookingApproved, n.Type)
			assert.Equal(t, tripID, n.RelatedID)
			return nil
		})

	err := uc.RecordBookingEvent(context.Background(), constants.TopicBookingApproved, event)

	assert.NoError(t, err)
}

func TestRecordBookingEvent_UnknownTopic(t *testing.T) {
	uc, _ := setupNotificationUC(t)

	err := uc.RecordBookingEvent(context.Background(), "booking.archived", bookingEvent())

	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestRecordTripStatus_UnderscoresBecomeSpaces(t *testing.T) {
	uc, repo := setupNotificationUC(t)
	event := &models.TripStatusEvent{
		TripID:      uuid.New(),
		ShipmentID:  uuid.New(),
		WarehouseID: uuid.New(),
		DealerID:    uuid.New(),
		Status:      models.TripStatusInTransit,
		Timestamp:   time.Now(),
	}

	repo.EXPECT().
		CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Notification) error {
			assert.Equal(t, event.WarehouseID, n.UserID)
			assert.Equal(t, models.NotificationShipmentUpdate, n.Type)
			assert.Equal(t, "shipment status updated to in transit", n.Message)
			return nil
		})

	err := uc.RecordTripStatus(context.Background(), event)

	assert.NoError(t, err)
}

func TestList_CappedFeed(t *testing.T) {
	uc, repo := setupNotificationUC(t)
	actor := models.Actor{UserID: uuid.New(), Role: models.RoleDealer}

	repo.EXPECT().
		ListForUser(gomock.Any(), actor.UserID, 30).
		Return([]models.Notification{{ID: uuid.New(), UserID: actor.UserID}}, nil)

	notifications, err := uc.List(context.Background(), actor)

	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}

func TestMarkAllRead(t *testing.T) {
	uc, repo := setupNotificationUC(t)
	actor := models.Actor{UserID: uuid.New(), Role: models.RoleWarehouse}

	repo.EXPECT().MarkAllRead(gomock.Any(), actor.UserID).Return(nil)

	assert.NoError(t, uc.MarkAllRead(context.Background(), actor))
}
