package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargolink/cargolink/internal/pkg/constants"
	apperrors "github.com/cargolink/cargolink/internal/pkg/errors"
	"github.com/cargolink/cargolink/internal/pkg/models"
	"github.com/cargolink/cargolink/services/booking/mocks"
)

func float64Ptr(v float64) *float64 { return &v }

func validCreateRequest(shipmentID, truckID uuid.UUID) *models.BookingCreateRequest {
	return &models.BookingCreateRequest{
		ShipmentID:  shipmentID.String(),
		TruckID:     truckID.String(),
		Distance:    float64Ptr(100),
		Utilization: float64Ptr(50),
		FinalPrice:  float64Ptr(3850),
	}
}

func TestCreateRequest_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	mockGW := mocks.NewMockBookingGW(ctrl)
	uc := NewBookingUC(&models.Config{}, mockRepo, mockGW)

	warehouseID := uuid.New()
	dealerID := uuid.New()
	shipmentID := uuid.New()
	truckID := uuid.New()

	mockRepo.EXPECT().
		GetShipment(gomock.Any(), shipmentID).
		Return(&models.Shipment{ID: shipmentID, WarehouseID: warehouseID}, nil)
	mockRepo.EXPECT().
		GetTruck(gomock.Any(), truckID).
		Return(&models.Truck{ID: truckID, DealerID: dealerID, IsAvailable: true}, nil)
	mockRepo.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *models.Booking) error {
			assert.Equal(t, models.BookingStatusPending, b.Status)
			assert.Equal(t, int64(3850), b.FinalPrice)
			assert.Equal(t, 50.0, b.Utilization)
			assert.Equal(t, dealerID, b.DealerID)
			return nil
		})
	mockGW.EXPECT().
		PublishBookingEvent(gomock.Any(), constants.TopicBookingRequested, gomock.Any()).
		Return(nil)

	actor := models.Actor{UserID: warehouseID, Role: models.RoleWarehouse}
	created, err := uc.CreateRequest(context.Background(), actor, validCreateRequest(shipmentID, truckID))

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, created.Status)
	assert.Equal(t, shipmentID, created.ShipmentID)
}

func TestCreateRequest_PublishFailureDoesNotFailBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	mockGW := mocks.NewMockBookingGW(ctrl)
	uc := NewBookingUC(&models.Config{}, mockRepo, mockGW)

	warehouseID := uuid.New()
	shipmentID := uuid.New()
	truckID := uuid.New()

	mockRepo.EXPECT().
		GetShipment(gomock.Any(), shipmentID).
		Return(&models.Shipment{ID: shipmentID, WarehouseID: warehouseID}, nil)
	mockRepo.EXPECT().
		GetTruck(gomock.Any(), truckID).
		Return(&models.Truck{ID: truckID, DealerID: uuid.New(), IsAvailable: true}, nil)
	mockRepo.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		Return(nil)
	mockGW.EXPECT().
		PublishBookingEvent(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	actor := models.Actor{UserID: warehouseID, Role: models.RoleWarehouse}
	created, err := uc.CreateRequest(context.Background(), actor, validCreateRequest(shipmentID, truckID))

	assert.NoError(t, err)
	assert.NotNil(t, created)
}

func TestCreateRequest_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	mockGW := mocks.NewMockBookingGW(ctrl)
	uc := NewBookingUC(&models.Config{}, mockRepo, mockGW)

	shipmentID := uuid.New()
	truckID := uuid.New()
	actor := models.Actor{UserID: uuid.New(), Role: models.RoleWarehouse}

	tests := []struct {
		name   string
		mutate func(*models.BookingCreateRequest)
	}{
		{"missing final price", func(r *models.BookingCreateRequest) { r.FinalPrice = nil }},
		{"missing utilization", func(r *models.BookingCreateRequest) { r.Utilization = nil }},
		{"missing distance", func(r *models.BookingCreateRequest) { r.Distance = nil }},
		{"negative price", func(r *models.BookingCreateRequest) { r.FinalPrice = float64Ptr(-1) }},
		{"utilization above 100", func(r *models.BookingCreateRequest) { r.Utilization = float64Ptr(120) }},
		{"bad shipment id", func(r *models.BookingCreateRequest) { r.ShipmentID = "nope" }},
		{"bad truck id", func(r *models.BookingCreateRequest) { r.TruckID = "nope" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest(shipmentID, truckID)
			tt.mutate(req)
			_, err := uc.CreateRequest(context.Background(), actor, req)
			assert.True(t, apperrors.Is(err, apperrors.KindValidation), "got %v", err)
		})
	}
}

func TestCreateRequest_DealerForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewBookingUC(&models.Config{}, mocks.NewMockBookingRepo(ctrl), mocks.NewMockBookingGW(ctrl))

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleDealer}
	_, err := uc.CreateRequest(context.Background(), actor, validCreateRequest(uuid.New(), uuid.New()))

	assert.True(t, apperrors.Is(err, apperrors.KindAuthorization))
}

func TestCreateRequest_UnavailableTruck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	uc := NewBookingUC(&models.Config{}, mockRepo, mocks.NewMockBookingGW(ctrl))

	warehouseID := uuid.New()
	shipmentID := uuid.New()
	truckID := uuid.New()

	mockRepo.EXPECT().
		GetShipment(gomock.Any(), shipmentID).
		Return(&models.Shipment{ID: shipmentID, WarehouseID: warehouseID}, nil)
	mockRepo.EXPECT().
		GetTruck(gomock.Any(), truckID).
		Return(&models.Truck{ID: truckID, IsAvailable: false}, nil)

	actor := models.Actor{UserID: warehouseID, Role: models.RoleWarehouse}
	_, err := uc.CreateRequest(context.Background(), actor, validCreateRequest(shipmentID, truckID))

	assert.True(t, apperrors.Is(err, apperrors.KindConflict))
}

func TestResolve_Approve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	mockGW := mocks.NewMockBookingGW(ctrl)
	uc := NewBookingUC(&models.Config{}, mockRepo, mockGW)

	dealerID := uuid.New()
	bookingID := uuid.New()
	tripID := uuid.New()

	pending := &models.Booking{
		ID:       bookingID,
		DealerID: dealerID,
		Status:   models.BookingStatusPending,
	}
	trip := &models.Trip{ID: tripID, BookingID: bookingID, Status: models.TripStatusAssigned}

	mockRepo.EXPECT().
		GetBooking(gomock.Any(), bookingID).
		Return(pending, nil)
	mockRepo.EXPECT().
		ApproveBooking(gomock.Any(), pending).
		Return(trip, nil)
	mockGW.EXPECT().
		PublishBookingEvent(gomock.Any(), constants.TopicBookingApproved, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, event *models.BookingEvent) error {
			require.NotNil(t, event.TripID)
			assert.Equal(t, tripID, *event.TripID)
			assert.Equal(t, models.BookingStatusApproved, event.Status)
			return nil
		})

	actor := models.Actor{UserID: dealerID, Role: models.RoleDealer}
	got, err := uc.Resolve(context.Background(), actor, bookingID.String(), models.BookingActionApprove)

	require.NoError(t, err)
	assert.Equal(t, tripID, got.ID)
	assert.Equal(t, models.TripStatusAssigned, got.Status)
}

func TestResolve_Reject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	mockGW := mocks.NewMockBookingGW(ctrl)
	uc := NewBookingUC(&models.Config{}, mockRepo, mockGW)

	dealerID := uuid.New()
	bookingID := uuid.New()

	pending := &models.Booking{ID: bookingID, DealerID: dealerID, Status: models.BookingStatusPending}

	mockRepo.EXPECT().
		GetBooking(gomock.Any(), bookingID).
		Return(pending, nil)
	mockRepo.EXPECT().
		RejectBooking(gomock.Any(), pending).
		Return(nil)
	mockGW.EXPECT().
		PublishBookingEvent(gomock.Any(), constants.TopicBookingRejected, gomock.Any()).
		Return(nil)

	actor := models.Actor{UserID: dealerID, Role: models.RoleDealer}
	trip, err := uc.Resolve(context.Background(), actor, bookingID.String(), models.BookingActionReject)

	assert.NoError(t, err)
	assert.Nil(t, trip)
}

func TestResolve_AlreadyResolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	uc := NewBookingUC(&models.Config{}, mockRepo, mocks.NewMockBookingGW(ctrl))

	dealerID := uuid.New()
	bookingID := uuid.New()

	mockRepo.EXPECT().
		GetBooking(gomock.Any(), bookingID).
		Return(&models.Booking{ID: bookingID, DealerID: dealerID, Status: models.BookingStatusApproved}, nil)

	actor := models.Actor{UserID: dealerID, Role: models.RoleDealer}
	_, err := uc.Resolve(context.Background(), actor, bookingID.String(), models.BookingActionApprove)

	assert.True(t, apperrors.Is(err, apperrors.KindConflict))
}

func TestResolve_LostRaceSurfacesConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	uc := NewBookingUC(&models.Config{}, mockRepo, mocks.NewMockBookingGW(ctrl))

	dealerID := uuid.New()
	bookingID := uuid.New()
	pending := &models.Booking{ID: bookingID, DealerID: dealerID, Status: models.BookingStatusPending}

	mockRepo.EXPECT().
		GetBooking(gomock.Any(), bookingID).
		Return(pending, nil)
	// the conditional update lost against a concurrent resolve
	mockRepo.EXPECT().
		ApproveBooking(gomock.Any(), pending).
		Return(nil, apperrors.Conflict("booking is already resolved"))

	actor := models.Actor{UserID: dealerID, Role: models.RoleDealer}
	trip, err := uc.Resolve(context.Background(), actor, bookingID.String(), models.BookingActionApprove)

	assert.Nil(t, trip)
	assert.True(t, apperrors.Is(err, apperrors.KindConflict))
}

func TestResolve_WrongDealer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	uc := NewBookingUC(&models.Config{}, mockRepo, mocks.NewMockBookingGW(ctrl))

	bookingID := uuid.New()
	mockRepo.EXPECT().
		GetBooking(gomock.Any(), bookingID).
		Return(&models.Booking{ID: bookingID, DealerID: uuid.New(), Status: models.BookingStatusPending}, nil)

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleDealer}
	_, err := uc.Resolve(context.Background(), actor, bookingID.String(), models.BookingActionApprove)

	assert.True(t, apperrors.Is(err, apperrors.KindAuthorization))
}

func TestResolve_InvalidAction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewBookingUC(&models.Config{}, mocks.NewMockBookingRepo(ctrl), mocks.NewMockBookingGW(ctrl))

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleDealer}
	_, err := uc.Resolve(context.Background(), actor, uuid.New().String(), "cancel")

	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestResolve_WarehouseForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewBookingUC(&models.Config{}, mocks.NewMockBookingRepo(ctrl), mocks.NewMockBookingGW(ctrl))

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleWarehouse}
	_, err := uc.Resolve(context.Background(), actor, uuid.New().String(), models.BookingActionApprove)

	assert.True(t, apperrors.Is(err, apperrors.KindAuthorization))
}

func TestListForActor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	uc := NewBookingUC(&models.Config{}, mockRepo, mocks.NewMockBookingGW(ctrl))

	warehouseID := uuid.New()
	dealerID := uuid.New()

	mockRepo.EXPECT().
		ListByWarehouse(gomock.Any(), warehouseID).
		Return([]models.Booking{{ID: uuid.New()}}, nil)
	mockRepo.EXPECT().
		ListByDealer(gomock.Any(), dealerID).
		Return([]models.Booking{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	warehouseBookings, err := uc.ListForActor(context.Background(), models.Actor{UserID: warehouseID, Role: models.RoleWarehouse})
	assert.NoError(t, err)
	assert.Len(t, warehouseBookings, 1)

	dealerBookings, err := uc.ListForActor(context.Background(), models.Actor{UserID: dealerID, Role: models.RoleDealer})
	assert.NoError(t, err)
	assert.Len(t, dealerBookings, 2)
}
