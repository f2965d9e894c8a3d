package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/cargolink/cargolink/internal/pkg/errors"
	"github.com/cargolink/cargolink/internal/pkg/models"
)

func setupTripRepo(t *testing.T) (*TripRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewTripRepository(&models.Config{}, sqlx.NewDb(db, "pgx")), mock
}

func storedTrip() *models.Trip {
	return &models.Trip{
		ID:          uuid.New(),
		ShipmentID:  uuid.New(),
		BookingID:   uuid.New(),
		DealerID:    uuid.New(),
		WarehouseID: uuid.New(),
		TruckID:     uuid.New(),
		Status:      models.TripStatusInTransit,
	}
}

func TestGetTrip(t *testing.T) {
	repo, mock := setupTripRepo(t)

	tripID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "shipment_id", "booking_id", "dealer_id", "warehouse_id",
		"truck_id", "status", "co2_saved", "created_at", "updated_at",
	}).AddRow(tripID, uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		uuid.New(), "assigned", 0, now, now)

	mock.ExpectQuery(`FROM trips`).
		WithArgs(tripID).
		WillReturnRows(rows)

	trip, err := repo.GetTrip(context.Background(), tripID)

	require.NoError(t, err)
	assert.Equal(t, tripID, trip.ID)
	assert.Equal(t, models.TripStatusAssigned, trip.Status)
}

func TestGetTrip_NotFound(t *testing.T) {
	repo, mock := setupTripRepo(t)

	tripID := uuid.New()
	mock.ExpectQuery(`FROM trips`).
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	trip, err := repo.GetTrip(context.Background(), tripID)

	assert.Nil(t, trip)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestAdvanceStatus(t *testing.T) {
	repo, mock := setupTripRepo(t)
	trip := storedTrip()
	trip.Status = models.TripStatusAssigned

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE trips SET status`).
		WithArgs(models.TripStatusPicked, sqlmock.AnyArg(), trip.ID, models.TripStatusAssigned).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE shipments SET status`).
		WithArgs(models.ShipmentStatusPicked, sqlmock.AnyArg(), trip.ShipmentID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.AdvanceStatus(context.Background(), trip, models.TripStatusAssigned, models.TripStatusPicked)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdvanceStatus_LostRace(t *testing.T) {
	repo, mock := setupTripRepo(t)
	trip := storedTrip()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE trips SET status`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.AdvanceStatus(context.Background(), trip, models.TripStatusAssigned, models.TripStatusPicked)

	assert.True(t, apperrors.Is(err, apperrors.KindConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkDelivered(t *testing.T) {
	repo, mock := setupTripRepo(t)
	trip := storedTrip()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE trips SET status`).
		WithArgs(models.TripStatusDelivered, int64(338), sqlmock.AnyArg(), trip.ID, models.TripStatusInTransit).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE trucks SET is_available = true`).
		WithArgs(sqlmock.AnyArg(), trip.TruckID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE shipments SET status`).
		WithArgs(models.ShipmentStatusDelivered, sqlmock.AnyArg(), trip.ShipmentID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.MarkDelivered(context.Background(), trip, models.TripStatusInTransit, 338)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkDelivered_AlreadyDeliveredDoesNotTouchTruck(t *testing.T) {
	repo, mock := setupTripRepo(t)
	trip := storedTrip()

	mock.ExpectBegin()
	// the conditional update misses: trip is no longer in_transit
	mock.ExpectExec(`UPDATE trips SET status`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.MarkDelivered(context.Background(), trip, models.TripStatusInTransit, 338)

	assert.True(t, apperrors.Is(err, apperrors.KindConflict))
	// no truck or shipment updates were expected; any would fail the mock
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByDealer(t *testing.T) {
	repo, mock := setupTripRepo(t)

	dealerID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "shipment_id", "booking_id", "dealer_id", "warehouse_id",
		"truck_id", "status", "co2_saved", "created_at", "updated_at",
	}).
		AddRow(uuid.New(), uuid.New(), uuid.New(), dealerID, uuid.New(), uuid.New(), "delivered", 338, now, now).
		AddRow(uuid.New(), uuid.New(), uuid.New(), dealerID, uuid.New(), uuid.New(), "assigned", 0, now, now)

	mock.ExpectQuery(`FROM trips`).
		WithArgs(dealerID).
		WillReturnRows(rows)

	trips, err := repo.ListByDealer(context.Background(), dealerID)

	assert.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, int64(338), trips[0].CO2Saved)
}
