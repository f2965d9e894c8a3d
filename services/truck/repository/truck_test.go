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

func setupTruckRepo(t *testing.T) (*TruckRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewTruckRepository(&models.Config{}, sqlx.NewDb(db, "pgx")), mock
}

func TestCreateTruck_Insert(t *testing.T) {
	repo, mock := setupTruckRepo(t)

	mock.ExpectExec(`INSERT INTO trucks`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	now := time.Now()
	err := repo.CreateTruck(context.Background(), &models.Truck{
		ID:          uuid.New(),
		DealerID:    uuid.New(),
		TruckType:   models.TruckTypeContainer,
		MaxWeight:   5000,
		MaxVolume:   40,
		CostPerKm:   22,
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetAvailability_Flip(t *testing.T) {
	repo, mock := setupTruckRepo(t)

	truckID := uuid.New()
	mock.ExpectExec(`UPDATE trucks SET is_available`).
		WithArgs(false, sqlmock.AnyArg(), truckID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetAvailability(context.Background(), truckID, false)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetAvailability_UnknownTruck(t *testing.T) {
	repo, mock := setupTruckRepo(t)

	mock.ExpectExec(`UPDATE trucks SET is_available`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetAvailability(context.Background(), uuid.New(), true)

	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestListByDealer_Fleet(t *testing.T) {
	repo, mock := setupTruckRepo(t)

	dealerID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "dealer_id", "truck_type", "max_weight", "max_volume",
		"cost_per_km", "is_available", "created_at", "updated_at",
	}).
		AddRow(uuid.New(), dealerID, "Container", 5000.0, 40.0, 22.0, true, now, now).
		AddRow(uuid.New(), dealerID, "Pickup", 1200.0, 8.0, 15.0, false, now, now)

	mock.ExpectQuery(`FROM trucks`).
		WithArgs(dealerID).
		WillReturnRows(rows)

	trucks, err := repo.ListByDealer(context.Background(), dealerID)

	require.NoError(t, err)
	require.Len(t, trucks, 2)
	assert.Equal(t, models.TruckTypeContainer, trucks[0].TruckType)
	assert.False(t, trucks[1].IsAvailable)
}

func TestGetDealerStats_Aggregate(t *testing.T) {
	repo, mock := setupTruckRepo(t)

	dealerID := uuid.New()
	rows := sqlmock.NewRows([]string{"trucks", "requests", "trips"}).AddRow(4, 2, 1)

	mock.ExpectQuery(`FROM trucks WHERE dealer_id`).
		WithArgs(dealerID).
		WillReturnRows(rows)

	stats, err := repo.GetDealerStats(context.Background(), dealerID)

	require.NoError(t, err)
	assert.Equal(t, 4, stats.Trucks)
	assert.Equal(t, 2, stats.PendingRequests)
	assert.Equal(t, 1, stats.ActiveTrips)
}
