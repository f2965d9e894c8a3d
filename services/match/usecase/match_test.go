package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/cargolink/cargolink/internal/pkg/errors"
	"github.com/cargolink/cargolink/internal/pkg/models"
	"github.com/cargolink/cargolink/services/match/mocks"
)

func matchTestConfig() *models.Config {
	return &models.Config{
		Pricing: models.PricingConfig{
			BaseFare: 500,
			TaxRate:  0.10,
		},
		Match: models.MatchConfig{
			Strategy:      "utilization",
			MaxCandidates: 20,
		},
	}
}

func testShipment(warehouseID uuid.UUID) *models.Shipment {
	return &models.Shipment{
		ID:          uuid.New(),
		WarehouseID: warehouseID,
		Weight:      400,
		Volume:      10,
		Distance:    100,
		Status:      models.ShipmentStatusCreated,
	}
}

func availableTruck(dealerID uuid.UUID, maxWeight, maxVolume, costPerKm float64) models.AvailableTruck {
	return models.AvailableTruck{
		Truck: models.Truck{
			ID:          uuid.New(),
			DealerID:    dealerID,
			TruckType:   models.TruckTypeContainer,
			MaxWeight:   maxWeight,
			MaxVolume:   maxVolume,
			CostPerKm:   costPerKm,
			IsAvailable: true,
		},
		Dealer: models.User{ID: dealerID, Role: models.RoleDealer},
	}
}

func TestMatchTrucks_CapacityFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	uc := NewMatchUC(matchTestConfig(), mockRepo)

	warehouseID := uuid.New()
	dealerID := uuid.New()
	shipment := testShipment(warehouseID)

	fits := availableTruck(dealerID, 500, 20, 10)
	tooLight := availableTruck(dealerID, 300, 20, 10)
	tooSmall := availableTruck(dealerID, 500, 5, 10)

	mockRepo.EXPECT().
		GetShipment(gomock.Any(), shipment.ID).
		Return(shipment, nil)
	mockRepo.EXPECT().
		ListAvailableTrucks(gomock.Any()).
		Return([]models.AvailableTruck{fits, tooLight, tooSmall}, nil)
	mockRepo.EXPECT().
		GetRatingAggregates(gomock.Any(), []uuid.UUID{dealerID}).
		Return(map[uuid.UUID]models.RatingAggregate{}, nil)

	actor := models.Actor{UserID: warehouseID, Role: models.RoleWarehouse}
	candidates, err := uc.MatchTrucks(context.Background(), actor, shipment.ID.String(), "")

	assert.NoError(t, err)
	assert.Len(t, candidates, 1)
	assert.Equal(t, fits.Truck.ID, candidates[0].Truck.ID)
	assert.Equal(t, 50.0, candidates[0].Utilization)
}

func TestMatchTrucks_ExcludesCorruptMaxVolume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	uc := NewMatchUC(matchTestConfig(), mockRepo)

	warehouseID := uuid.New()
	dealerID := uuid.New()
	shipment := testShipment(warehouseID)

	zeroVolume := availableTruck(dealerID, 500, 0, 10)
	negativeVolume := availableTruck(dealerID, 500, -3, 10)

	mockRepo.EXPECT().
		GetShipment(gomock.Any(), shipment.ID).
		Return(shipment, nil)
	mockRepo.EXPECT().
		ListAvailableTrucks(gomock.Any()).
		Return([]models.AvailableTruck{zeroVolume, negativeVolume}, nil)

	actor := models.Actor{UserID: warehouseID, Role: models.RoleWarehouse}
	candidates, err := uc.MatchTrucks(context.Background(), actor, shipment.ID.String(), "")

	assert.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestMatchTrucks_UtilizationRanking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	uc := NewMatchUC(matchTestConfig(), mockRepo)

	warehouseID := uuid.New()
	dealerID := uuid.New()
	shipment := testShipment(warehouseID)

	half := availableTruck(dealerID, 500, 20, 10)      // 50.0
	snug := availableTruck(dealerID, 500, 12, 10)      // 83.3
	roomy := availableTruck(dealerID, 500, 40, 10)     // 25.0
	alsoSnug := availableTruck(dealerID, 500, 12, 15)  // 83.3, tie
	mockRepo.EXPECT().
		GetShipment(gomock.Any(), shipment.ID).
		Return(shipment, nil)
	mockRepo.EXPECT().
		ListAvailableTrucks(gomock.Any()).
		Return([]models.AvailableTruck{half, snug, roomy, alsoSnug}, nil)
	mockRepo.EXPECT().
		GetRatingAggregates(gomock.Any(), gomock.Any()).
		Return(map[uuid.UUID]models.RatingAggregate{}, nil)

	actor := models.Actor{UserID: warehouseID, Role: models.RoleWarehouse}
	candidates, err := uc.MatchTrucks(context.Background(), actor, shipment.ID.String(), "")

	assert.NoError(t, err)
	assert.Len(t, candidates, 4)
	assert.Equal(t, []float64{83.3, 83.3, 50.0, 25.0}, []float64{
		candidates[0].Utilization,
		candidates[1].Utilization,
		candidates[2].Utilization,
		candidates[3].Utilization,
	})
	// stable sort keeps the tied pair in input order
	assert.Equal(t, snug.Truck.ID, candidates[0].Truck.ID)
	assert.Equal(t, alsoSnug.Truck.ID, candidates[1].Truck.ID)
}

func TestMatchTrucks_BatchRatingLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	uc := NewMatchUC(matchTestConfig(), mockRepo)

	warehouseID := uuid.New()
	dealerA := uuid.New()
	dealerB := uuid.New()
	shipment := testShipment(warehouseID)

	truckA1 := availableTruck(dealerA, 500, 20, 10)
	truckA2 := availableTruck(dealerA, 500, 25, 12)
	truckB := availableTruck(dealerB, 500, 40, 8)

	mockRepo.EXPECT().
		GetShipment(gomock.Any(), shipment.ID).
		Return(shipment, nil)
	mockRepo.EXPECT().
		ListAvailableTrucks(gomock.Any()).
		Return([]models.AvailableTruck{truckA1, truckA2, truckB}, nil)
	// one batch call, deduplicated dealer ids
	mockRepo.EXPECT().
		GetRatingAggregates(gomock.Any(), []uuid.UUID{dealerA, dealerB}).
		Return(map[uuid.UUID]models.RatingAggregate{
			dealerA: {Sum: 9, Count: 2},
		}, nil).
		Times(1)

	actor := models.Actor{UserID: warehouseID, Role: models.RoleWarehouse}
	candidates, err := uc.MatchTrucks(context.Background(), actor, shipment.ID.String(), "")

	assert.NoError(t, err)
	assert.Len(t, candidates, 3)
	for _, c := range candidates {
		if c.DealerID == dealerA {
			assert.Equal(t, 4.5, c.Rating)
			assert.Equal(t, int64(2), c.RatingCount)
		} else {
			assert.Equal(t, 0.0, c.Rating)
			assert.Equal(t, int64(0), c.RatingCount)
		}
		assert.Greater(t, c.PriceQuote, int64(0))
	}
}

func TestMatchTrucks_WeightedStrategy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	uc := NewMatchUC(matchTestConfig(), mockRepo)

	warehouseID := uuid.New()
	cheapDealer := uuid.New()
	ratedDealer := uuid.New()
	shipment := testShipment(warehouseID)

	// identical utilization so the rating term decides the order
	cheap := availableTruck(cheapDealer, 500, 20, 5)
	rated := availableTruck(ratedDealer, 500, 20, 5)

	mockRepo.EXPECT().
		GetShipment(gomock.Any(), shipment.ID).
		Return(shipment, nil)
	mockRepo.EXPECT().
		ListAvailableTrucks(gomock.Any()).
		Return([]models.AvailableTruck{cheap, rated}, nil)
	mockRepo.EXPECT().
		GetRatingAggregates(gomock.Any(), gomock.Any()).
		Return(map[uuid.UUID]models.RatingAggregate{
			ratedDealer: {Sum: 10, Count: 2},
		}, nil)

	actor := models.Actor{UserID: warehouseID, Role: models.RoleWarehouse}
	candidates, err := uc.MatchTrucks(context.Background(), actor, shipment.ID.String(), models.StrategyWeighted)

	assert.NoError(t, err)
	assert.Len(t, candidates, 2)
	assert.Equal(t, rated.Truck.ID, candidates[0].Truck.ID)
	assert.Greater(t, candidates[0].Score, candidates[1].Score)
}

func TestMatchTrucks_MaxCandidatesCap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := matchTestConfig()
	cfg.Match.MaxCandidates = 2

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	uc := NewMatchUC(cfg, mockRepo)

	warehouseID := uuid.New()
	dealerID := uuid.New()
	shipment := testShipment(warehouseID)

	trucks := []models.AvailableTruck{
		availableTruck(dealerID, 500, 20, 10),
		availableTruck(dealerID, 500, 25, 10),
		availableTruck(dealerID, 500, 30, 10),
	}

	mockRepo.EXPECT().
		GetShipment(gomock.Any(), shipment.ID).
		Return(shipment, nil)
	mockRepo.EXPECT().
		ListAvailableTrucks(gomock.Any()).
		Return(trucks, nil)
	mockRepo.EXPECT().
		GetRatingAggregates(gomock.Any(), gomock.Any()).
		Return(map[uuid.UUID]models.RatingAggregate{}, nil)

	actor := models.Actor{UserID: warehouseID, Role: models.RoleWarehouse}
	candidates, err := uc.MatchTrucks(context.Background(), actor, shipment.ID.String(), "")

	assert.NoError(t, err)
	assert.Len(t, candidates, 2)
}

func TestMatchTrucks_NotOwningWarehouse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	uc := NewMatchUC(matchTestConfig(), mockRepo)

	shipment := testShipment(uuid.New())

	mockRepo.EXPECT().
		GetShipment(gomock.Any(), shipment.ID).
		Return(shipment, nil)

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleWarehouse}
	candidates, err := uc.MatchTrucks(context.Background(), actor, shipment.ID.String(), "")

	assert.Nil(t, candidates)
	assert.True(t, apperrors.Is(err, apperrors.KindAuthorization))
}

func TestMatchTrucks_InvalidShipmentID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	uc := NewMatchUC(matchTestConfig(), mockRepo)

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleWarehouse}
	candidates, err := uc.MatchTrucks(context.Background(), actor, "not-a-uuid", "")

	assert.Nil(t, candidates)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestMatchTrucks_ShipmentNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	uc := NewMatchUC(matchTestConfig(), mockRepo)

	shipmentID := uuid.New()
	mockRepo.EXPECT().
		GetShipment(gomock.Any(), shipmentID).
		Return(nil, apperrors.NotFound("shipment not found"))

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleWarehouse}
	_, err := uc.MatchTrucks(context.Background(), actor, shipmentID.String(), "")

	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestMatchTrucks_NoCandidatesSkipsRatingLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	uc := NewMatchUC(matchTestConfig(), mockRepo)

	warehouseID := uuid.New()
	shipment := testShipment(warehouseID)

	mockRepo.EXPECT().
		GetShipment(gomock.Any(), shipment.ID).
		Return(shipment, nil)
	mockRepo.EXPECT().
		ListAvailableTrucks(gomock.Any()).
		Return(nil, nil)

	actor := models.Actor{UserID: warehouseID, Role: models.RoleWarehouse}
	candidates, err := uc.MatchTrucks(context.Background(), actor, shipment.ID.String(), "")

	assert.NoError(t, err)
	assert.Empty(t, candidates)
}
