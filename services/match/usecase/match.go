package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	apperrors "github.com/cargolink/cargolink/internal/pkg/errors"
	"github.com/cargolink/cargolink/internal/pkg/logger"
	"github.com/cargolink/cargolink/internal/pkg/models"
	"github.com/cargolink/cargolink/internal/utils"
	"github.com/cargolink/cargolink/services/match"
)

// matchUC implements the match.MatchUC interface
type matchUC struct {
	cfg       *models.Config
	matchRepo match.MatchRepo
}

// NewMatchUC creates a new truck matcher use case
func NewMatchUC(cfg *models.Config, matchRepo match.MatchRepo) match.MatchUC {
	return &matchUC{
		cfg:       cfg,
		matchRepo: matchRepo,
	}
}

// MatchTrucks filters the available fleet by capacity, scores each
// qualifying truck and returns candidates ranked by the selected
// strategy. Dealer ratings are fetched in one batch, never per truck.
func (uc *matchUC) MatchTrucks(ctx context.Context, actor models.Actor, shipmentID string, strategy models.MatchStrategy) ([]models.TruckCandidate, error) {
	id, err := uuid.Parse(shipmentID)
	if err != nil {
		return nil, apperrors.Validation("shipment id is not a valid UUID")
	}

	shipment, err := uc.matchRepo.GetShipment(ctx, id)
	if err != nil {
		return nil, err
	}
	if shipment.WarehouseID != actor.UserID {
		return nil, apperrors.Authorization("only the owning warehouse can match trucks")
	}

	trucks, err := uc.matchRepo.ListAvailableTrucks(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]models.TruckCandidate, 0, len(trucks))
	dealerIDs := make([]uuid.UUID, 0, len(trucks))
	seenDealers := make(map[uuid.UUID]bool)

	for _, at := range trucks {
		t := at.Truck

		// guard against corrupt capacity data
		if t.MaxVolume <= 0 || math.IsNaN(t.MaxVolume) || math.IsInf(t.MaxVolume, 0) {
			logger.Warn("excluding truck with invalid max volume",
				logger.String("truck_id", t.ID.String()),
				logger.Float64("max_volume", t.MaxVolume))
			continue
		}
		if t.MaxWeight < shipment.Weight || t.MaxVolume < shipment.Volume {
			continue
		}

		utilization := (shipment.Volume / t.MaxVolume) * 100
		if utilization > 100 {
			// second admission gate: cannot physically hold the shipment
			continue
		}

		candidates = append(candidates, models.TruckCandidate{
			Truck:       t,
			Dealer:      at.Dealer,
			DealerID:    t.DealerID,
			Utilization: utils.RoundTo1(utilization),
			Distance:    shipment.Distance,
			CostPerKm:   t.CostPerKm,
		})
		if !seenDealers[t.DealerID] {
			seenDealers[t.DealerID] = true
			dealerIDs = append(dealerIDs, t.DealerID)
		}
	}

	if len(candidates) == 0 {
		return candidates, nil
	}

	aggregates, err := uc.matchRepo.GetRatingAggregates(ctx, dealerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load dealer ratings: %w", err)
	}

	for i := range candidates {
		agg := aggregates[candidates[i].DealerID]
		candidates[i].Rating = agg.Average()
		candidates[i].RatingCount = agg.Count
		candidates[i].PriceQuote = QuotePrice(uc.cfg.Pricing, candidates[i].Distance, candidates[i].CostPerKm, candidates[i].Utilization)
	}

	uc.rank(candidates, strategy)

	if max := uc.cfg.Match.MaxCandidates; max > 0 && len(candidates) > max {
		candidates = candidates[:max]
	}

	return candidates, nil
}

// rank orders candidates in place. The sort is stable so that ties
// keep their input order.
func (uc *matchUC) rank(candidates []models.TruckCandidate, strategy models.MatchStrategy) {
	if strategy == "" {
		strategy = models.MatchStrategy(uc.cfg.Match.Strategy)
	}

	if strategy == models.StrategyWeighted {
		for i := range candidates {
			invCost := 0.0
			if candidates[i].CostPerKm > 0 {
				invCost = 1 / candidates[i].CostPerKm
			}
			candidates[i].Score = 0.5*candidates[i].Utilization + 0.3*candidates[i].Rating + 0.2*invCost
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Score > candidates[j].Score
		})
		return
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Utilization > candidates[j].Utilization
	})
}
