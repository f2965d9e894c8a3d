package models

import "github.com/google/uuid"

// MatchStrategy names a truck ranking algorithm
type MatchStrategy string

const (
	// StrategyUtilization ranks candidates by capacity utilization alone.
	// This is the documented production contract.
	StrategyUtilization MatchStrategy = "utilization"
	// StrategyWeighted blends utilization, dealer rating and inverse
	// cost per km. Kept as an explicit named variant, never a silent
	// behavior change.
	StrategyWeighted MatchStrategy = "weighted"
)

// AvailableTruck pairs an available truck with its owning dealer
type AvailableTruck struct {
	Truck  Truck `json:"truck"`
	Dealer User  `json:"dealer"`
}

// TruckCandidate is one ranked matcher result for a shipment
type TruckCandidate struct {
	Truck       Truck     `json:"truck"`
	Dealer      User      `json:"dealer"`
	Utilization float64   `json:"utilization"` // percent, one decimal
	Distance    float64   `json:"distance"`    // km, from the shipment
	CostPerKm   float64   `json:"cost_per_km"`
	Rating      float64   `json:"rating"` // dealer average, one decimal, 0 if unrated
	RatingCount int64     `json:"rating_count"`
	PriceQuote  int64     `json:"price_quote"`
	Score       float64   `json:"score,omitempty"` // weighted strategy only
	DealerID    uuid.UUID `json:"-"`
}
