package usecase

import (
	"math"

	"github.com/cargolink/cargolink/internal/pkg/models"
)

// QuotePrice computes the contractual price for hauling a shipment:
// a flat base fare plus distance cost scaled by a load factor (a more
// utilized truck costs proportionally more), plus tax. The result is
// locked into the booking at request time and never recomputed.
func QuotePrice(cfg models.PricingConfig, distance, costPerKm, utilization float64) int64 {
	if distance < 0 || math.IsNaN(distance) || math.IsInf(distance, 0) {
		distance = 0
	}
	if costPerKm < 0 || math.IsNaN(costPerKm) || math.IsInf(costPerKm, 0) {
		costPerKm = 0
	}

	baseFare := cfg.BaseFare
	distanceCost := distance * costPerKm
	loadFactor := 1 + utilization/100

	subtotal := baseFare + distanceCost*loadFactor
	tax := cfg.TaxRate * subtotal

	return int64(math.Round(subtotal + tax))
}
