package usecase

import "math"

const (
	// baseline emission of an unoptimized haul, kg CO2 per km
	baselineEmissionPerKm = 1.0
	// emission reduction slope per utilization point
	optimizationSlope = 0.375

	minUtilization     = 30.0
	maxUtilization     = 90.0
	defaultUtilization = 50.0
)

// EstimateCO2Saved returns the kilograms of CO2 avoided by hauling a
// well-utilized truck over the given distance versus an unoptimized
// baseline. Utilization is clamped into [30, 90]; a missing or
// malformed value falls back to 50.
func EstimateCO2Saved(distance, utilization float64) int64 {
	if distance < 0 || math.IsNaN(distance) || math.IsInf(distance, 0) {
		distance = 0
	}
	if math.IsNaN(utilization) || math.IsInf(utilization, 0) {
		utilization = defaultUtilization
	}
	if utilization < minUtilization {
		utilization = minUtilization
	}
	if utilization > maxUtilization {
		utilization = maxUtilization
	}

	baseline := distance * baselineEmissionPerKm
	optimizedFactor := 1.0 - (utilization/100)*optimizationSlope
	optimized := distance * optimizedFactor

	saved := math.Round(baseline - optimized)
	if saved < 0 {
		return 0
	}
	return int64(saved)
}
