package models

import (
	"time"

	"github.com/google/uuid"
)

// TruckType enumerates the supported vehicle classes
type TruckType string

const (
	TruckTypeMini      TruckType = "Mini Truck"
	TruckTypePickup    TruckType = "Pickup"
	TruckTypeContainer TruckType = "Container"
	TruckTypeTrailer   TruckType = "Trailer"
)

// ValidTruckType reports whether t is one of the supported classes
func ValidTruckType(t TruckType) bool {
	switch t {
	case TruckTypeMini, TruckTypePickup, TruckTypeContainer, TruckTypeTrailer:
		return true
	}
	return false
}

// Truck represents a dealer-owned vehicle
type Truck struct {
	ID          uuid.UUID `json:"id" db:"id"`
	DealerID    uuid.UUID `json:"dealer_id" db:"dealer_id"`
	TruckType   TruckType `json:"truck_type" db:"truck_type"`
	MaxWeight   float64   `json:"max_weight" db:"max_weight"`
	MaxVolume   float64   `json:"max_volume" db:"max_volume"`
	CostPerKm   float64   `json:"cost_per_km" db:"cost_per_km"`
	IsAvailable bool      `json:"is_available" db:"is_available"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// DealerStats summarizes a dealer's fleet and workload
type DealerStats struct {
	Trucks          int `json:"trucks" db:"trucks"`
	PendingRequests int `json:"requests" db:"requests"`
	ActiveTrips     int `json:"trips" db:"trips"`
}

// TruckCreateRequest is the payload for registering a new vehicle
type TruckCreateRequest struct {
	TruckType TruckType `json:"truck_type"`
	MaxWeight float64   `json:"max_weight"`
	MaxVolume float64   `json:"max_volume"`
	CostPerKm float64   `json:"cost_per_km"`
}

// TruckUpdateRequest is the payload for editing a vehicle's specs
type TruckUpdateRequest struct {
	TruckType TruckType `json:"truck_type"`
	MaxWeight float64   `json:"max_weight"`
	MaxVolume float64   `json:"max_volume"`
	CostPerKm float64   `json:"cost_per_km"`
}

// TruckAvailabilityRequest toggles a vehicle in or out of the pool
type TruckAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available"`
}
