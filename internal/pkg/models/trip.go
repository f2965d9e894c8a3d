package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the delivery stage of a trip.
// Transitions are strictly forward, one stage at a time.
type TripStatus string

const (
	TripStatusAssigned  TripStatus = "assigned"
	TripStatusPicked    TripStatus = "picked"
	TripStatusInTransit TripStatus = "in_transit"
	TripStatusDelivered TripStatus = "delivered"
)

// NextTripStatus returns the immediate successor of s, or "" when s is
// terminal or unknown.
func NextTripStatus(s TripStatus) TripStatus {
	switch s {
	case TripStatusAssigned:
		return TripStatusPicked
	case TripStatusPicked:
		return TripStatusInTransit
	case TripStatusInTransit:
		return TripStatusDelivered
	}
	return ""
}

// ValidTripStatus reports whether s is a known delivery stage
func ValidTripStatus(s TripStatus) bool {
	switch s {
	case TripStatusAssigned, TripStatusPicked, TripStatusInTransit, TripStatusDelivered:
		return true
	}
	return false
}

// Trip is the operational record of a truck carrying out an approved
// booking. Identity fields are immutable after creation; only status
// and co2_saved change.
type Trip struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	ShipmentID  uuid.UUID  `json:"shipment_id" db:"shipment_id"`
	BookingID   uuid.UUID  `json:"booking_id" db:"booking_id"`
	DealerID    uuid.UUID  `json:"dealer_id" db:"dealer_id"`
	WarehouseID uuid.UUID  `json:"warehouse_id" db:"warehouse_id"`
	TruckID     uuid.UUID  `json:"truck_id" db:"truck_id"`
	Status      TripStatus `json:"status" db:"status"`
	CO2Saved    int64      `json:"co2_saved" db:"co2_saved"` // kg, set once on delivery
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}
