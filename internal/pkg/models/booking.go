package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking request
type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusApproved BookingStatus = "approved"
	BookingStatusRejected BookingStatus = "rejected"
)

// Booking pairs a shipment with a specific truck at a quoted price.
// FinalPrice is locked at request time and never recomputed.
type Booking struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	ShipmentID  uuid.UUID     `json:"shipment_id" db:"shipment_id"`
	WarehouseID uuid.UUID     `json:"warehouse_id" db:"warehouse_id"`
	DealerID    uuid.UUID     `json:"dealer_id" db:"dealer_id"`
	TruckID     uuid.UUID     `json:"truck_id" db:"truck_id"`
	Utilization float64       `json:"utilization" db:"utilization"` // percent, 0-100
	FinalPrice  int64         `json:"final_price" db:"final_price"`
	Status      BookingStatus `json:"status" db:"status"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`
}

// BookingCreateRequest is the payload for a warehouse truck request.
// Distance, utilization and final price come from the matcher output
// the warehouse accepted; the quoted price is the contractual one.
type BookingCreateRequest struct {
	ShipmentID  string   `json:"shipment_id"`
	TruckID     string   `json:"truck_id"`
	Distance    *float64 `json:"distance"`
	Utilization *float64 `json:"utilization"`
	FinalPrice  *float64 `json:"final_price"`
}

// BookingAction is a dealer decision on a pending booking
type BookingAction string

const (
	BookingActionApprove BookingAction = "approve"
	BookingActionReject  BookingAction = "reject"
)
