package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingEvent is published on booking lifecycle transitions. The
// notification service consumes it and writes the per-user record;
// losing an event never rolls back the transition that produced it.
type BookingEvent struct {
	BookingID   uuid.UUID     `json:"booking_id"`
	ShipmentID  uuid.UUID     `json:"shipment_id"`
	WarehouseID uuid.UUID     `json:"warehouse_id"`
	DealerID    uuid.UUID     `json:"dealer_id"`
	TruckID     uuid.UUID     `json:"truck_id"`
	TripID      *uuid.UUID    `json:"trip_id,omitempty"` // set on approval
	Status      BookingStatus `json:"status"`
	Timestamp   time.Time     `json:"timestamp"`
}

// TripStatusEvent is published on every trip stage transition
type TripStatusEvent struct {
	TripID      uuid.UUID  `json:"trip_id"`
	ShipmentID  uuid.UUID  `json:"shipment_id"`
	WarehouseID uuid.UUID  `json:"warehouse_id"`
	DealerID    uuid.UUID  `json:"dealer_id"`
	Status      TripStatus `json:"status"`
	CO2Saved    int64      `json:"co2_saved,omitempty"`
	Timestamp   time.Time  `json:"timestamp"`
}

// RatingEvent is published after a rating is persisted
type RatingEvent struct {
	RatingID  uuid.UUID `json:"rating_id"`
	TripID    uuid.UUID `json:"trip_id"`
	From      uuid.UUID `json:"from"`
	To        uuid.UUID `json:"to"`
	Score     int       `json:"score"`
	Timestamp time.Time `json:"timestamp"`
}
