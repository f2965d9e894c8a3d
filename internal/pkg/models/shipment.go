package models

import (
	"time"

	"github.com/google/uuid"
)

// ShipmentStatus represents the status of a shipment
type ShipmentStatus string

const (
	ShipmentStatusCreated   ShipmentStatus = "created"
	ShipmentStatusRequested ShipmentStatus = "requested"
	ShipmentStatusApproved  ShipmentStatus = "approved"
	ShipmentStatusPicked    ShipmentStatus = "picked"
	ShipmentStatusInTransit ShipmentStatus = "in_transit"
	ShipmentStatusDelivered ShipmentStatus = "delivered"
)

// Shipment represents a load posted by a warehouse
type Shipment struct {
	ID            uuid.UUID      `json:"id" db:"id"`
	WarehouseID   uuid.UUID      `json:"warehouse_id" db:"warehouse_id"`
	Weight        float64        `json:"weight" db:"weight"`
	Volume        float64        `json:"volume" db:"volume"`
	Boxes         int            `json:"boxes" db:"boxes"`
	Source        string         `json:"source" db:"source"`
	Destination   string         `json:"destination" db:"destination"`
	Distance      float64        `json:"distance" db:"distance"` // km
	Pickup        time.Time      `json:"pickup" db:"pickup"`
	Deadline      time.Time      `json:"deadline" db:"deadline"`
	Status        ShipmentStatus `json:"status" db:"status"`
	AssignedTruck *uuid.UUID     `json:"assigned_truck,omitempty" db:"assigned_truck_id"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
}

// ShipmentCreateRequest is the payload for posting a new shipment.
// Source and destination are city names; when Distance is zero it is
// estimated from the city registry. Alternatively a map pin can be
// supplied per endpoint and is resolved to the nearest known city.
type ShipmentCreateRequest struct {
	Weight      float64   `json:"weight"`
	Volume      float64   `json:"volume"`
	Boxes       int       `json:"boxes"`
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	Distance    float64   `json:"distance,omitempty"`
	SourcePin   *GeoPin   `json:"source_pin,omitempty"`
	DestPin     *GeoPin   `json:"destination_pin,omitempty"`
	Pickup      time.Time `json:"pickup"`
	Deadline    time.Time `json:"deadline"`
}

// GeoPin is a raw map coordinate picked in the shipment form
type GeoPin struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// WarehouseStats summarizes a warehouse's delivered volume
type WarehouseStats struct {
	TripsCompleted int      `json:"trips_completed" db:"trips_completed"`
	CO2Saved       int64    `json:"co2_saved" db:"co2_saved"`
	AvgRating      *float64 `json:"avg_rating" db:"avg_rating"`
}
