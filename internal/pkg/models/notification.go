package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType tags the event that produced a notification
type NotificationType string

const (
	NotificationBookingRequest  NotificationType = "booking_request"
	NotificationBookingApproved NotificationType = "booking_approved"
	NotificationBookingRejected NotificationType = "booking_rejected"
	NotificationShipmentUpdate  NotificationType = "shipment_update"
)

// Notification is a durable per-user event record. RelatedID points at
// the booking or trip the event concerns. Delivery transport is out of
// scope; only the record is.
type Notification struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	UserID    uuid.UUID        `json:"user_id" db:"user_id"`
	Type      NotificationType `json:"type" db:"type"`
	Message   string           `json:"message" db:"message"`
	RelatedID uuid.UUID        `json:"related_id" db:"related_id"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}
