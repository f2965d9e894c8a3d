package gateway

import (
	"context"

	"github.com/cargolink/cargolink/internal/pkg/models"
	nsqpkg "github.com/cargolink/cargolink/internal/pkg/nsq"
	"github.com/cargolink/cargolink/services/booking"
)

// BookingGW publishes booking lifecycle events to NSQ
type BookingGW struct {
	producer *nsqpkg.Producer
}

// NewBookingGW creates a new booking gateway
func NewBookingGW(producer *nsqpkg.Producer) booking.BookingGW {
	return &BookingGW{
		producer: producer,
	}
}

// PublishBookingEvent publishes a booking lifecycle event
func (g *BookingGW) PublishBookingEvent(ctx context.Context, topic string, event *models.BookingEvent) error {
	return g.producer.Publish(topic, event)
}
