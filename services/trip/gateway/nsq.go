package gateway

import (
	"context"

	"github.com/cargolink/cargolink/internal/pkg/constants"
	"github.com/cargolink/cargolink/internal/pkg/models"
	nsqpkg "github.com/cargolink/cargolink/internal/pkg/nsq"
	"github.com/cargolink/cargolink/services/trip"
)

// TripGW publishes trip status events to NSQ
type TripGW struct {
	producer *nsqpkg.Producer
}

// NewTripGW creates a new trip gateway
func NewTripGW(producer *nsqpkg.Producer) trip.TripGW {
	return &TripGW{
		producer: producer,
	}
}

// PublishTripStatusEvent publishes a trip stage transition
func (g *TripGW) PublishTripStatusEvent(ctx context.Context, event *models.TripStatusEvent) error {
	return g.producer.Publish(constants.TopicTripStatus, event)
}
