package gateway

import (
	"context"

	"github.com/cargolink/cargolink/internal/pkg/constants"
	"github.com/cargolink/cargolink/internal/pkg/models"
	nsqpkg "github.com/cargolink/cargolink/internal/pkg/nsq"
	"github.com/cargolink/cargolink/services/rating"
)

// RatingGW publishes rating events to NSQ
type RatingGW struct {
	producer *nsqpkg.Producer
}

// NewRatingGW creates a new rating gateway
func NewRatingGW(producer *nsqpkg.Producer) rating.RatingGW {
	return &RatingGW{
		producer: producer,
	}
}

// PublishRatingEvent publishes a submitted rating
func (g *RatingGW) PublishRatingEvent(ctx context.Context, event *models.RatingEvent) error {
	return g.producer.Publish(constants.TopicRatingSubmitted, event)
}
