package rating

import (
	"context"

	"github.com/cargolink/cargolink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/cargolink/cargolink/services/rating RatingGW

// RatingGW defines the rating event publishing contract
type RatingGW interface {
	PublishRatingEvent(ctx context.Context, event *models.RatingEvent) error
}
