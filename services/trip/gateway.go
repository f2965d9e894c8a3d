package trip

import (
	"context"

	"github.com/cargolink/cargolink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/cargolink/cargolink/services/trip TripGW

// TripGW defines the trip event publishing contract. Publishing is
// best effort; a failed publish never rolls back a transition.
type TripGW interface {
	PublishTripStatusEvent(ctx context.Context, event *models.TripStatusEvent) error
}
