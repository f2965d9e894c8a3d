package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargolink/cargolink/internal/pkg/middleware"
	"github.com/cargolink/cargolink/internal/pkg/models"
	"github.com/cargolink/cargolink/internal/utils"
	"github.com/cargolink/cargolink/services/trip"
)

// TripHandler handles HTTP requests for trip tracking
type TripHandler struct {
	tripUC trip.TripUC
}

// NewTripHandler creates a new trip HTTP handler
func NewTripHandler(tripUC trip.TripUC) *TripHandler {
	return &TripHandler{
		tripUC: tripUC,
	}
}

// RegisterRoutes registers the trip handler routes on an
// authenticated group.
func (h *TripHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/trips", h.ListTrips)
	g.GET("/trips/:tripID", h.GetTrip)
	g.PATCH("/trips/:tripID/status", h.AdvanceTrip)
}

// AdvanceTripRequest carries the target delivery stage
type AdvanceTripRequest struct {
	Status models.TripStatus `json:"status"`
}

// AdvanceTrip moves a trip to the next delivery stage
func (h *TripHandler) AdvanceTrip(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing identity")
	}

	var req AdvanceTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	advanced, err := h.tripUC.Advance(c.Request().Context(), actor, c.Param("tripID"), req.Status)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "trip advanced", advanced)
}

// GetTrip returns a single trip
func (h *TripHandler) GetTrip(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing identity")
	}

	t, err := h.tripUC.GetTrip(c.Request().Context(), actor, c.Param("tripID"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "trip loaded", t)
}

// ListTrips returns the caller's trips
func (h *TripHandler) ListTrips(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing identity")
	}

	trips, err := h.tripUC.ListForActor(c.Request().Context(), actor)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "trips listed", trips)
}
