package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargolink/cargolink/internal/pkg/middleware"
	"github.com/cargolink/cargolink/internal/pkg/models"
	"github.com/cargolink/cargolink/internal/utils"
	"github.com/cargolink/cargolink/services/truck"
)

// TruckHandler handles HTTP requests for the dealer fleet
type TruckHandler struct {
	truckUC truck.TruckUC
}

// NewTruckHandler creates a new truck HTTP handler
func NewTruckHandler(truckUC truck.TruckUC) *TruckHandler {
	return &TruckHandler{
		truckUC: truckUC,
	}
}

// RegisterRoutes registers the truck handler routes on an
// authenticated group.
func (h *TruckHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/trucks", h.CreateTruck)
	g.GET("/trucks", h.ListTrucks)
	g.PUT("/trucks/:truckID", h.UpdateTruck)
	g.PATCH("/trucks/:truckID/availability", h.SetAvailability)
	g.GET("/dealer/stats", h.DealerStats)
}

// CreateTruck registers a new vehicle
func (h *TruckHandler) CreateTruck(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing identity")
	}

	var req models.TruckCreateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	created, err := h.truckUC.Create(c.Request().Context(), actor, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "truck registered", created)
}

// ListTrucks returns the caller's fleet
func (h *TruckHandler) ListTrucks(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing identity")
	}

	trucks, err := h.truckUC.List(c.Request().Context(), actor)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "trucks listed", trucks)
}

// UpdateTruck edits a vehicle's specs
func (h *TruckHandler) UpdateTruck(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing identity")
	}

	var req models.TruckUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	updated, err := h.truckUC.Update(c.Request().Context(), actor, c.Param("truckID"), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "truck updated", updated)
}

// SetAvailability toggles a vehicle in or out of the pool
func (h *TruckHandler) SetAvailability(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing identity")
	}

	var req models.TruckAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if req.IsAvailable == nil {
		return utils.BadRequestResponse(c, "is_available is required")
	}

	updated, err := h.truckUC.SetAvailability(c.Request().Context(), actor, c.Param("truckID"), *req.IsAvailable)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "truck availability updated", updated)
}

// DealerStats returns the caller's fleet and workload summary
func (h *TruckHandler) DealerStats(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing identity")
	}

	stats, err := h.truckUC.Stats(c.Request().Context(), actor)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "dealer stats", stats)
}
