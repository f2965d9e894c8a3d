package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargolink/cargolink/internal/pkg/middleware"
	"github.com/cargolink/cargolink/internal/pkg/models"
	"github.com/cargolink/cargolink/internal/utils"
	"github.com/cargolink/cargolink/services/shipment"
)

// ShipmentHandler handles HTTP requests for shipments
type ShipmentHandler struct {
	shipmentUC shipment.ShipmentUC
}

// NewShipmentHandler creates a new shipment HTTP handler
func NewShipmentHandler(shipmentUC shipment.ShipmentUC) *ShipmentHandler {
	return &ShipmentHandler{
		shipmentUC: shipmentUC,
	}
}

// RegisterRoutes registers the shipment handler routes on an
// authenticated group.
func (h *ShipmentHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/shipments", h.CreateShipment)
	g.GET("/shipments", h.ListShipments)
	g.GET("/shipments/:shipmentID", h.GetShipment)
	g.GET("/warehouse/stats", h.WarehouseStats)
}

// CreateShipment posts a new shipment
func (h *ShipmentHandler) CreateShipment(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing identity")
	}

	var req models.ShipmentCreateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	created, err := h.shipmentUC.Create(c.Request().Context(), actor, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "shipment created", created)
}

// GetShipment returns a single shipment
func (h *ShipmentHandler) GetShipment(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing identity")
	}

	s, err := h.shipmentUC.Get(c.Request().Context(), actor, c.Param("shipmentID"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "shipment loaded", s)
}

// ListShipments returns the caller's shipments
func (h *ShipmentHandler) ListShipments(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing identity")
	}

	status := models.ShipmentStatus(c.QueryParam("status"))
	shipments, err := h.shipmentUC.List(c.Request().Context(), actor, status)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "shipments listed", shipments)
}

// WarehouseStats returns the caller's delivery statistics
func (h *ShipmentHandler) WarehouseStats(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing identity")
	}

	stats, err := h.shipmentUC.Stats(c.Request().Context(), actor)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "warehouse stats", stats)
}
