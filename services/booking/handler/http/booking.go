package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargolink/cargolink/internal/pkg/middleware"
	"github.com/cargolink/cargolink/internal/pkg/models"
	"github.com/cargolink/cargolink/internal/utils"
	"github.com/cargolink/cargolink/services/booking"
)

// BookingHandler handles HTTP requests for the booking lifecycle
type BookingHandler struct {
	bookingUC booking.BookingUC
}

// NewBookingHandler creates a new booking HTTP handler
func NewBookingHandler(bookingUC booking.BookingUC) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
	}
}

// RegisterRoutes registers the booking handler routes on an
// authenticated group.
func (h *BookingHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/bookings", h.CreateBooking)
	g.GET("/bookings", h.ListBookings)
	g.POST("/bookings/:bookingID/resolve", h.ResolveBooking)
}

// CreateBooking creates a pending booking request for a shipment
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing identity")
	}

	var req models.BookingCreateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	created, err := h.bookingUC.CreateRequest(c.Request().Context(), actor, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "booking requested", created)
}

// ResolveBookingRequest is the dealer decision payload
type ResolveBookingRequest struct {
	Action models.BookingAction `json:"action"`
}

// ResolveBooking applies a dealer approve or reject decision
func (h *BookingHandler) ResolveBooking(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing identity")
	}

	var req ResolveBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	trip, err := h.bookingUC.Resolve(c.Request().Context(), actor, c.Param("bookingID"), req.Action)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if trip == nil {
		return utils.SuccessResponse(c, http.StatusOK, "booking rejected", echo.Map{"success": true})
	}
	return utils.SuccessResponse(c, http.StatusOK, "booking approved", trip)
}

// ListBookings returns the caller's bookings
func (h *BookingHandler) ListBookings(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing identity")
	}

	bookings, err := h.bookingUC.ListForActor(c.Request().Context(), actor)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "bookings listed", bookings)
}
