package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargolink/cargolink/internal/pkg/middleware"
	"github.com/cargolink/cargolink/internal/pkg/models"
	"github.com/cargolink/cargolink/internal/utils"
	"github.com/cargolink/cargolink/services/rating"
)

// RatingHandler handles HTTP requests for the rating ledger
type RatingHandler struct {
	ratingUC rating.RatingUC
}

// NewRatingHandler creates a new rating HTTP handler
func NewRatingHandler(ratingUC rating.RatingUC) *RatingHandler {
	return &RatingHandler{
		ratingUC: ratingUC,
	}
}

// RegisterRoutes registers the rating handler routes on an
// authenticated group.
func (h *RatingHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/ratings", h.SubmitRating)
	g.GET("/trips/:tripID/rating-exists", h.RatingExists)
	g.GET("/users/:userID/ratings", h.ListRatings)
}

// SubmitRating records a rating for a delivered trip
func (h *RatingHandler) SubmitRating(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing identity")
	}

	var req models.RatingSubmitRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	created, err := h.ratingUC.Submit(c.Request().Context(), actor, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "rating submitted", created)
}

// RatingExists reports whether the caller already rated the trip
func (h *RatingHandler) RatingExists(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing identity")
	}

	exists, err := h.ratingUC.Exists(c.Request().Context(), actor, c.Param("tripID"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "rating checked", echo.Map{"exists": exists})
}

// ListRatings returns the ratings received by a user
func (h *RatingHandler) ListRatings(c echo.Context) error {
	if _, ok := middleware.ActorFromContext(c); !ok {
		return utils.UnauthorizedResponse(c, "missing identity")
	}

	ratings, err := h.ratingUC.ListForUser(c.Request().Context(), c.Param("userID"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "ratings listed", ratings)
}
