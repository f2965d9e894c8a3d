package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargolink/cargolink/internal/pkg/middleware"
	"github.com/cargolink/cargolink/internal/pkg/models"
	"github.com/cargolink/cargolink/internal/utils"
	"github.com/cargolink/cargolink/services/match"
)

// MatchHandler handles HTTP requests for truck matching
type MatchHandler struct {
	matchUC match.MatchUC
}

// NewMatchHandler creates a new match HTTP handler
func NewMatchHandler(matchUC match.MatchUC) *MatchHandler {
	return &MatchHandler{
		matchUC: matchUC,
	}
}

// RegisterRoutes registers the match handler routes on an
// authenticated group.
func (h *MatchHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/shipments/:shipmentID/matches", h.MatchTrucks)
}

// MatchTrucks ranks available trucks for a shipment
func (h *MatchHandler) MatchTrucks(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing identity")
	}

	shipmentID := c.Param("shipmentID")
	strategy := models.MatchStrategy(c.QueryParam("strategy"))

	candidates, err := h.matchUC.MatchTrucks(c.Request().Context(), actor, shipmentID, strategy)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "matches computed", echo.Map{
		"shipment_id": shipmentID,
		"candidates":  candidates,
	})
}
