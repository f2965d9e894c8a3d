package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/cargolink/cargolink/internal/pkg/jwt"
	"github.com/cargolink/cargolink/internal/pkg/models"
	"github.com/cargolink/cargolink/internal/utils"
)

const actorContextKey = "actor"

// JWTAuthMiddleware validates the bearer token and stores the verified
// actor in the request context. Handlers retrieve it with ActorFromContext
// and pass it explicitly into usecases.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			actor, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(actorContextKey, *actor)
			c.Set("user_id", actor.UserID)

			return next(c)
		}
	}
}

// ActorFromContext returns the verified actor set by JWTAuthMiddleware
func ActorFromContext(c echo.Context) (models.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(models.Actor)
	return actor, ok
}
