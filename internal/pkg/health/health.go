package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cargolink/cargolink/internal/pkg/database"
)

// Checker reports the health of one dependency
type Checker interface {
	Name() string
	CheckHealth(ctx context.Context) error
}

// PostgresChecker pings the PostgreSQL pool
type PostgresChecker struct {
	client *database.PostgresClient
}

// NewPostgresChecker creates a PostgreSQL health checker
func NewPostgresChecker(client *database.PostgresClient) *PostgresChecker {
	return &PostgresChecker{client: client}
}

func (p *PostgresChecker) Name() string { return "postgres" }

func (p *PostgresChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	return p.client.GetDB().PingContext(ctx)
}

// RedisChecker pings the Redis connection
type RedisChecker struct {
	client *database.RedisClient
}

// NewRedisChecker creates a Redis health checker
func NewRedisChecker(client *database.RedisClient) *RedisChecker {
	return &RedisChecker{client: client}
}

func (r *RedisChecker) Name() string { return "redis" }

func (r *RedisChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.GetClient().Ping(ctx).Err()
}

// RegisterHealthEndpoints mounts liveness and readiness probes.
// Liveness always answers; readiness runs every checker with a short
// deadline and reports per-dependency status.
func RegisterHealthEndpoints(e *echo.Echo, appName string, checkers ...Checker) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status":  "ok",
			"service": appName,
		})
	})

	e.GET("/health/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		status := http.StatusOK
		deps := echo.Map{}
		for _, checker := range checkers {
			if err := checker.CheckHealth(ctx); err != nil {
				status = http.StatusServiceUnavailable
				deps[checker.Name()] = err.Error()
				continue
			}
			deps[checker.Name()] = "ok"
		}

		return c.JSON(status, echo.Map{
			"status":       http.StatusText(status),
			"service":      appName,
			"dependencies": deps,
		})
	})
}
