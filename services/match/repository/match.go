package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cargolink/cargolink/internal/pkg/constants"
	"github.com/cargolink/cargolink/internal/pkg/database"
	apperrors "github.com/cargolink/cargolink/internal/pkg/errors"
	"github.com/cargolink/cargolink/internal/pkg/logger"
	"github.com/cargolink/cargolink/internal/pkg/models"
)

// MatchRepo is the PostgreSQL-backed matcher repository with a Redis
// read-through cache for dealer rating aggregates.
type MatchRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	cache *database.RedisClient
}

// NewMatchRepository creates a new matcher repository
func NewMatchRepository(cfg *models.Config, db *sqlx.DB, cache *database.RedisClient) *MatchRepo {
	return &MatchRepo{
		cfg:   cfg,
		db:    db,
		cache: cache,
	}
}

// GetShipment retrieves a shipment by id
func (r *MatchRepo) GetShipment(ctx context.Context, id uuid.UUID) (*models.Shipment, error) {
	query := `
		SELECT id, warehouse_id, weight, volume, boxes, source, destination,
		       distance, pickup, deadline, status, assigned_truck_id,
		       created_at, updated_at
		FROM shipments
		WHERE id = $1
	`

	shipment := &models.Shipment{}
	if err := r.db.GetContext(ctx, shipment, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("shipment not found")
		}
		return nil, apperrors.Dependency("failed to load shipment", err)
	}

	return shipment, nil
}

// ListAvailableTrucks returns all trucks flagged available together
// with their owning dealers, in insertion order.
func (r *MatchRepo) ListAvailableTrucks(ctx context.Context) ([]models.AvailableTruck, error) {
	query := `
		SELECT t.id, t.dealer_id, t.truck_type, t.max_weight, t.max_volume,
		       t.cost_per_km, t.is_available, t.created_at, t.updated_at,
		       u.name, u.email, u.role, u.company_name, u.location
		FROM trucks t
		JOIN users u ON u.id = t.dealer_id
		WHERE t.is_available = true
		ORDER BY t.created_at
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Dependency("failed to list available trucks", err)
	}
	defer rows.Close()

	var trucks []models.AvailableTruck
	for rows.Next() {
		var t models.Truck
		var dealer models.User
		var companyName, location sql.NullString

		err := rows.Scan(
			&t.ID,
			&t.DealerID,
			&t.TruckType,
			&t.MaxWeight,
			&t.MaxVolume,
			&t.CostPerKm,
			&t.IsAvailable,
			&t.CreatedAt,
			&t.UpdatedAt,
			&dealer.Name,
			&dealer.Email,
			&dealer.Role,
			&companyName,
			&location,
		)
		if err != nil {
			return nil, apperrors.Dependency("failed to scan truck row", err)
		}

		dealer.ID = t.DealerID
		dealer.CompanyName = companyName.String
		dealer.Location = location.String

		trucks = append(trucks, models.AvailableTruck{Truck: t, Dealer: dealer})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Dependency("failed to iterate truck rows", err)
	}

	return trucks, nil
}

// GetRatingAggregates loads per-dealer rating sums and counts. Cached
// entries are served from Redis; the remainder is fetched from
// PostgreSQL in one batch and written back with a TTL. Cache failures
// degrade to the database, never to an error.
func (r *MatchRepo) GetRatingAggregates(ctx context.Context, dealerIDs []uuid.UUID) (map[uuid.UUID]models.RatingAggregate, error) {
	result := make(map[uuid.UUID]models.RatingAggregate, len(dealerIDs))
	if len(dealerIDs) == 0 {
		return result, nil
	}

	missing := r.readCachedAggregates(ctx, dealerIDs, result)
	if len(missing) == 0 {
		return result, nil
	}

	ids := make([]string, len(missing))
	for i, id := range missing {
		ids[i] = id.String()
	}

	query, args, err := sqlx.In(`
		SELECT to_user_id, COALESCE(SUM(score), 0) AS sum, COUNT(*) AS count
		FROM ratings
		WHERE to_user_id IN (?)
		GROUP BY to_user_id
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build rating aggregate query: %w", err)
	}
	query = r.db.Rebind(query)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Dependency("failed to load rating aggregates", err)
	}
	defer rows.Close()

	fetched := make(map[uuid.UUID]models.RatingAggregate, len(missing))
	for rows.Next() {
		var dealerID uuid.UUID
		var agg models.RatingAggregate
		if err := rows.Scan(&dealerID, &agg.Sum, &agg.Count); err != nil {
			return nil, apperrors.Dependency("failed to scan rating aggregate", err)
		}
		fetched[dealerID] = agg
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Dependency("failed to iterate rating aggregates", err)
	}

	// dealers without ratings get an explicit zero entry in the cache
	// so the next match does not re-query them
	for _, id := range missing {
		agg := fetched[id]
		result[id] = agg
		r.writeCachedAggregate(ctx, id, agg)
	}

	return result, nil
}

func (r *MatchRepo) readCachedAggregates(ctx context.Context, dealerIDs []uuid.UUID, result map[uuid.UUID]models.RatingAggregate) []uuid.UUID {
	if r.cache == nil {
		return dealerIDs
	}

	var missing []uuid.UUID
	for _, id := range dealerIDs {
		key := fmt.Sprintf(constants.KeyDealerRating, id.String())
		val, err := r.cache.Get(ctx, key)
		if err != nil {
			missing = append(missing, id)
			continue
		}
		agg, err := parseAggregate(val)
		if err != nil {
			logger.Warn("discarding malformed rating cache entry",
				logger.String("key", key),
				logger.Err(err))
			missing = append(missing, id)
			continue
		}
		result[id] = agg
	}
	return missing
}

func (r *MatchRepo) writeCachedAggregate(ctx context.Context, dealerID uuid.UUID, agg models.RatingAggregate) {
	if r.cache == nil {
		return
	}

	key := fmt.Sprintf(constants.KeyDealerRating, dealerID.String())
	ttl := time.Duration(r.cfg.Match.RatingCacheTTL) * time.Second
	val := fmt.Sprintf("%d|%d", agg.Sum, agg.Count)

	if err := r.cache.Set(ctx, key, val, ttl); err != nil {
		logger.Warn("failed to cache rating aggregate",
			logger.String("key", key),
			logger.Err(err))
	}
}

func parseAggregate(val string) (models.RatingAggregate, error) {
	parts := strings.SplitN(val, "|", 2)
	if len(parts) != 2 {
		return models.RatingAggregate{}, fmt.Errorf("expected sum|count, got %q", val)
	}
	sum, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return models.RatingAggregate{}, err
	}
	count, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return models.RatingAggregate{}, err
	}
	return models.RatingAggregate{Sum: sum, Count: count}, nil
}
