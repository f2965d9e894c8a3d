package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	apperrors "github.com/cargolink/cargolink/internal/pkg/errors"
	"github.com/cargolink/cargolink/internal/pkg/models"
)

const uniqueViolation = "23505"

// UserRepo is the PostgreSQL-backed account repository
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepository creates a new account repository
func NewUserRepository(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateUser inserts a new account. The email unique index closes the
// duplicate-registration race.
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (
			id, name, email, password_hash, role, company_name,
			location, created_at, updated_at
		) VALUES (
			:id, :name, :email, :password_hash, :role, :company_name,
			:location, :created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.Conflict("email already registered")
		}
		return apperrors.Dependency("failed to insert user", err)
	}
	return nil
}

// GetUser loads an account by id
func (r *UserRepo) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, company_name,
		       location, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	user := &models.User{}
	if err := r.db.GetContext(ctx, user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, apperrors.Dependency("failed to load user", err)
	}
	return user, nil
}

// GetUserByEmail loads an account by email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, company_name,
		       location, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	user := &models.User{}
	if err := r.db.GetContext(ctx, user, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, apperrors.Dependency("failed to load user", err)
	}
	return user, nil
}

// GetTripCounts returns delivered and active trip counts for a user
// on either side of the trip.
func (r *UserRepo) GetTripCounts(ctx context.Context, userID uuid.UUID) (int, int, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'delivered') AS completed,
			COUNT(*) FILTER (WHERE status <> 'delivered') AS active
		FROM trips
		WHERE warehouse_id = $1 OR dealer_id = $1
	`

	var counts struct {
		Completed int `db:"completed"`
		Active    int `db:"active"`
	}
	if err := r.db.GetContext(ctx, &counts, query, userID); err != nil {
		return 0, 0, apperrors.Dependency("failed to count trips", err)
	}
	return counts.Completed, counts.Active, nil
}

// GetRecentRatings returns the newest ratings received by a user
func (r *UserRepo) GetRecentRatings(ctx context.Context, userID uuid.UUID, limit int) ([]models.Rating, error) {
	query := `
		SELECT r.id, r.trip_id, r.from_user_id, r.to_user_id, r.score,
		       r.comment, u.name AS from_name, r.created_at
		FROM ratings r
		JOIN users u ON u.id = r.from_user_id
		WHERE r.to_user_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2
	`

	var ratings []models.Rating
	if err := r.db.SelectContext(ctx, &ratings, query, userID, limit); err != nil {
		return nil, apperrors.Dependency("failed to list recent ratings", err)
	}
	return ratings, nil
}

// GetRatingSummary returns the received rating average and count.
// Average is 0 until the first rating arrives.
func (r *UserRepo) GetRatingSummary(ctx context.Context, userID uuid.UUID) (float64, int, error) {
	query := `
		SELECT COALESCE(ROUND(AVG(score)::numeric, 1), 0) AS avg, COUNT(*) AS count
		FROM ratings
		WHERE to_user_id = $1
	`

	var summary struct {
		Avg   float64 `db:"avg"`
		Count int     `db:"count"`
	}
	if err := r.db.GetContext(ctx, &summary, query, userID); err != nil {
		return 0, 0, apperrors.Dependency("failed to summarize ratings", err)
	}
	return summary.Avg, summary.Count, nil
}

// GetMonthlyTrips returns per-month delivered trip counts for the
// trailing months window.
func (r *UserRepo) GetMonthlyTrips(ctx context.Context, userID uuid.UUID, months int) ([]models.MonthlyTrip, error) {
	query := `
		SELECT to_char(date_trunc('month', updated_at), 'YYYY-MM') AS month,
		       COUNT(*) AS count
		FROM trips
		WHERE (warehouse_id = $1 OR dealer_id = $1)
		  AND status = 'delivered'
		  AND updated_at >= date_trunc('month', now()) - make_interval(months => $2)
		GROUP BY 1
		ORDER BY 1
	`

	var monthly []models.MonthlyTrip
	if err := r.db.SelectContext(ctx, &monthly, query, userID, months); err != nil {
		return nil, apperrors.Dependency("failed to count monthly trips", err)
	}
	return monthly, nil
}
