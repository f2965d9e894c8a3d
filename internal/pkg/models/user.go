package models

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the role of a marketplace account
type UserRole string

const (
	RoleWarehouse UserRole = "warehouse"
	RoleDealer    UserRole = "dealer"
	RoleAdmin     UserRole = "admin"
)

// User represents a marketplace account (warehouse or truck dealer)
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         UserRole  `json:"role" db:"role"`
	CompanyName  string    `json:"company_name,omitempty" db:"company_name"`
	Location     string    `json:"location,omitempty" db:"location"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Actor is the verified identity attached to every request.
// It is decoded once from the bearer token and passed explicitly
// into usecases; there is no ambient request state.
type Actor struct {
	UserID uuid.UUID `json:"user_id"`
	Role   UserRole  `json:"role"`
}

// UserProfile bundles a public profile with derived statistics.
// Average rating is computed on read from the rating ledger.
type UserProfile struct {
	User           User          `json:"user"`
	CompletedTrips int           `json:"completed_trips"`
	ActiveTrips    int           `json:"active_trips"`
	AvgRating      float64       `json:"avg_rating"`
	RatingCount    int           `json:"rating_count"`
	RecentRatings  []Rating      `json:"recent_ratings"`
	MonthlyTrips   []MonthlyTrip `json:"monthly_trips,omitempty"`
}

// MonthlyTrip is a per-month delivered trip count for profile charts
type MonthlyTrip struct {
	Month string `json:"month" db:"month"`
	Count int    `json:"count" db:"count"`
}

// RegisterRequest is the payload for creating an account
type RegisterRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Role        UserRole `json:"role"`
	CompanyName string   `json:"company_name,omitempty"`
	Location    string   `json:"location,omitempty"`
}

// LoginRequest is the payload for exchanging credentials for a token
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries a freshly signed bearer token
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	User      User   `json:"user"`
}
