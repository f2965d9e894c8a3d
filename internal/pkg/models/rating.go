package models

import (
	"time"

	"github.com/google/uuid"
)

// Rating is a post-delivery score between the two parties of a trip.
// At most one rating exists per (trip, from) pair; the constraint is
// enforced by a unique index in addition to the submit-time check.
type Rating struct {
	ID        uuid.UUID `json:"id" db:"id"`
	TripID    uuid.UUID `json:"trip_id" db:"trip_id"`
	From      uuid.UUID `json:"from" db:"from_user_id"`
	To        uuid.UUID `json:"to" db:"to_user_id"`
	Score     int       `json:"score" db:"score"` // 1-5
	Comment   string    `json:"comment,omitempty" db:"comment"`
	FromName  string    `json:"from_name,omitempty" db:"from_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RatingSubmitRequest is the payload for rating a delivered trip
type RatingSubmitRequest struct {
	TripID  string `json:"trip_id"`
	Score   int    `json:"score"`
	Comment string `json:"comment,omitempty"`
}

// RatingAggregate is a dealer's rating sum and count, used by the
// matcher to derive the average without per-truck queries.
type RatingAggregate struct {
	Sum   int64 `json:"sum"`
	Count int64 `json:"count"`
}

// Average returns the mean score rounded to one decimal, 0 when unrated
func (a RatingAggregate) Average() float64 {
	if a.Count == 0 {
		return 0
	}
	avg := float64(a.Sum) / float64(a.Count)
	return float64(int64(avg*10+0.5)) / 10
}
