package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrTripNotFound = errors.New("trip not found")

// ValidationError reports malformed or missing client input. The message is
// safe to surface verbatim in a 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// MissingField builds the canonical error for an absent required field.
func MissingField(name string) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf("missing required field: %s", name)}
}

// Trip is a travel record owned by exactly one user. All reads and writes are
// scoped by UserID; a trip is never visible through another user's identity.
type Trip struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Destination string    `json:"destination"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Itinerary   Itinerary `json:"itinerary"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DurationDays is the inclusive day count of the trip, minimum 1.
func (t *Trip) DurationDays() int {
	return durationDays(t.StartDate, t.EndDate)
}
