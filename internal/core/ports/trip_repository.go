package ports

import (
	"context"

	"github.com/planventure/planventure-api/internal/core/domain"
)

// TripPatch carries a partial update. Nil fields are left untouched; a
// non-nil Itinerary fully replaces the stored document (no deep merge).
type TripPatch struct {
	Destination *string
	StartDate   *string
	EndDate     *string
	Latitude    *float64
	Longitude   *float64
	Itinerary   domain.Itinerary
}

// TripRepository defines persistence operations for trips. Every operation
// takes the owner's user id and filters by it in the store, so a trip owned
// by someone else behaves exactly like a missing one (domain.ErrTripNotFound).
type TripRepository interface {
	Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Trip, error)
	FindByID(ctx context.Context, ownerID, tripID int64) (*domain.Trip, error)
	Update(ctx context.Context, trip *domain.Trip) error
	Delete(ctx context.Context, ownerID, tripID int64) error
}
