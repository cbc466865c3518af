package ports

import (
	"context"

	"github.com/planventure/planventure-api/internal/core/domain"
)

// CreateTripInput carries the raw client payload for creating a trip. Dates
// arrive as ISO-8601 strings and are parsed by the service. Owner identity
// always comes from the resolved token, never from the payload.
type CreateTripInput struct {
	Destination string
	StartDate   string
	EndDate     string
	Latitude    *float64
	Longitude   *float64
	Itinerary   domain.Itinerary
}

// TripService defines the trip use cases, all scoped to an owning user.
type TripService interface {
	Create(ctx context.Context, ownerID int64, input CreateTripInput) (*domain.Trip, error)
	List(ctx context.Context, ownerID int64) ([]*domain.Trip, error)
	Get(ctx context.Context, ownerID, tripID int64) (*domain.Trip, error)
	Update(ctx context.Context, ownerID, tripID int64, patch TripPatch) (*domain.Trip, error)
	Delete(ctx context.Context, ownerID, tripID int64) error
}
