package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/planventure/planventure-api/internal/core/domain"
	"github.com/planventure/planventure-api/internal/core/ports"
)

// TripService implements ownership-scoped trip use cases. The owner id on
// every call comes from the resolved request identity; client payloads can
// never set or change it.
type TripService struct {
	trips ports.TripRepository
	log   zerolog.Logger
}

func NewTripService(trips ports.TripRepository, log zerolog.Logger) *TripService {
	return &TripService{trips: trips, log: log}
}

// tripDateLayouts are tried in order. RFC3339 covers the trailing-"Z" form
// clients send at creation; the bare layouts accept naive timestamps, which
// are taken as UTC. The same parser serves create and update.
var tripDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTripDate(field, value string) (time.Time, error) {
	for _, layout := range tripDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &domain.ValidationError{Message: "invalid date for " + field}
}

// Create validates and persists a new trip for ownerID. When the payload
// carries no itinerary, the default day/slot template is generated from the
// date range; it is never regenerated afterwards, even if the dates change.
func (s *TripService) Create(ctx context.Context, ownerID int64, input ports.CreateTripInput) (*domain.Trip, error) {
	if input.Destination == "" {
		return nil, domain.MissingField("destination")
	}
	if input.StartDate == "" {
		return nil, domain.MissingField("start_date")
	}
	if input.EndDate == "" {
		return nil, domain.MissingField("end_date")
	}

	start, err := parseTripDate("start_date", input.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseTripDate("end_date", input.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, &domain.ValidationError{Message: "end_date must not be before start_date"}
	}

	itinerary := input.Itinerary
	if itinerary == nil {
		itinerary = domain.DefaultItinerary(start, end)
	}

	now := time.Now().UTC()
	trip := &domain.Trip{
		UserID:      ownerID,
		Destination: input.Destination,
		StartDate:   start,
		EndDate:     end,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Itinerary:   itinerary,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.trips.Create(ctx, trip)
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", ownerID).Msg("failed to create trip")
		return nil, err
	}

	s.log.Info().Int64("trip_id", created.ID).Int64("user_id", ownerID).Str("destination", created.Destination).Msg("trip created")
	return created, nil
}

// List returns all trips owned by ownerID. Order is not guaranteed.
func (s *TripService) List(ctx context.Context, ownerID int64) ([]*domain.Trip, error) {
	return s.trips.ListByOwner(ctx, ownerID)
}

// Get returns a single owned trip. A trip belonging to a different user is
// indistinguishable from a missing one.
func (s *TripService) Get(ctx context.Context, ownerID, tripID int64) (*domain.Trip, error) {
	return s.trips.FindByID(ctx, ownerID, tripID)
}

// Update applies a partial patch to an owned trip. Unset fields keep their
// prior values; a supplied itinerary fully replaces the stored one.
func (s *TripService) Update(ctx context.Context, ownerID, tripID int64, patch ports.TripPatch) (*domain.Trip, error) {
	trip, err := s.trips.FindByID(ctx, ownerID, tripID)
	if err != nil {
		return nil, err
	}

	if patch.Destination != nil {
		trip.Destination = *patch.Destination
	}
	if patch.StartDate != nil {
		start, err := parseTripDate("start_date", *patch.StartDate)
		if err != nil {
			return nil, err
		}
		trip.StartDate = start
	}
	if patch.EndDate != nil {
		end, err := parseTripDate("end_date", *patch.EndDate)
		if err != nil {
			return nil, err
		}
		trip.EndDate = end
	}
	if trip.EndDate.Before(trip.StartDate) {
		return nil, &domain.ValidationError{Message: "end_date must not be before start_date"}
	}
	if patch.Latitude != nil {
		trip.Latitude = patch.Latitude
	}
	if patch.Longitude != nil {
		trip.Longitude = patch.Longitude
	}
	if patch.Itinerary != nil {
		trip.Itinerary = patch.Itinerary
	}
	trip.UpdatedAt = time.Now().UTC()

	if err := s.trips.Update(ctx, trip); err != nil {
		s.log.Error().Err(err).Int64("trip_id", tripID).Msg("failed to update trip")
		return nil, err
	}
	return trip, nil
}

// Delete removes an owned trip immediately. No soft delete.
func (s *TripService) Delete(ctx context.Context, ownerID, tripID int64) error {
	if err := s.trips.Delete(ctx, ownerID, tripID); err != nil {
		return err
	}
	s.log.Info().Int64("trip_id", tripID).Int64("user_id", ownerID).Msg("trip deleted")
	return nil
}
