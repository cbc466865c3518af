package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planventure/planventure-api/internal/core/domain"
)

// TripRepository persists trips in the trips table. Every query carries the
// owner id in its WHERE clause, so a trip owned by a different user is
// indistinguishable from one that does not exist.
type TripRepository struct {
	pool *pgxpool.Pool
}

func NewTripRepository(pool *pgxpool.Pool) *TripRepository {
	return &TripRepository{pool: pool}
}

const tripColumns = `id, user_id, destination, start_date, end_date,
	latitude, longitude, itinerary, created_at, updated_at`

func (r *TripRepository) Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	itinerary, err := marshalItinerary(trip.Itinerary)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx,
		`INSERT INTO trips (user_id, destination, start_date, end_date,
		                    latitude, longitude, itinerary, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		trip.UserID, trip.Destination, trip.StartDate, trip.EndDate,
		trip.Latitude, trip.Longitude, itinerary, trip.CreatedAt, trip.UpdatedAt,
	)

	created := *trip
	if err := row.Scan(&created.ID); err != nil {
		return nil, fmt.Errorf("insert trip: %w", err)
	}
	return &created, nil
}

func (r *TripRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Trip, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+tripColumns+` FROM trips WHERE user_id = $1`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	defer rows.Close()

	trips := make([]*domain.Trip, 0)
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	return trips, nil
}

func (r *TripRepository) FindByID(ctx context.Context, ownerID, tripID int64) (*domain.Trip, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+tripColumns+` FROM trips WHERE id = $1 AND user_id = $2`,
		tripID, ownerID)

	trip, err := scanTrip(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTripNotFound
		}
		return nil, err
	}
	return trip, nil
}

func (r *TripRepository) Update(ctx context.Context, trip *domain.Trip) error {
	itinerary, err := marshalItinerary(trip.Itinerary)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE trips
		 SET destination = $1, start_date = $2, end_date = $3,
		     latitude = $4, longitude = $5, itinerary = $6, updated_at = $7
		 WHERE id = $8 AND user_id = $9`,
		trip.Destination, trip.StartDate, trip.EndDate,
		trip.Latitude, trip.Longitude, itinerary, trip.UpdatedAt,
		trip.ID, trip.UserID,
	)
	if err != nil {
		return fmt.Errorf("update trip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTripNotFound
	}
	return nil
}

func (r *TripRepository) Delete(ctx context.Context, ownerID, tripID int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM trips WHERE id = $1 AND user_id = $2`, tripID, ownerID)
	if err != nil {
		return fmt.Errorf("delete trip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTripNotFound
	}
	return nil
}

// rowScanner covers both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (*domain.Trip, error) {
	var t domain.Trip
	var itinerary []byte
	err := row.Scan(&t.ID, &t.UserID, &t.Destination, &t.StartDate, &t.EndDate,
		&t.Latitude, &t.Longitude, &itinerary, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan trip: %w", err)
	}

	if len(itinerary) > 0 {
		if err := json.Unmarshal(itinerary, &t.Itinerary); err != nil {
			return nil, fmt.Errorf("decode itinerary: %w", err)
		}
	}
	return &t, nil
}

func marshalItinerary(it domain.Itinerary) ([]byte, error) {
	if it == nil {
		return nil, nil
	}
	data, err := json.Marshal(it)
	if err != nil {
		return nil, fmt.Errorf("encode itinerary: %w", err)
	}
	return data, nil
}
