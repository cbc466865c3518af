package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/planventure/planventure-api/internal/core/domain"
	"github.com/planventure/planventure-api/internal/core/ports"
)

type createTripRequest struct {
	Destination string           `json:"destination"`
	StartDate   string           `json:"start_date"`
	EndDate     string           `json:"end_date"`
	Latitude    *float64         `json:"latitude"`
	Longitude   *float64         `json:"longitude"`
	Itinerary   domain.Itinerary `json:"itinerary"`
}

type updateTripRequest struct {
	Destination *string          `json:"destination"`
	StartDate   *string          `json:"start_date"`
	EndDate     *string          `json:"end_date"`
	Latitude    *float64         `json:"latitude"`
	Longitude   *float64         `json:"longitude"`
	Itinerary   domain.Itinerary `json:"itinerary"`
}

type tripResponse struct {
	ID          int64            `json:"id"`
	Destination string           `json:"destination"`
	StartDate   time.Time        `json:"start_date"`
	EndDate     time.Time        `json:"end_date"`
	Latitude    *float64         `json:"latitude"`
	Longitude   *float64         `json:"longitude"`
	Itinerary   domain.Itinerary `json:"itinerary"`
}

type createTripResponse struct {
	Message string       `json:"message"`
	Trip    tripResponse `json:"trip"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toTripResponse(t *domain.Trip) tripResponse {
	return tripResponse{
		ID:          t.ID,
		Destination: t.Destination,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Latitude:    t.Latitude,
		Longitude:   t.Longitude,
		Itinerary:   t.Itinerary,
	}
}

// createTripEnvelope tolerates the legacy payload shape where the trip fields
// arrive nested under a "create_trip" wrapper key. The shim is deliberate
// compatibility with existing clients; both shapes are handled identically.
type createTripEnvelope struct {
	CreateTrip *createTripRequest `json:"create_trip"`
}

// bindCreateTrip decodes the request body, accepting either the bare payload
// or the wrapper-key form.
func bindCreateTrip(c echo.Context) (*createTripRequest, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(body) == 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "no JSON data provided")
	}

	var envelope createTripEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if envelope.CreateTrip != nil {
		return envelope.CreateTrip, nil
	}

	var req createTripRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return &req, nil
}

func (r *createTripRequest) toInput() ports.CreateTripInput {
	return ports.CreateTripInput{
		Destination: r.Destination,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Itinerary:   r.Itinerary,
	}
}

func (r *updateTripRequest) toPatch() ports.TripPatch {
	return ports.TripPatch{
		Destination: r.Destination,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Itinerary:   r.Itinerary,
	}
}
