package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/planventure/planventure-api/internal/api/metrics"
	"github.com/planventure/planventure-api/internal/core/domain"
	"github.com/planventure/planventure-api/internal/core/ports"
)

// TripHandler handles HTTP requests for trip operations. The owning user id
// on every call comes from the identity resolved by the Auth middleware.
type TripHandler struct {
	trips ports.TripService
}

func NewTripHandler(trips ports.TripService) *TripHandler {
	return &TripHandler{trips: trips}
}

func tripIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrTripNotFound
	}
	return id, nil
}

// Create handles POST /api/trips/.
//
// @Summary      Create a trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTripRequest  true  "Trip fields, bare or under a create_trip key"
// @Success      201   {object}  createTripResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/trips/ [post]
func (h *TripHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	req, err := bindCreateTrip(c)
	if err != nil {
		return err
	}

	trip, err := h.trips.Create(c.Request().Context(), user.ID, req.toInput())
	if err != nil {
		return err
	}

	metrics.TripsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createTripResponse{
		Message: "Trip created successfully",
		Trip:    toTripResponse(trip),
	})
}

// List handles GET /api/trips/.
//
// @Summary      List the caller's trips
// @Tags         trips
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   tripResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/trips/ [get]
func (h *TripHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	trips, err := h.trips.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	resp := make([]tripResponse, 0, len(trips))
	for _, t := range trips {
		resp = append(resp, toTripResponse(t))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/trips/:id.
//
// @Summary      Get a single trip
// @Tags         trips
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Trip id"
// @Success      200  {object}  tripResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/trips/{id} [get]
func (h *TripHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	tripID, err := tripIDParam(c)
	if err != nil {
		return err
	}

	trip, err := h.trips.Get(c.Request().Context(), user.ID, tripID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTripResponse(trip))
}

// Update handles PUT /api/trips/:id. Only fields present in the payload are
// overwritten; a supplied itinerary replaces the stored one wholesale.
//
// @Summary      Update a trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Trip id"
// @Param        body  body      updateTripRequest  true  "Fields to change"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/trips/{id} [put]
func (h *TripHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	tripID, err := tripIDParam(c)
	if err != nil {
		return err
	}

	var req updateTripRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if _, err := h.trips.Update(c.Request().Context(), user.ID, tripID, req.toPatch()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Trip updated successfully"})
}

// Delete handles DELETE /api/trips/:id. Removal is immediate; no soft delete.
//
// @Summary      Delete a trip
// @Tags         trips
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Trip id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/trips/{id} [delete]
func (h *TripHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	tripID, err := tripIDParam(c)
	if err != nil {
		return err
	}

	if err := h.trips.Delete(c.Request().Context(), user.ID, tripID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Trip deleted successfully"})
}
