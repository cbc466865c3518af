package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/planventure/planventure-api/internal/api/middleware"
	"github.com/planventure/planventure-api/internal/core/domain"
	"github.com/planventure/planventure-api/internal/core/ports"
)

type stubTripService struct {
	lastOwnerID int64
	lastInput   ports.CreateTripInput
	lastPatch   ports.TripPatch
	trip        *domain.Trip
	trips       []*domain.Trip
	err         error
}

func (s *stubTripService) Create(_ context.Context, ownerID int64, input ports.CreateTripInput) (*domain.Trip, error) {
	s.lastOwnerID = ownerID
	s.lastInput = input
	if s.err != nil {
		return nil, s.err
	}
	return s.trip, nil
}

func (s *stubTripService) List(_ context.Context, ownerID int64) ([]*domain.Trip, error) {
	s.lastOwnerID = ownerID
	return s.trips, s.err
}

func (s *stubTripService) Get(_ context.Context, ownerID, tripID int64) (*domain.Trip, error) {
	s.lastOwnerID = ownerID
	if s.err != nil {
		return nil, s.err
	}
	return s.trip, nil
}

func (s *stubTripService) Update(_ context.Context, ownerID, tripID int64, patch ports.TripPatch) (*domain.Trip, error) {
	s.lastOwnerID = ownerID
	s.lastPatch = patch
	if s.err != nil {
		return nil, s.err
	}
	return s.trip, nil
}

func (s *stubTripService) Delete(_ context.Context, ownerID, tripID int64) error {
	s.lastOwnerID = ownerID
	return s.err
}

func newTripContext(t *testing.T, method, path, body string, user *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(middleware.UserContextKey, user)
	}
	return c, rec
}

func sampleTrip() *domain.Trip {
	return &domain.Trip{
		ID:          5,
		UserID:      1,
		Destination: "Paris",
		Itinerary:   domain.Itinerary{"day1": domain.DayPlan{}},
	}
}

func TestTripHandler_Create_BarePayload(t *testing.T) {
	svc := &stubTripService{trip: sampleTrip()}
	h := NewTripHandler(svc)
	user := &domain.User{ID: 1, Email: "a@x.com"}

	body := `{"destination":"Paris","start_date":"2024-06-01T00:00:00Z","end_date":"2024-06-03T00:00:00Z"}`
	c, rec := newTripContext(t, http.MethodPost, "/api/trips/", body, user)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.lastOwnerID != 1 {
		t.Fatalf("owner id not taken from context user: %d", svc.lastOwnerID)
	}
	if svc.lastInput.Destination != "Paris" || svc.lastInput.StartDate != "2024-06-01T00:00:00Z" {
		t.Fatalf("payload not forwarded: %+v", svc.lastInput)
	}

	var resp createTripResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Trip.ID != 5 {
		t.Fatalf("created trip missing from response: %+v", resp)
	}
}

func TestTripHandler_Create_WrapperKeyPayload(t *testing.T) {
	svc := &stubTripService{trip: sampleTrip()}
	h := NewTripHandler(svc)
	user := &domain.User{ID: 1}

	body := `{"create_trip":{"destination":"Paris","start_date":"2024-06-01T00:00:00Z","end_date":"2024-06-03T00:00:00Z"}}`
	c, rec := newTripContext(t, http.MethodPost, "/api/trips/", body, user)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	// The wrapper form must be handled identically to the bare one.
	if svc.lastInput.Destination != "Paris" || svc.lastInput.EndDate != "2024-06-03T00:00:00Z" {
		t.Fatalf("wrapper payload not unwrapped: %+v", svc.lastInput)
	}
}

func TestTripHandler_Create_EmptyBody(t *testing.T) {
	h := NewTripHandler(&stubTripService{})
	c, _ := newTripContext(t, http.MethodPost, "/api/trips/", "", &domain.User{ID: 1})

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestTripHandler_Unauthenticated(t *testing.T) {
	h := NewTripHandler(&stubTripService{})
	c, _ := newTripContext(t, http.MethodGet, "/api/trips/", "", nil)

	err := h.List(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError without resolved user, got %v", err)
	}
}

func TestTripHandler_List(t *testing.T) {
	svc := &stubTripService{trips: []*domain.Trip{sampleTrip()}}
	h := NewTripHandler(svc)
	c, rec := newTripContext(t, http.MethodGet, "/api/trips/", "", &domain.User{ID: 1})

	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []tripResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].Destination != "Paris" {
		t.Fatalf("unexpected list payload: %+v", resp)
	}
}

func TestTripHandler_List_EmptyIsArray(t *testing.T) {
	h := NewTripHandler(&stubTripService{trips: nil})
	c, rec := newTripContext(t, http.MethodGet, "/api/trips/", "", &domain.User{ID: 2})

	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty JSON array, got %s", body)
	}
}

func TestTripHandler_Get_NotFoundPassesThrough(t *testing.T) {
	h := NewTripHandler(&stubTripService{err: domain.ErrTripNotFound})
	c, _ := newTripContext(t, http.MethodGet, "/api/trips/5", "", &domain.User{ID: 2})
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.Get(c); err != domain.ErrTripNotFound {
		t.Fatalf("expected ErrTripNotFound, got %v", err)
	}
}

func TestTripHandler_Get_NonNumericID(t *testing.T) {
	h := NewTripHandler(&stubTripService{})
	c, _ := newTripContext(t, http.MethodGet, "/api/trips/abc", "", &domain.User{ID: 1})
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.Get(c); err != domain.ErrTripNotFound {
		t.Fatalf("expected ErrTripNotFound for junk id, got %v", err)
	}
}

func TestTripHandler_Update(t *testing.T) {
	svc := &stubTripService{trip: sampleTrip()}
	h := NewTripHandler(svc)
	c, rec := newTripContext(t, http.MethodPut, "/api/trips/5", `{"destination":"Rome"}`, &domain.User{ID: 1})
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastPatch.Destination == nil || *svc.lastPatch.Destination != "Rome" {
		t.Fatalf("patch not forwarded: %+v", svc.lastPatch)
	}
	if svc.lastPatch.StartDate != nil {
		t.Fatalf("absent fields must stay nil in the patch")
	}

	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message == "" {
		t.Fatalf("expected message body")
	}
}

func TestTripHandler_Delete(t *testing.T) {
	svc := &stubTripService{}
	h := NewTripHandler(svc)
	c, rec := newTripContext(t, http.MethodDelete, "/api/trips/5", "", &domain.User{ID: 1})
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastOwnerID != 1 {
		t.Fatalf("owner id not forwarded: %d", svc.lastOwnerID)
	}
}
