package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/planventure/planventure-api/internal/core/domain"
)

func testContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestResolveError_DomainMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrEmailTaken, http.StatusConflict},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrMissingToken, http.StatusUnauthorized},
		{domain.ErrExpiredToken, http.StatusUnauthorized},
		{domain.ErrInvalidToken, http.StatusUnauthorized},
		{domain.ErrTripNotFound, http.StatusNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{&domain.ValidationError{Message: "missing required field: destination"}, http.StatusBadRequest},
	}

	for _, tc := range cases {
		code, _ := resolveError(tc.err, zerolog.Nop(), testContext())
		if code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
	}
}

func TestResolveError_ValidationMessageSurfaced(t *testing.T) {
	err := &domain.ValidationError{Message: "missing required field: destination"}
	code, msg := resolveError(err, zerolog.Nop(), testContext())
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if msg != "missing required field: destination" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestResolveError_EchoHTTPErrorPassthrough(t *testing.T) {
	err := echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	code, msg := resolveError(err, zerolog.Nop(), testContext())
	if code != http.StatusUnauthorized || msg != "missing authorization header" {
		t.Fatalf("unexpected mapping: %d %q", code, msg)
	}
}

func TestResolveError_UnexpectedErrorIsGeneric(t *testing.T) {
	code, msg := resolveError(errors.New("pq: connection reset"), zerolog.Nop(), testContext())
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	// Store internals must never leak to the client.
	if msg != "internal server error" {
		t.Fatalf("leaked internal error message: %q", msg)
	}
}
