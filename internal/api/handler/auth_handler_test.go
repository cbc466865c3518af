package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/planventure/planventure-api/internal/core/domain"
	"github.com/planventure/planventure-api/internal/core/ports"
)

type stubAuthService struct {
	registerErr error
	loginErr    error
	lastEmail   string
}

func (s *stubAuthService) Register(_ context.Context, email, password string) (*ports.AuthResult, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	s.lastEmail = email
	return &ports.AuthResult{
		Token: "issued-token",
		User:  &domain.User{ID: 1, Email: email},
	}, nil
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (*ports.AuthResult, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &ports.AuthResult{
		Token: "issued-token",
		User:  &domain.User{ID: 1, Email: email},
	}, nil
}

func (s *stubAuthService) Authenticate(context.Context, string) (*domain.User, error) {
	panic("not used")
}

func newAuthContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)
	c, rec := newAuthContext(t, `{"email":"a@x.com","password":"pw123456"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp registerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "issued-token" {
		t.Fatalf("token missing from response: %+v", resp)
	}
	if resp.User.ID != 1 || resp.User.Email != "a@x.com" {
		t.Fatalf("unexpected user payload: %+v", resp.User)
	}
	if resp.Message == "" {
		t.Fatalf("expected a message")
	}
}

func TestAuthHandler_Register_InvalidEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, _ := newAuthContext(t, `{"email":"not-an-email","password":"pw123456"}`)

	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	for _, body := range []string{`{}`, `{"email":"a@x.com"}`, `{"password":"pw123456"}`} {
		c, _ := newAuthContext(t, body)
		err := h.Register(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400 HTTPError, got %v", body, err)
		}
	}
}

func TestAuthHandler_Register_DuplicatePassesThrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrEmailTaken})
	c, _ := newAuthContext(t, `{"email":"a@x.com","password":"pw123456"}`)

	// Domain errors are returned untouched so the central error handler can
	// map them (409 in this case).
	if err := h.Register(c); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newAuthContext(t, `{"email":"a@x.com","password":"pw123456"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected token in response")
	}
}

func TestAuthHandler_Login_BadCredentialsPassThrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})
	c, _ := newAuthContext(t, `{"email":"a@x.com","password":"wrong"}`)

	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
