package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/planventure/planventure-api/internal/api/middleware"
	"github.com/planventure/planventure-api/internal/core/domain"
)

// currentUser extracts the identity injected by the Auth middleware. Its
// presence proves the middleware ran; a protected handler reached without it
// is a wiring bug, answered with 401 rather than a panic.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
