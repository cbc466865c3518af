package ports

import (
	"context"

	"github.com/planventure/planventure-api/internal/core/domain"
)

// AuthResult is returned after a successful registration or login.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService defines the account and identity use cases.
type AuthService interface {
	// Register creates an account for a normalized email and issues a token.
	Register(ctx context.Context, email, password string) (*AuthResult, error)
	// Login verifies credentials and issues a token. Unknown email and wrong
	// password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// Authenticate resolves a raw bearer token to the persisted user record.
	// Any failure (malformed, expired, user gone) yields a token error.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
