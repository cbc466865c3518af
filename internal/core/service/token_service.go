package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/planventure/planventure-api/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// TokenService issues and verifies signed, time-limited identity tokens.
// Tokens are stateless HS256 JWTs: there is no revocation list, compromise
// is bounded by the TTL or a signing-key rotation.
type TokenService struct {
	secret     []byte
	defaultTTL time.Duration
}

// NewTokenService creates a TokenService. The signing secret is process-wide
// configuration loaded once at startup. A non-positive ttl falls back to one
// hour.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), defaultTTL: ttl}
}

type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Issue signs a token for the user with the service-wide default TTL.
// Subject carries the user id in decimal string form.
func (s *TokenService) Issue(userID int64, email string) (string, error) {
	return s.IssueWithTTL(userID, email, s.defaultTTL)
}

// IssueWithTTL signs a token expiring ttl from now.
func (s *TokenService) IssueWithTTL(userID int64, email string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	now := time.Now()
	claims := tokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry, returning the embedded identity.
// Failure modes: domain.ErrMissingToken for an empty token,
// domain.ErrExpiredToken past expiry, domain.ErrInvalidToken for anything
// malformed or signed with the wrong key.
func (s *TokenService) Verify(token string) (userID int64, email string, err error) {
	if token == "" {
		return 0, "", domain.ErrMissingToken
	}

	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, "", domain.ErrExpiredToken
		}
		return 0, "", domain.ErrInvalidToken
	}
	if !parsed.Valid {
		return 0, "", domain.ErrInvalidToken
	}

	userID, err = strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", domain.ErrInvalidToken
	}
	return userID, claims.Email, nil
}
