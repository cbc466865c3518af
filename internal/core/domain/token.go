package domain

import "errors"

// Token failures map to 401 at the HTTP layer. Expiry is reported separately
// so clients can distinguish "log in again" from "bad request".
var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)
