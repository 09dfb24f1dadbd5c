package auth

import "errors"

// Common authentication service errors
var (
	// ErrMissingToken indicates a token was expected but not provided.
	// It maps to an Unauthenticated (401) response.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidToken indicates the token format is invalid or signature doesn't match.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	// It is reported to clients the same way as ErrInvalidToken.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingEmail indicates a token was requested for an identity without an email.
	ErrMissingEmail = errors.New("identity email is required")

	// ErrAccessDenied indicates an authenticated caller asked for another
	// owner's data.
	ErrAccessDenied = errors.New("access denied")
)
