package auth

import (
	"context"
	"time"
)

// Identity is what a caller proves about themselves with a session token.
type Identity struct {
	Email string `json:"email"`
}

// JWTService defines operations for issuing and verifying session tokens.
type JWTService interface {
	// IssueToken creates a signed token embedding the identity.
	// Returns ErrMissingEmail when identity.Email is empty.
	IssueToken(ctx context.Context, identity Identity) (string, error)

	// VerifyToken validates the token string and extracts the claims.
	// Returns ErrMissingToken for an empty string, ErrExpiredToken for an
	// expired token and ErrInvalidToken for any other verification failure.
	// Verification is local; it never performs I/O.
	VerifyToken(ctx context.Context, tokenString string) (*Claims, error)

	// TokenLifetime is how long an issued token stays valid.
	TokenLifetime() time.Duration
}

// Claims represents the identity recovered from a verified token.
type Claims struct {
	Email string `json:"email"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}

// Identity returns the identity carried by the claims.
func (c *Claims) Identity() Identity {
	return Identity{Email: c.Email}
}
