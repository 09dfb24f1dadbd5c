package mocks

import (
	"context"
	"time"

	"github.com/phrazzld/travel-blog-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing
type MockJWTService struct {
	// IssueTokenFn allows test cases to mock the IssueToken behavior
	IssueTokenFn func(ctx context.Context, identity auth.Identity) (string, error)

	// VerifyTokenFn allows test cases to mock the VerifyToken behavior
	VerifyTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Default values used when functions aren't explicitly defined
	Token       string
	Err         error
	VerifyErr   error
	Claims      *auth.Claims
	Lifetime    time.Duration
	LastIssued  auth.Identity
	LastToken   string
	VerifyCalls int
}

// Ensure MockJWTService implements auth.JWTService
var _ auth.JWTService = (*MockJWTService)(nil)

// IssueToken implements the auth.JWTService interface
func (m *MockJWTService) IssueToken(ctx context.Context, identity auth.Identity) (string, error) {
	m.LastIssued = identity
	if m.IssueTokenFn != nil {
		return m.IssueTokenFn(ctx, identity)
	}
	return m.Token, m.Err
}

// VerifyToken implements the auth.JWTService interface
func (m *MockJWTService) VerifyToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	m.VerifyCalls++
	m.LastToken = tokenString
	if m.VerifyTokenFn != nil {
		return m.VerifyTokenFn(ctx, tokenString)
	}
	return m.Claims, m.VerifyErr
}

// TokenLifetime implements the auth.JWTService interface.
// It defaults to one hour.
func (m *MockJWTService) TokenLifetime() time.Duration {
	if m.Lifetime == 0 {
		return time.Hour
	}
	return m.Lifetime
}
