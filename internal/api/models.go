package api

import "time"

// TokenRequest defines the payload for the token issue endpoint.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// TokenResponse is returned once the session cookie has been set.
// The token itself only travels in the HttpOnly cookie.
type TokenResponse struct {
	Success   bool      `json:"success"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SignOutResponse is returned once the session cookie has been cleared.
type SignOutResponse struct {
	Success bool `json:"success"`
}
