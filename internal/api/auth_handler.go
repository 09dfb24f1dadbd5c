package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/travel-blog-api/internal/api/shared"
	"github.com/phrazzld/travel-blog-api/internal/platform/logger"
	"github.com/phrazzld/travel-blog-api/internal/service/auth"
)

// AuthHandler handles session token requests.
type AuthHandler struct {
	jwtService auth.JWTService
	cookies    CookieOptions
	clock      func() time.Time
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(jwtService auth.JWTService, cookies CookieOptions) *AuthHandler {
	return &AuthHandler{
		jwtService: jwtService,
		cookies:    cookies,
		clock:      time.Now,
	}
}

// IssueToken handles POST /jwt. It signs a token for the posted email and
// sets it as the session cookie.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req TokenRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	token, err := h.jwtService.IssueToken(r.Context(), auth.Identity{Email: req.Email})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to issue token")
		return
	}

	expiresAt := h.clock().Add(h.jwtService.TokenLifetime()).UTC()
	SetTokenCookie(w, h.cookies, token, expiresAt)

	log.Info("session token issued", slog.Time("expires_at", expiresAt))
	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{
		Success:   true,
		ExpiresAt: expiresAt,
	})
}

// SignOut handles POST /signOut. Tokens are stateless, so signing out only
// clears the cookie; it always succeeds.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	ClearTokenCookie(w, h.cookies)
	shared.RespondWithJSON(w, r, http.StatusOK, SignOutResponse{Success: true})
}
