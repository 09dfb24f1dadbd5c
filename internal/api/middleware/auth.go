package middleware

import (
	"errors"
	"net/http"

	"github.com/phrazzld/travel-blog-api/internal/api/shared"
	"github.com/phrazzld/travel-blog-api/internal/service/auth"
)

// Messages returned by the authentication gate.
const (
	UnauthorizedMessage = "unauthorized access"
	ForbiddenMessage    = "forbidden access"
)

// AuthMiddleware provides cookie-based JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate verifies the session token in the token cookie and stores
// the claims in the request context. A missing token is answered with 401
// and any verification failure with 403; in both cases next is not called.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if cookie, err := r.Cookie(shared.TokenCookieName); err == nil {
			token = cookie.Value
		}

		claims, err := m.jwtService.VerifyToken(r.Context(), token)
		if err != nil {
			if errors.Is(err, auth.ErrMissingToken) {
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, UnauthorizedMessage, err)
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, ForbiddenMessage, err,
				shared.WithElevatedLogLevel())
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithClaims(r.Context(), claims)))
	})
}

// GetClaims extracts the verified claims from the request context.
// Returns the claims and a boolean indicating if they were found.
func GetClaims(r *http.Request) (*auth.Claims, bool) {
	return shared.GetClaims(r.Context())
}
