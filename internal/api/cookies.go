package api

import (
	"net/http"
	"time"

	"github.com/phrazzld/travel-blog-api/internal/api/shared"
)

// CookieOptions controls the security attributes of the session cookie.
// Production deployments serve the front end from another origin, which
// requires SameSite=None and therefore Secure.
type CookieOptions struct {
	Production bool
}

func (o CookieOptions) apply(c *http.Cookie) *http.Cookie {
	c.Path = "/"
	c.HttpOnly = true
	if o.Production {
		c.Secure = true
		c.SameSite = http.SameSiteNoneMode
	} else {
		c.Secure = false
		c.SameSite = http.SameSiteStrictMode
	}
	return c
}

// SetTokenCookie writes the session token cookie.
func SetTokenCookie(w http.ResponseWriter, opts CookieOptions, token string, expires time.Time) {
	http.SetCookie(w, opts.apply(&http.Cookie{
		Name:    shared.TokenCookieName,
		Value:   token,
		Expires: expires,
	}))
}

// ClearTokenCookie instructs the client to discard the session cookie. The
// attributes match SetTokenCookie so browsers replace the same cookie.
func ClearTokenCookie(w http.ResponseWriter, opts CookieOptions) {
	http.SetCookie(w, opts.apply(&http.Cookie{
		Name:    shared.TokenCookieName,
		Value:   "",
		MaxAge:  -1,
		Expires: time.Unix(0, 0),
	}))
}
