// Package session implements the cookie-based session carrier: it moves
// the signed session token between client and server.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// ErrNoToken indicates the incoming request carried no session cookie.
var ErrNoToken = errors.New("no session token")

// Carrier reads and writes the session cookie. Extraction operates on the
// incoming request only; response state is never consulted.
type Carrier struct {
	name   string
	ttl    time.Duration
	secure bool
}

// NewCarrier returns a Carrier using the given cookie name. The cookie
// lifetime matches the token TTL so both expire together.
func NewCarrier(name string, ttl time.Duration, secure bool) *Carrier {
	return &Carrier{name: name, ttl: ttl, secure: secure}
}

// Attach sets the session cookie on the outgoing response. HttpOnly keeps
// it out of reach of page scripts.
func (cr *Carrier) Attach(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     cr.name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cr.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   cr.secure,
	})
}

// Clear expires the session cookie on the client.
func (cr *Carrier) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     cr.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   cr.secure,
	})
}

// Extract returns the token carried by the incoming request, or ErrNoToken
// when the cookie is absent or empty.
func (cr *Carrier) Extract(c echo.Context) (string, error) {
	cookie, err := c.Cookie(cr.name)
	if err != nil || cookie.Value == "" {
		return "", ErrNoToken
	}
	return cookie.Value, nil
}
