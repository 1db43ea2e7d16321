package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fortune-labs/task-tracker/internal/api/metrics"
	"github.com/fortune-labs/task-tracker/internal/api/session"
	"github.com/fortune-labs/task-tracker/internal/core/domain"
	"github.com/fortune-labs/task-tracker/internal/core/ports"
)

// UserIDKey is the echo context key under which the resolved user id is
// stored for downstream handlers.
const UserIDKey = "user_id"

// Auth is the authorization gate: it extracts the session token from the
// request cookie, verifies it, optionally checks the revocation set, and
// binds the resolved user id into the request context. Every failure is a
// plain 401; the reason (missing, expired, malformed, revoked) is logged
// and counted but never exposed in the response body.
func Auth(carrier *session.Carrier, tokens ports.TokenIssuer, revoker ports.TokenRevoker, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := carrier.Extract(c)
			if err != nil {
				return reject(c, log, "missing", nil)
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				reason := "invalid"
				if errors.Is(err, domain.ErrTokenExpired) {
					reason = "expired"
				}
				return reject(c, log, reason, err)
			}

			if revoker != nil {
				revoked, err := revoker.IsRevoked(c.Request().Context(), claims.TokenID)
				if err != nil {
					// Revocation store outage: fall back to stateless
					// verification rather than rejecting valid sessions.
					log.Warn().Err(err).Msg("revocation check failed")
				} else if revoked {
					return reject(c, log, "revoked", domain.ErrTokenRevoked)
				}
			}

			c.Set(UserIDKey, claims.UserID)
			return next(c)
		}
	}
}

func reject(c echo.Context, log zerolog.Logger, reason string, cause error) error {
	metrics.AuthRejectionsTotal.WithLabelValues(reason).Inc()
	evt := log.Debug().Str("path", c.Path()).Str("reason", reason)
	if cause != nil {
		evt = evt.Err(cause)
	}
	evt.Msg("request rejected by auth gate")
	return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
}
