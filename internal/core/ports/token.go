package ports

import (
	"context"
	"time"
)

// TokenClaims is the verified content of a session token.
type TokenClaims struct {
	UserID    string
	TokenID   string
	ExpiresAt time.Time
}

// TokenIssuer creates and verifies signed, time-limited session tokens.
type TokenIssuer interface {
	Issue(userID string) (string, error)
	// Verify returns domain.ErrTokenExpired or domain.ErrTokenInvalid on
	// failure; it never panics on attacker-controlled input.
	Verify(token string) (*TokenClaims, error)
}

// TokenRevoker tracks tokens invalidated before their natural expiry.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
