package ports

import "context"

// AuthService orchestrates account registration and session lifecycle.
// SignUp and SignIn return the signed session token; the transport layer
// decides how to carry it to the client.
type AuthService interface {
	SignUp(ctx context.Context, username, email, password string) (string, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	// SignOut is best-effort and idempotent: an absent or invalid token is
	// not an error. When a revocation store is configured the token's ID is
	// revoked until its natural expiry.
	SignOut(ctx context.Context, token string) error
}
