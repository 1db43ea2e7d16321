package domain

import "time"

// Auth event kinds recorded in the audit trail.
const (
	EventSignUp  = "signup"
	EventSignIn  = "signin"
	EventSignOut = "signout"
)

// AuthEvent represents one authentication action taken by a user.
type AuthEvent struct {
	UserID string
	Kind   string
	At     time.Time
}
