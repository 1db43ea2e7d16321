package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/fortune-labs/task-tracker/internal/core/domain"
	"github.com/fortune-labs/task-tracker/internal/core/ports"
)

// EventSink receives auth events for asynchronous audit processing.
// Enqueue must never block the calling request.
type EventSink interface {
	Enqueue(event ports.AuthEventInput)
}

// AuthService implements sign-up, sign-in and sign-out on top of the
// user store, password hasher and token issuer.
type AuthService struct {
	users   ports.UserRepository
	hasher  *Hasher
	tokens  ports.TokenIssuer
	revoker ports.TokenRevoker // optional
	events  EventSink          // optional
	log     zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	hasher *Hasher,
	tokens ports.TokenIssuer,
	revoker ports.TokenRevoker,
	events EventSink,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:   users,
		hasher:  hasher,
		tokens:  tokens,
		revoker: revoker,
		events:  events,
		log:     log,
	}
}

// SignUp registers a new account and returns a session token for it.
// The combined username/email lookup is only a fast-path check; the
// store's unique indexes are the authoritative guard against a
// concurrent duplicate sign-up, and a constraint violation surfaces as
// the same domain.ErrUserExists.
func (s *AuthService) SignUp(ctx context.Context, username, email, password string) (string, error) {
	if username == "" || email == "" || password == "" {
		return "", domain.ErrMissingFields
	}

	existing, err := s.users.FindByUsernameOrEmail(ctx, username, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return "", fmt.Errorf("signup lookup: %w", err)
	}
	if existing != nil {
		return "", domain.ErrUserExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.log.Info().Str("user_id", created.ID).Str("username", username).Msg("user registered")
	s.emit(created.ID, domain.EventSignUp)

	return token, nil
}

// SignIn authenticates by email and password and returns a fresh token.
// An unknown email and a wrong password both return
// domain.ErrInvalidCredentials so account existence never leaks; the two
// cases are distinguished only in server logs.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Debug().Str("email", email).Msg("signin for unknown email")
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("signin lookup: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.log.Debug().Str("user_id", user.ID).Msg("signin with wrong password")
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("user signed in")
	s.emit(user.ID, domain.EventSignIn)

	return token, nil
}

// SignOut invalidates the presented session token. It is idempotent:
// an absent, malformed or already-expired token still succeeds, since
// the client-side carrier is cleared either way. With a revocation
// store configured, a valid token's ID is revoked until its natural
// expiry so it cannot be replayed.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		// Expired or garbage tokens need no revocation.
		s.log.Debug().Err(err).Msg("signout with unusable token")
		return nil
	}

	if s.revoker != nil && claims.TokenID != "" {
		if err := s.revoker.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
			s.log.Warn().Err(err).Str("user_id", claims.UserID).Msg("token revocation failed")
		}
	}

	s.log.Info().Str("user_id", claims.UserID).Msg("user signed out")
	s.emit(claims.UserID, domain.EventSignOut)

	return nil
}

func (s *AuthService) emit(userID, kind string) {
	if s.events == nil {
		return
	}
	s.events.Enqueue(ports.AuthEventInput{
		UserID: userID,
		Kind:   kind,
		At:     time.Now().UTC(),
	})
}
