package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fortune-labs/task-tracker/internal/core/domain"
	"github.com/fortune-labs/task-tracker/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsernameOrEmail(_ context.Context, username, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type stubRevoker struct {
	revoked map[string]time.Time
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]time.Time)}
}

func (r *stubRevoker) Revoke(_ context.Context, tokenID string, until time.Time) error {
	r.revoked[tokenID] = until
	return nil
}

func (r *stubRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := r.revoked[tokenID]
	return ok, nil
}

type stubSink struct {
	events []ports.AuthEventInput
}

func (s *stubSink) Enqueue(event ports.AuthEventInput) {
	s.events = append(s.events, event)
}

func newTestAuthService(repo *stubUserRepo, revoker *stubRevoker, sink *stubSink) (*AuthService, *TokenIssuer) {
	tokens := NewTokenIssuer("secret", time.Hour)
	var rv ports.TokenRevoker
	if revoker != nil {
		rv = revoker
	}
	var es EventSink
	if sink != nil {
		es = sink
	}
	svc := NewAuthService(repo, NewHasher(bcrypt.MinCost), tokens, rv, es, zerolog.Nop())
	return svc, tokens
}

func TestAuthService_SignUp_Success(t *testing.T) {
	repo := newStubUserRepo()
	sink := &stubSink{}
	svc, tokens := newTestAuthService(repo, nil, sink)

	token, err := svc.SignUp(context.Background(), "alice", "a@x.com", "p1")
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}

	stored := repo.users[claims.UserID]
	if stored == nil {
		t.Fatalf("token subject %s does not match a stored user", claims.UserID)
	}
	if stored.PasswordHash == "p1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("p1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	if len(sink.events) != 1 || sink.events[0].Kind != domain.EventSignUp {
		t.Fatalf("expected one signup event, got %+v", sink.events)
	}
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo, nil, nil)

	if _, err := svc.SignUp(context.Background(), "alice", "a@x.com", "p1"); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	// Same email, different username: still a conflict.
	if _, err := svc.SignUp(context.Background(), "bob", "a@x.com", "p2"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	// Same username, different email: also a conflict.
	if _, err := svc.SignUp(context.Background(), "alice", "b@x.com", "p2"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_SignUp_MissingFields(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo, nil, nil)

	// A blank field is a validation failure, not a credentials failure.
	cases := [][3]string{
		{"", "a@x.com", "p1"},
		{"alice", "", "p1"},
		{"alice", "a@x.com", ""},
	}
	for _, tc := range cases {
		if _, err := svc.SignUp(context.Background(), tc[0], tc[1], tc[2]); !errors.Is(err, domain.ErrMissingFields) {
			t.Fatalf("SignUp(%q, %q, %q): expected ErrMissingFields, got %v", tc[0], tc[1], tc[2], err)
		}
	}
}

func TestAuthService_SignIn_Success(t *testing.T) {
	repo := newStubUserRepo()
	sink := &stubSink{}
	svc, tokens := newTestAuthService(repo, nil, sink)

	if _, err := svc.SignUp(context.Background(), "carol", "carol@x.com", "s3cret"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	token, err := svc.SignIn(context.Background(), "carol@x.com", "s3cret")
	if err != nil {
		t.Fatalf("SignIn returned error: %v", err)
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if repo.users[claims.UserID] == nil || repo.users[claims.UserID].Username != "carol" {
		t.Fatalf("token subject does not resolve to carol")
	}

	if len(sink.events) != 2 || sink.events[1].Kind != domain.EventSignIn {
		t.Fatalf("expected signup+signin events, got %+v", sink.events)
	}
}

func TestAuthService_SignIn_WrongPasswordAndUnknownEmailIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo, nil, nil)

	if _, err := svc.SignUp(context.Background(), "dave", "dave@x.com", "goodpass"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, wrongPass := svc.SignIn(context.Background(), "dave@x.com", "badpass")
	_, unknown := svc.SignIn(context.Background(), "ghost@x.com", "whatever")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknown, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknown)
	}
}

func TestAuthService_SignOut_Idempotent(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo, nil, nil)

	if err := svc.SignOut(context.Background(), ""); err != nil {
		t.Fatalf("signout with no token: %v", err)
	}
	if err := svc.SignOut(context.Background(), "garbage"); err != nil {
		t.Fatalf("signout with garbage token: %v", err)
	}
}

func TestAuthService_SignOut_RevokesToken(t *testing.T) {
	repo := newStubUserRepo()
	revoker := newStubRevoker()
	svc, tokens := newTestAuthService(repo, revoker, nil)

	token, err := svc.SignUp(context.Background(), "erin", "erin@x.com", "p1")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	if err := svc.SignOut(context.Background(), token); err != nil {
		t.Fatalf("SignOut returned error: %v", err)
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("token should still verify cryptographically: %v", err)
	}
	revoked, _ := revoker.IsRevoked(context.Background(), claims.TokenID)
	if !revoked {
		t.Fatalf("expected token id %s to be revoked", claims.TokenID)
	}
}
