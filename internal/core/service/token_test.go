package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fortune-labs/task-tracker/internal/core/domain"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue("user_42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.UserID != "user_42" {
		t.Fatalf("expected subject user_42, got %s", claims.UserID)
	}
	if claims.TokenID == "" {
		t.Fatalf("expected a token id")
	}
	if remaining := time.Until(claims.ExpiresAt); remaining <= 0 || remaining > time.Hour {
		t.Fatalf("unexpected expiry: %v", claims.ExpiresAt)
	}
}

func TestTokenIssuer_UniqueTokenIDs(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	first, _ := issuer.Issue("u1")
	second, _ := issuer.Issue("u1")

	c1, err := issuer.Verify(first)
	if err != nil {
		t.Fatalf("verify first: %v", err)
	}
	c2, err := issuer.Verify(second)
	if err != nil {
		t.Fatalf("verify second: %v", err)
	}
	if c1.TokenID == c2.TokenID {
		t.Fatalf("expected distinct token ids, both were %s", c1.TokenID)
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := &TokenIssuer{secret: []byte("secret"), ttl: -time.Minute}

	token, err := issuer.Issue("user_42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := issuer.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret", time.Hour).Issue("user_42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	other := NewTokenIssuer("another-secret", time.Hour)
	if _, err := other.Verify(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenIssuer_Malformed(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := issuer.Verify(token); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Fatalf("token %q: expected ErrTokenInvalid, got %v", token, err)
		}
	}
}

func TestTokenIssuer_RejectsForeignAlgorithm(t *testing.T) {
	// A token signed with a different HMAC variant must not verify even
	// though the key matches.
	claims := jwt.RegisteredClaims{
		Subject:   "user_42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	issuer := NewTokenIssuer("secret", time.Hour)
	if _, err := issuer.Verify(signed); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenIssuer_MissingSubject(t *testing.T) {
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	issuer := NewTokenIssuer("secret", time.Hour)
	if _, err := issuer.Verify(signed); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
