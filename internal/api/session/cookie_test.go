package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func newContext() (echo.Context, *httptest.ResponseRecorder, *http.Request) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/signIn", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec, req
}

func TestCarrier_Attach(t *testing.T) {
	carrier := NewCarrier("session_token", time.Hour, false)
	c, rec, _ := newContext()

	carrier.Attach(c, "tok123")

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != "session_token" || cookie.Value != "tok123" {
		t.Fatalf("unexpected cookie: %+v", cookie)
	}
	if !cookie.HttpOnly {
		t.Fatalf("cookie must be HttpOnly")
	}
	if cookie.MaxAge != 3600 {
		t.Fatalf("expected MaxAge 3600, got %d", cookie.MaxAge)
	}
}

func TestCarrier_Clear(t *testing.T) {
	carrier := NewCarrier("session_token", time.Hour, false)
	c, rec, _ := newContext()

	carrier.Clear(c)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Fatalf("expected expiring cookie, got %+v", cookie)
	}
}

func TestCarrier_Extract(t *testing.T) {
	carrier := NewCarrier("session_token", time.Hour, false)
	c, _, req := newContext()
	req.AddCookie(&http.Cookie{Name: "session_token", Value: "tok123"})

	token, err := carrier.Extract(c)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if token != "tok123" {
		t.Fatalf("expected tok123, got %s", token)
	}
}

func TestCarrier_Extract_Absent(t *testing.T) {
	carrier := NewCarrier("session_token", time.Hour, false)
	c, _, _ := newContext()

	if _, err := carrier.Extract(c); !errors.Is(err, ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
}

// A token attached to the outgoing response must never satisfy
// extraction: the carrier reads the incoming request only.
func TestCarrier_Extract_IgnoresResponse(t *testing.T) {
	carrier := NewCarrier("session_token", time.Hour, false)
	c, rec, _ := newContext()

	carrier.Attach(c, "tok123")
	if !strings.Contains(rec.Header().Get("Set-Cookie"), "tok123") {
		t.Fatalf("expected Set-Cookie on the response")
	}

	if _, err := carrier.Extract(c); !errors.Is(err, ErrNoToken) {
		t.Fatalf("expected ErrNoToken when only the response carries the token, got %v", err)
	}
}
