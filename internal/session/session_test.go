package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.Path != "/" || !opts.HttpOnly || !opts.Secure {
		t.Fatalf("unexpected defaults %+v", opts)
	}
	if opts.SameSite != http.SameSiteLaxMode {
		t.Fatalf("expected Lax SameSite, got %v", opts.SameSite)
	}
}

func TestGenerateIDIsUnique(t *testing.T) {
	a, err := GenerateID()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := GenerateID()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if a == b {
		t.Fatal("expected distinct session ids")
	}
	if len(a) < 40 {
		t.Fatalf("expected 256 bits of entropy, got %d chars", len(a))
	}
}

func TestSetCookieAppliesSafeDefaults(t *testing.T) {
	w := httptest.NewRecorder()
	SetCookie(w, "sid-1", time.Now().Add(time.Hour), CookieOptions{Secure: true})

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != CookieName || c.Value != "sid-1" {
		t.Fatalf("unexpected cookie %v", c)
	}
	if c.Path != "/" {
		t.Fatalf("expected default path /, got %q", c.Path)
	}
	if !c.HttpOnly {
		t.Fatal("expected HttpOnly default")
	}
}

func TestClearCookie(t *testing.T) {
	w := httptest.NewRecorder()
	ClearCookie(w, CookieOptions{Secure: true})

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge != -1 || cookies[0].Value != "" {
		t.Fatalf("expected deletion cookie, got %v", cookies[0])
	}
}
