package token

import (
	"errors"
	"testing"
	"time"

	"riess-auth/internal/user"
)

func newTestService(t *testing.T, now time.Time) *Service {
	t.Helper()
	svc, err := NewService("test-secret", "riess-auth", time.Hour)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	svc.now = func() time.Time { return now }
	return svc
}

func TestIssueAndParse(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, now)

	u := &user.User{ID: "user-123", Email: "alice@example.com"}
	raw, err := svc.Issue(u)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := svc.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "user-123" {
		t.Fatalf("expected subject user-123, got %q", claims.Subject)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("expected email claim, got %q", claims.Email)
	}
	if !claims.ExpiresAt.Time.Equal(now.Add(time.Hour)) {
		t.Fatalf("expected expiry one hour out, got %v", claims.ExpiresAt.Time)
	}
}

func TestParseRejectsExpired(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, now)

	raw, err := svc.Issue(&user.User{ID: "user-123"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	svc.now = func() time.Time { return now.Add(2 * time.Hour) }
	if _, err := svc.Parse(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, now)

	raw, err := svc.Issue(&user.User{ID: "user-123"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other, err := NewService("other-secret", "riess-auth", time.Hour)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	other.now = svc.now
	if _, err := other.Parse(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIssueRequiresUser(t *testing.T) {
	svc := newTestService(t, time.Now())
	if _, err := svc.Issue(nil); err == nil {
		t.Fatal("expected error for nil user")
	}
	if _, err := svc.Issue(&user.User{}); err == nil {
		t.Fatal("expected error for user without id")
	}
}

func TestNewServiceRequiresSecret(t *testing.T) {
	if _, err := NewService("", "riess-auth", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
}
