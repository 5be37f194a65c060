package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndParse_RoundTrip(t *testing.T) {
	iss := NewIssuer("ong-server", "test-secret", time.Minute)

	token, exp, err := iss.IssueAccess("james@gmail.com", "USER")
	if err != nil {
		t.Fatalf("IssueAccess err: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if !exp.After(time.Now()) {
		t.Fatalf("expiry in the past: %v", exp)
	}

	claims, err := iss.Parse(token)
	if err != nil {
		t.Fatalf("Parse err: %v", err)
	}
	if got := Subject(claims); got != "james@gmail.com" {
		t.Fatalf("sub mismatch: got %q", got)
	}
	if role, _ := claims["role"].(string); role != "USER" {
		t.Fatalf("role mismatch: got %q", role)
	}
}

func TestParse_RejectsWrongSecret(t *testing.T) {
	a := NewIssuer("ong-server", "secret-a", time.Minute)
	b := NewIssuer("ong-server", "secret-b", time.Minute)

	token, _, err := a.IssueAccess("user@example.com", "USER")
	if err != nil {
		t.Fatalf("IssueAccess err: %v", err)
	}
	if _, err := b.Parse(token); err == nil {
		t.Fatal("expected error for token signed with another secret")
	}
}

func TestParse_RejectsWrongIssuer(t *testing.T) {
	a := NewIssuer("issuer-a", "shared", time.Minute)
	b := NewIssuer("issuer-b", "shared", time.Minute)

	token, _, err := a.IssueAccess("user@example.com", "USER")
	if err != nil {
		t.Fatalf("IssueAccess err: %v", err)
	}
	if _, err := b.Parse(token); err == nil {
		t.Fatal("expected error for mismatched issuer")
	}
}

func TestParse_RejectsExpired(t *testing.T) {
	iss := NewIssuer("ong-server", "test-secret", time.Minute)
	iss.AccessTTL = -2 * time.Minute

	token, _, err := iss.IssueAccess("user@example.com", "USER")
	if err != nil {
		t.Fatalf("IssueAccess err: %v", err)
	}
	if _, err := iss.Parse(token); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestParse_RejectsGarbage(t *testing.T) {
	iss := NewIssuer("ong-server", "test-secret", time.Minute)
	if _, err := iss.Parse("not-a-jwt"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
