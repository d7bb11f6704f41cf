package auth

import (
	"errors"
	"strconv"
	"testing"
	"time"
)

func newTestJWTer(ttl time.Duration) *JWTer {
	return &JWTer{Secret: []byte("test-secret"), Issuer: "ovapal", TTL: ttl}
}

func TestIssueAndParse(t *testing.T) {
	t.Parallel()

	j := newTestJWTer(time.Hour)
	token, err := j.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := j.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("got user %d want 42", claims.UserID)
	}
	if claims.Subject != strconv.Itoa(42) {
		t.Fatalf("subject should mirror user id, got %q", claims.Subject)
	}
	if claims.Issuer != "ovapal" {
		t.Fatalf("got issuer %q", claims.Issuer)
	}
}

func TestParseExpired(t *testing.T) {
	t.Parallel()

	// 负 TTL 加上 60s 容差仍然过期
	j := newTestJWTer(-5 * time.Minute)
	token, err := j.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	_, err = j.Parse(token)
	if !errors.Is(err, ErrExpired) {
		t.Fatalf("want ErrExpired, got %v", err)
	}
}

func TestParseWithinLeeway(t *testing.T) {
	t.Parallel()

	// 刚过期 30s，落在 60s 容差内
	j := newTestJWTer(-30 * time.Second)
	token, err := j.Issue(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := j.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 7 {
		t.Fatalf("got user %d want 7", claims.UserID)
	}
}

func TestParseWrongSecret(t *testing.T) {
	t.Parallel()

	j := newTestJWTer(time.Hour)
	token, err := j.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other := &JWTer{Secret: []byte("another-secret"), Issuer: "ovapal", TTL: time.Hour}
	if _, err := other.Parse(token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestParseWrongIssuer(t *testing.T) {
	t.Parallel()

	j := &JWTer{Secret: []byte("test-secret"), Issuer: "someone-else", TTL: time.Hour}
	token, err := j.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := newTestJWTer(time.Hour).Parse(token); err == nil {
		t.Fatal("expected error for wrong issuer")
	}
}

func TestParseGarbage(t *testing.T) {
	t.Parallel()

	if _, err := newTestJWTer(time.Hour).Parse("not.a.token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
