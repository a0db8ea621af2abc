package auth

import (
	"testing"
	"time"
)

func TestNewResetToken(t *testing.T) {
	t.Parallel()

	plain, hash, expiry, err := NewResetToken()
	if err != nil {
		t.Fatalf("NewResetToken error: %v", err)
	}

	if len(plain) != 64 {
		t.Fatalf("plaintext length: got %d want 64 hex chars", len(plain))
	}
	if hash == plain {
		t.Fatalf("stored hash must not equal the plaintext")
	}
	if got := HashResetToken(plain); got != hash {
		t.Fatalf("HashResetToken(plain) = %q, want %q", got, hash)
	}

	until := time.Until(expiry)
	if until <= 0 || until > ResetTokenTTL {
		t.Fatalf("expiry %v outside (now, now+%v]", expiry, ResetTokenTTL)
	}
}

func TestNewResetToken_Unique(t *testing.T) {
	t.Parallel()

	p1, _, _, err := NewResetToken()
	if err != nil {
		t.Fatalf("NewResetToken error: %v", err)
	}
	p2, _, _, err := NewResetToken()
	if err != nil {
		t.Fatalf("NewResetToken error: %v", err)
	}
	if p1 == p2 {
		t.Fatalf("expected unique tokens")
	}
}

func TestHashResetToken_Deterministic(t *testing.T) {
	t.Parallel()

	if HashResetToken("abc") != HashResetToken("abc") {
		t.Fatalf("same input must hash identically")
	}
	if HashResetToken("abc") == HashResetToken("abd") {
		t.Fatalf("different inputs must not collide")
	}
}
