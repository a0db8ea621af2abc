package auth

import (
	"testing"
	"time"
)

func TestSignAndParse_Success(t *testing.T) {
	t.Parallel()

	signer := NewJWTSigner([]byte("super-secret"), time.Hour)

	tok, err := signer.Sign("user-123", 4)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	claims, err := signer.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Fatalf("userID mismatch: got %q want %q", claims.UserID, "user-123")
	}
	if claims.TokenVersion != 4 {
		t.Fatalf("tokenVersion mismatch: got %d want 4", claims.TokenVersion)
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	signer := NewJWTSigner([]byte("secret"), -1*time.Second)

	tok, err := signer.Sign("u1", 0)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	_, err = signer.Parse(tok)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewJWTSigner([]byte("right-secret"), time.Hour).Sign("u2", 0)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	_, err = NewJWTSigner([]byte("wrong-secret"), time.Hour).Parse(tok)
	if err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestParse_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := NewJWTSigner([]byte("k"), time.Hour).Parse("not.a.jwt")
	if err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestParse_VersionSurvivesRoundtrip(t *testing.T) {
	t.Parallel()

	signer := NewJWTSigner([]byte("secret"), time.Hour)

	// A token minted under an older version must still parse; version
	// comparison happens at the account, not in the token itself.
	old, err := signer.Sign("u3", 1)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}
	fresh, err := signer.Sign("u3", 2)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	oldClaims, err := signer.Parse(old)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	freshClaims, err := signer.Parse(fresh)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if oldClaims.TokenVersion == freshClaims.TokenVersion {
		t.Fatalf("expected distinct versions, both %d", oldClaims.TokenVersion)
	}
}
