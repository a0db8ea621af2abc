package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// ResetTokenTTL is the window in which a password-reset token can be
// consumed.
const ResetTokenTTL = 10 * time.Minute

// NewResetToken generates a high-entropy reset token. The plaintext is
// returned to the caller exactly once; only its hash is ever stored.
func NewResetToken() (plain string, hash string, expiry time.Time, err error) {
	buf := make([]byte, 32)
	if _, err = rand.Read(buf); err != nil {
		return "", "", time.Time{}, fmt.Errorf("generate reset token: %w", err)
	}
	plain = hex.EncodeToString(buf)
	return plain, HashResetToken(plain), time.Now().UTC().Add(ResetTokenTTL), nil
}

// HashResetToken maps a presented token onto its stored form.
func HashResetToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}
