package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers bad signatures, malformed tokens and expiry.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrStaleToken means the token was valid but its version has been
	// superseded by a later login/logout/password change.
	ErrStaleToken = errors.New("token no longer valid, log in again")
)

// Claims embeds the account identifier and the token version the session
// was issued under. The version is what lets one write invalidate every
// outstanding session at once.
type Claims struct {
	UserID       string `json:"id"`
	TokenVersion int    `json:"version"`
	jwt.RegisteredClaims
}

// TokenSigner is the signing capability boundary. Handlers only ever see
// this interface, so the scheme can be swapped without touching them.
type TokenSigner interface {
	Sign(userID string, tokenVersion int) (string, error)
	Parse(token string) (*Claims, error)
}

// JWTSigner signs HS256 tokens with a shared secret and fixed TTL.
type JWTSigner struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTSigner(secret []byte, ttl time.Duration) *JWTSigner {
	return &JWTSigner{secret: secret, ttl: ttl}
}

func (s *JWTSigner) Sign(userID string, tokenVersion int) (string, error) {
	claims := Claims{
		UserID:       userID,
		TokenVersion: tokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTSigner) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// TTL reports the configured token lifetime.
func (s *JWTSigner) TTL() time.Duration {
	return s.ttl
}
