package utils

import (
	"os"
	"strconv"
	"time"
)

func JWTSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// TokenTTL is the fixed session token lifetime.
func TokenTTL() time.Duration {
	min, _ := strconv.Atoi(os.Getenv("JWT_EXPIRE_MINUTES"))
	if min <= 0 {
		min = 60
	}
	return time.Duration(min) * time.Minute
}

// CookieTTL is the lifetime of the session cookie mirror.
func CookieTTL() time.Duration {
	days, _ := strconv.Atoi(os.Getenv("COOKIE_EXPIRE_DAYS"))
	if days <= 0 {
		days = 7
	}
	return time.Duration(days) * 24 * time.Hour
}

// IsProduction gates the Secure flag on cookies.
func IsProduction() bool {
	return os.Getenv("APP_ENV") == "production"
}
