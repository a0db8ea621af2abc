package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookieName identifies the httpOnly cookie mirroring the bearer
// token.
const SessionCookieName = "jwt"

// Success writes the standard success envelope.
func Success(c *gin.Context, code int, data gin.H) {
	body := gin.H{"status": "success"}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(code, body)
}

// Fail writes the standard failure envelope and aborts the handler chain.
func Fail(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"status": "fail", "message": message})
}

// SetSessionCookie mirrors the freshly issued token into an httpOnly
// cookie. Secure outside development.
func SetSessionCookie(c *gin.Context, token string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(CookieTTL()),
		HttpOnly: true,
		Secure:   IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie replaces the session cookie with an already-expired
// placeholder so clients drop it.
func ClearSessionCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "loggedout",
		Path:     "/",
		Expires:  time.Now().Add(10 * time.Second),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}
