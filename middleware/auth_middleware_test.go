package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/visioncraft/agencybackend/auth"
	"github.com/visioncraft/agencybackend/models"
	"github.com/visioncraft/agencybackend/utils"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestExtractToken_BearerHeader(t *testing.T) {
	c, _ := testContext(t)
	c.Request.Header.Set("Authorization", "Bearer abc123")

	if got := ExtractToken(c); got != "abc123" {
		t.Fatalf("ExtractToken = %q, want %q", got, "abc123")
	}
}

func TestExtractToken_Cookie(t *testing.T) {
	c, _ := testContext(t)
	c.Request.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: "cookietoken"})

	if got := ExtractToken(c); got != "cookietoken" {
		t.Fatalf("ExtractToken = %q, want %q", got, "cookietoken")
	}
}

func TestExtractToken_HeaderWinsOverCookie(t *testing.T) {
	c, _ := testContext(t)
	c.Request.Header.Set("Authorization", "Bearer fromheader")
	c.Request.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: "fromcookie"})

	if got := ExtractToken(c); got != "fromheader" {
		t.Fatalf("ExtractToken = %q, want %q", got, "fromheader")
	}
}

func TestExtractToken_Missing(t *testing.T) {
	c, _ := testContext(t)

	if got := ExtractToken(c); got != "" {
		t.Fatalf("ExtractToken = %q, want empty", got)
	}
}

func TestProtect_NoToken(t *testing.T) {
	c, w := testContext(t)

	// The middleware rejects before touching storage when no token is
	// presented.
	Protect(nil, auth.NewJWTSigner([]byte("secret"), time.Hour))(c)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status code: got %d want %d", w.Code, http.StatusUnauthorized)
	}
	if !c.IsAborted() {
		t.Fatalf("expected aborted chain")
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body["status"] != "fail" {
		t.Fatalf("status field: got %v want %q", body["status"], "fail")
	}
}

func TestProtect_InvalidToken(t *testing.T) {
	c, w := testContext(t)
	c.Request.Header.Set("Authorization", "Bearer not-a-real-token")

	Protect(nil, auth.NewJWTSigner([]byte("secret"), time.Hour))(c)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status code: got %d want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestProtect_WrongSecret(t *testing.T) {
	c, w := testContext(t)

	tok, err := auth.NewJWTSigner([]byte("other-secret"), time.Hour).Sign("656a1b2c3d4e5f6a7b8c9d0e", 0)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}
	c.Request.Header.Set("Authorization", "Bearer "+tok)

	Protect(nil, auth.NewJWTSigner([]byte("secret"), time.Hour))(c)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status code: got %d want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestRestrictTo_AllowsMatchingRole(t *testing.T) {
	c, w := testContext(t)
	c.Set(CurrentUserKey, models.User{Role: models.RoleAdmin})

	RestrictTo(models.RoleAdmin)(c)

	if c.IsAborted() {
		t.Fatalf("admin should pass the role gate, got status %d", w.Code)
	}
}

func TestRestrictTo_RejectsOtherRole(t *testing.T) {
	c, w := testContext(t)
	c.Set(CurrentUserKey, models.User{Role: models.RoleUser})

	RestrictTo(models.RoleAdmin)(c)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status code: got %d want %d", w.Code, http.StatusForbidden)
	}
}

func TestRestrictTo_RequiresResolvedUser(t *testing.T) {
	c, w := testContext(t)

	RestrictTo(models.RoleAdmin)(c)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status code: got %d want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestCurrentUser(t *testing.T) {
	c, _ := testContext(t)

	if _, ok := CurrentUser(c); ok {
		t.Fatalf("expected no user before Protect runs")
	}

	want := models.User{Email: "admin@example.com", Role: models.RoleAdmin}
	c.Set(CurrentUserKey, want)

	got, ok := CurrentUser(c)
	if !ok || got.Email != want.Email {
		t.Fatalf("CurrentUser = (%v, %v), want (%v, true)", got, ok, want)
	}
}
