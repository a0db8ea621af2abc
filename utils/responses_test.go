package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSuccessEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, http.StatusCreated, gin.H{"data": gin.H{"name": "color grading"}})

	if w.Code != http.StatusCreated {
		t.Fatalf("status code: got %d want %d", w.Code, http.StatusCreated)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body["status"] != "success" {
		t.Fatalf("status field: got %v want %q", body["status"], "success")
	}
	data, ok := body["data"].(map[string]any)
	if !ok || data["name"] != "color grading" {
		t.Fatalf("data payload missing: %v", body)
	}
}

func TestFailEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Fail(c, http.StatusNotFound, "No service found with that ID")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status code: got %d want %d", w.Code, http.StatusNotFound)
	}
	if !c.IsAborted() {
		t.Fatalf("Fail must abort the handler chain")
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body["status"] != "fail" {
		t.Fatalf("status field: got %v want %q", body["status"], "fail")
	}
	if body["message"] != "No service found with that ID" {
		t.Fatalf("message field: got %v", body["message"])
	}
}

func TestSessionCookieLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SetSessionCookie(c, "token-value")

	res := w.Result()
	cookies := res.Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != SessionCookieName || cookie.Value != "token-value" {
		t.Fatalf("cookie mismatch: %v", cookie)
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be httpOnly")
	}

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)

	ClearSessionCookie(c2)

	cleared := w2.Result().Cookies()
	if len(cleared) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cleared))
	}
	if cleared[0].MaxAge != -1 {
		t.Fatalf("cleared cookie MaxAge: got %d want -1", cleared[0].MaxAge)
	}
}
