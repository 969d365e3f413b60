package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestMemoryRateLimit(t *testing.T) {
	r := gin.New()
	r.GET("/test", MemoryRateLimit(2, time.Minute), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != 200 || codes[1] != 200 || codes[2] != 429 {
		t.Fatalf("codes = %v; want [200 200 429]", codes)
	}

	// another client has its own window
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	if w.Code != 200 {
		t.Fatalf("second client got %d", w.Code)
	}
}

func TestMemoryRateLimitWindowResets(t *testing.T) {
	r := gin.New()
	r.GET("/test", MemoryRateLimit(1, 20*time.Millisecond), func(c *gin.Context) {
		c.Status(200)
	})

	do := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "10.0.0.3:1234"
		r.ServeHTTP(w, req)
		return w.Code
	}

	if do() != 200 || do() != 429 {
		t.Fatalf("limit not applied")
	}
	time.Sleep(30 * time.Millisecond)
	if got := do(); got != 200 {
		t.Fatalf("after window got %d; want 200", got)
	}
}
