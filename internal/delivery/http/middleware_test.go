package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newMiddlewareRouter(middleware gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(middleware)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func TestCORSMiddleware(t *testing.T) {
	t.Run("allows exact origin match", func(t *testing.T) {
		router := newMiddlewareRouter(CORSMiddleware([]string{"http://localhost:3000"}))

		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, "http://localhost:3000")
		}
	})

	t.Run("allows wildcard origins", func(t *testing.T) {
		router := newMiddlewareRouter(CORSMiddleware([]string{"*"}))

		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "https://anywhere.example.com")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://anywhere.example.com" {
			t.Errorf("Access-Control-Allow-Origin = %q, want reflected origin", got)
		}
	})

	t.Run("omits headers for disallowed origins", func(t *testing.T) {
		router := newMiddlewareRouter(CORSMiddleware([]string{"http://localhost:3000"}))

		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Access-Control-Allow-Origin = %q, want empty", got)
		}
	})

	t.Run("short-circuits preflight requests", func(t *testing.T) {
		router := newMiddlewareRouter(CORSMiddleware([]string{"*"}))

		req, _ := http.NewRequest("OPTIONS", "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusNoContent)
		}
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("allows requests within the budget", func(t *testing.T) {
		router := newMiddlewareRouter(RateLimitMiddleware(60))

		for i := 0; i < 5; i++ {
			req, _ := http.NewRequest("GET", "/ping", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("request %d: Status = %d, want %d", i+1, w.Code, http.StatusOK)
			}
		}
	})

	t.Run("evicts stale clients and keeps recent ones", func(t *testing.T) {
		clients := map[string]*clientLimiter{
			"10.0.0.1": {lastSeen: time.Now().Add(-2 * clientStaleAfter)},
			"10.0.0.2": {lastSeen: time.Now()},
		}

		evictStale(clients, time.Now().Add(-clientStaleAfter))

		if _, ok := clients["10.0.0.1"]; ok {
			t.Error("stale client was not evicted")
		}
		if _, ok := clients["10.0.0.2"]; !ok {
			t.Error("recent client was evicted")
		}
	})

	t.Run("rejects requests over the budget", func(t *testing.T) {
		router := newMiddlewareRouter(RateLimitMiddleware(2))

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			req, _ := http.NewRequest("GET", "/ping", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}

		if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
			t.Errorf("first two requests = %v, want both %d", codes[:2], http.StatusOK)
		}
		if codes[2] != http.StatusTooManyRequests {
			t.Errorf("third request = %d, want %d", codes[2], http.StatusTooManyRequests)
		}
	})
}
