package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/victorivanov/famhub/internal/redis"
)

func TestRateLimitMiddleware(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClient("redis://" + mr.Addr())
	if err != nil {
		t.Fatalf("connecting to miniredis: %v", err)
	}
	defer client.Close()

	e := echo.New()
	handler := RateLimitMiddleware(client, 2, time.Minute)(func(c echo.Context) error {
		return OK(c, http.StatusOK, echo.Map{"ok": true})
	})

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/channels", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/api/v1/channels")
		if err := handler(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return rec
	}

	for i := 0; i < 2; i++ {
		rec := do()
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected status %d, got %d", i+1, http.StatusOK, rec.Code)
		}
		if rec.Header().Get("X-RateLimit-Limit") != "2" {
			t.Errorf("request %d: X-RateLimit-Limit = %q, want %q", i+1, rec.Header().Get("X-RateLimit-Limit"), "2")
		}
	}

	rec := do()
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status %d after limit, got %d", http.StatusTooManyRequests, rec.Code)
	}
	if rec.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Errorf("X-RateLimit-Remaining = %q, want %q", rec.Header().Get("X-RateLimit-Remaining"), "0")
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header on limited response")
	}

	var resp testEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Success {
		t.Error("expected success false")
	}
	if resp.Error == nil || resp.Error.Code != "RATE_LIMITED" {
		t.Errorf("expected error code RATE_LIMITED, got %+v", resp.Error)
	}
}

func TestRateLimitMiddleware_WindowReset(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClient("redis://" + mr.Addr())
	if err != nil {
		t.Fatalf("connecting to miniredis: %v", err)
	}
	defer client.Close()

	e := echo.New()
	handler := RateLimitMiddleware(client, 1, time.Minute)(func(c echo.Context) error {
		return OK(c, http.StatusOK, echo.Map{"ok": true})
	})

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/channels", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/api/v1/channels")
		if err := handler(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return rec
	}

	if rec := do(); rec.Code != http.StatusOK {
		t.Fatalf("first request: expected %d, got %d", http.StatusOK, rec.Code)
	}
	if rec := do(); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected %d, got %d", http.StatusTooManyRequests, rec.Code)
	}

	mr.FastForward(time.Minute + time.Second)

	if rec := do(); rec.Code != http.StatusOK {
		t.Fatalf("after window reset: expected %d, got %d", http.StatusOK, rec.Code)
	}
}
