package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func rateLimitedEcho(cfg RateLimitConfig) *echo.Echo {
	e := echo.New()
	e.Use(RateLimit(cfg))
	e.GET("/fhir/Patient", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	return e
}

func doFrom(e *echo.Echo, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/fhir/Patient", nil)
	req.RemoteAddr = ip + ":1234"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_AllowsBurst(t *testing.T) {
	e := rateLimitedEcho(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 3})
	for i := 0; i < 3; i++ {
		if rec := doFrom(e, "10.0.0.1"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, rec.Code)
		}
	}
}

func TestRateLimit_RejectsOverBurst(t *testing.T) {
	e := rateLimitedEcho(RateLimitConfig{RequestsPerSecond: 0.5, BurstSize: 1})
	if rec := doFrom(e, "10.0.0.2"); rec.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", rec.Code)
	}

	rec := doFrom(e, "10.0.0.2")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if ra := rec.Header().Get("Retry-After"); ra != "2" {
		t.Errorf("expected Retry-After 2, got %q", ra)
	}
	if rem := rec.Header().Get("X-RateLimit-Remaining"); rem != "0" {
		t.Errorf("expected X-RateLimit-Remaining 0, got %q", rem)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "application/fhir+json" {
		t.Errorf("expected FHIR content type, got %q", ct)
	}
	code, _ := outcomeDiagnostics(t, rec.Body.Bytes())
	if code != "throttled" {
		t.Errorf("expected throttled issue, got %s", code)
	}
}

func TestRateLimit_KeysByClient(t *testing.T) {
	e := rateLimitedEcho(RateLimitConfig{RequestsPerSecond: 0.1, BurstSize: 1})
	if rec := doFrom(e, "10.0.0.3"); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec := doFrom(e, "10.0.0.4"); rec.Code != http.StatusOK {
		t.Errorf("expected a different client to have its own budget, got %d", rec.Code)
	}
}

func TestRetryAfterSeconds(t *testing.T) {
	tests := []struct {
		delay time.Duration
		want  int
	}{
		{0, 1},
		{300 * time.Millisecond, 1},
		{1500 * time.Millisecond, 2},
		{10 * time.Second, 10},
	}
	for _, tt := range tests {
		if got := retryAfterSeconds(tt.delay); got != tt.want {
			t.Errorf("retryAfterSeconds(%v) = %d, want %d", tt.delay, got, tt.want)
		}
	}
}

func TestRateLimit_FallsBackToDefaults(t *testing.T) {
	e := rateLimitedEcho(RateLimitConfig{})
	for i := 0; i < DefaultRateLimitConfig().BurstSize; i++ {
		if rec := doFrom(e, "10.0.0.5"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200 within the default burst, got %d", i, rec.Code)
		}
	}
	rec := doFrom(e, "10.0.0.5")
	if got := rec.Header().Get("X-RateLimit-Limit"); got != "100" {
		t.Errorf("expected default limit 100, got %q", got)
	}
}
