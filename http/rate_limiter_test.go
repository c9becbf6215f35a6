package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiter_AllowsUpToCapacity(t *testing.T) {

	limiter := NewRateLimiter(3, time.Minute)
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		if allowed, _ := limiter.Allow("10.0.0.1"); !allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	allowed, retryAfter := limiter.Allow("10.0.0.1")
	if allowed {
		t.Errorf("expected the bucket to be empty")
	}
	if retryAfter <= 0 {
		t.Errorf("expected a positive retry hint, got %v", retryAfter)
	}
}

func TestRateLimiter_ClientsAreIndependent(t *testing.T) {

	limiter := NewRateLimiter(1, time.Minute)
	defer limiter.Stop()

	if allowed, _ := limiter.Allow("10.0.0.1"); !allowed {
		t.Fatalf("first client should be allowed")
	}
	if allowed, _ := limiter.Allow("10.0.0.1"); allowed {
		t.Errorf("first client should be limited")
	}
	if allowed, _ := limiter.Allow("10.0.0.2"); !allowed {
		t.Errorf("second client should not share the first client's bucket")
	}
}

func TestRateLimitMiddleware_TooManyRequests(t *testing.T) {

	limiter := NewRateLimiter(1, time.Minute)
	defer limiter.Stop()

	handler := RateLimitMiddleware(limiter, http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Errorf("expected a Retry-After header")
	}
}
