package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"club-calendar-service/internal/metrics"
)

func TestLoggingMiddlewarePropagatesRequestID(t *testing.T) {
	var seen string
	inner := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		seen = RequestIDFromContext(r.Context())
		w.WriteHeader(nethttp.StatusNoContent)
	})

	handler := LoggingMiddleware(nil, metrics.NewRecorder(), inner)
	req := httptest.NewRequest(nethttp.MethodGet, "/calendar", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if seen != "abc-123" {
		t.Fatalf("expected the incoming request id, got %q", seen)
	}
	if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected the id echoed back, got %q", got)
	}
	if rec.Code != nethttp.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestLoggingMiddlewareGeneratesRequestID(t *testing.T) {
	inner := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {})

	handler := LoggingMiddleware(nil, nil, inner)
	req := httptest.NewRequest(nethttp.MethodGet, "/calendar", nil)
	req.Header.Set("X-Request-ID", "not a valid id!")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	got := rec.Header().Get("X-Request-ID")
	if got == "" || got == "not a valid id!" {
		t.Fatalf("expected a generated id, got %q", got)
	}
}

func TestSanitizeRequestID(t *testing.T) {
	if got := sanitizeRequestID("req_42-a"); got != "req_42-a" {
		t.Fatalf("valid id rewritten to %q", got)
	}
	if got := sanitizeRequestID(""); got == "" {
		t.Fatalf("empty id should be replaced")
	}
	if got := sanitizeRequestID("has spaces"); got == "has spaces" {
		t.Fatalf("invalid id should be replaced")
	}
}
