package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	reqctx "schiphol-live/flightboard/internal/context"
	"schiphol-live/flightboard/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNormalizeEndpoint(t *testing.T) {
	tests := map[string]string{
		"/api/v1/flights/departures":                        "/api/v1/flights/departures",
		"/api/v1/flights/12345":                             "/api/v1/flights/{id}",
		"/cycles/0b7e4d6a-3c4f-4b1e-9a77-2f1f1c0d8e21/rows": "/cycles/{id}/rows",
	}
	for in, want := range tests {
		if got := NormalizeEndpoint(in); got != want {
			t.Errorf("NormalizeEndpoint(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = reqctx.GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if seen != "abc" {
		t.Errorf("Expected request id abc in context, got %q", seen)
	}
	if rr.Header().Get("X-Request-ID") != "abc" {
		t.Errorf("Expected request id echoed in header")
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || rr.Header().Get("X-Request-ID") != seen {
		t.Errorf("Expected generated request id, got %q", seen)
	}
}

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	m := metrics.NewMetricsRegistry(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.Get("/api/v1/flights/{direction}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/flights/departures", nil))

	got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("/api/v1/flights/{direction}", http.MethodGet, "418"))
	if got != 1 {
		t.Errorf("Expected 1 request recorded, got %v", got)
	}
}

func TestClientRateLimiter(t *testing.T) {
	limiter := NewClientRateLimiter(0.001, 1, "10.0.0.9")
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	call := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	if code := call("10.0.0.1:5000"); code != http.StatusAccepted {
		t.Errorf("Expected first request accepted, got %d", code)
	}
	if code := call("10.0.0.1:5001"); code != http.StatusTooManyRequests {
		t.Errorf("Expected second request limited, got %d", code)
	}
	if code := call("10.0.0.2:5000"); code != http.StatusAccepted {
		t.Errorf("Expected other client unaffected, got %d", code)
	}
	for i := 0; i < 3; i++ {
		if code := call("10.0.0.9:5000"); code != http.StatusAccepted {
			t.Errorf("Expected whitelisted client never limited, got %d", code)
		}
	}
}
