package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"league-postseason-service/internal/logging"
	"league-postseason-service/internal/metrics"
	"league-postseason-service/internal/testutil"
)

func TestLoggingMiddlewareEchoesValidRequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := RequestIDFromContext(r.Context()); got != "abc-123" {
			t.Errorf("expected request id in context, got %q", got)
		}
		w.WriteHeader(http.StatusNoContent)
	})
	h := LoggingMiddleware(nil, nil, next)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := testutil.ServeRequest(h, req)

	if rr.Header().Get("X-Request-ID") != "abc-123" {
		t.Fatalf("expected request id echoed, got %q", rr.Header().Get("X-Request-ID"))
	}
}

func TestLoggingMiddlewareReplacesInvalidRequestID(t *testing.T) {
	h := LoggingMiddleware(nil, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "bad id with spaces")
	rr := testutil.ServeRequest(h, req)

	got := rr.Header().Get("X-Request-ID")
	if got == "" || got == "bad id with spaces" {
		t.Fatalf("expected a fresh request id, got %q", got)
	}
}

func TestLoggingMiddlewareInjectsLogger(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if logging.FromContext(r.Context(), nil) == nil {
			t.Error("expected a logger in the request context")
		}
		w.WriteHeader(http.StatusTeapot)
	})

	rr := testutil.Serve(LoggingMiddleware(logger, nil, next), http.MethodGet, "/seasons", nil)

	if rr.Code != http.StatusTeapot {
		t.Fatalf("unexpected status %d", rr.Code)
	}
	if out := buf.String(); out == "" {
		t.Fatal("expected a request log line")
	}
}

func TestLoggingMiddlewareRecordsMetrics(t *testing.T) {
	recorder := metrics.NewRecorder()
	h := LoggingMiddleware(nil, recorder, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	testutil.Serve(h, http.MethodGet, "/seasons/2019/standings", nil)

	stats := recorder.HTTPStats()
	key := "GET /seasons/:season/standings 404"
	if stats[key] != 1 {
		t.Fatalf("expected one recorded request under %q, got %v", key, stats)
	}
}

func TestResponseWriterDefaultsTo200(t *testing.T) {
	recorder := metrics.NewRecorder()
	h := LoggingMiddleware(nil, recorder, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	testutil.Serve(h, http.MethodGet, "/health", nil)

	if got := recorder.HTTPStats()["GET /health 200"]; got != 1 {
		t.Fatalf("expected implicit 200 to be recorded, got %v", recorder.HTTPStats())
	}
}

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/health", "/health"},
		{"/ready", "/ready"},
		{"/seasons", "/seasons"},
		{"/seasons/2019/standings", "/seasons/:season/standings"},
		{"/seasons/2019/records", "/seasons/:season/records"},
		{"/seasons/2019/bracket", "/seasons/:season/bracket"},
		{"/seasons/9999", "/seasons/:season"},
		{"/admin/seasons/2019/resolve", "/admin/seasons/:season/resolve"},
		{"/unknown", "/unknown"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := normalizePath(tc.in); got != tc.want {
			t.Errorf("normalizePath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRequestIDFromContextMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if got := RequestIDFromContext(req.Context()); got != "" {
		t.Fatalf("expected empty request id, got %q", got)
	}
}

func TestLoggingMiddlewareTimesRequests(t *testing.T) {
	recorder := metrics.NewRecorder()
	h := LoggingMiddleware(nil, recorder, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Millisecond)
	}))

	testutil.Serve(h, http.MethodGet, "/health", nil)

	if got := recorder.HTTPStats()["GET /health 200"]; got != 1 {
		t.Fatalf("expected timed request to be recorded, got %v", recorder.HTTPStats())
	}
}
