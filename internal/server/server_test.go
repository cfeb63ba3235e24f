package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"league-postseason-service/internal/config"
	"league-postseason-service/internal/metrics"
	"league-postseason-service/internal/store"
	"league-postseason-service/internal/testutil"
)

func testConfig() config.Config {
	return config.Config{
		Port:        "0",
		Provider:    "fixture",
		SeasonStart: 2019,
		SeasonEnd:   2019,
		Concurrency: 1,
	}
}

func TestRunStartsAndShutsDownCleanly(t *testing.T) {
	wrk := &testutil.StubWorker{}
	httpSrv := &testutil.CloseableHTTPServer{}
	srv := newServerWithDeps(testConfig(), nil, store.NewMemoryStore(), httpSrv, wrk)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	if wrk.StartCalls != 1 || wrk.StopCalls != 1 {
		t.Fatalf("unexpected worker lifecycle: start=%d stop=%d", wrk.StartCalls, wrk.StopCalls)
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected one http shutdown, got %d", httpSrv.ShutdownCalls)
	}
}

func TestRunStopsOnListenFailure(t *testing.T) {
	wrk := &testutil.StubWorker{}
	httpSrv := &testutil.ErrHTTPServer{}
	srv := newServerWithDeps(testConfig(), nil, store.NewMemoryStore(), httpSrv, wrk)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	// The listen failure invokes stop, which cancels the context.
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not exit after listen failure")
	}

	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected shutdown after failure, got %d", httpSrv.ShutdownCalls)
	}
}

func TestNewWiresDefaultComponents(t *testing.T) {
	cfg := testConfig()
	srv := New(cfg, nil)

	if srv.store == nil || srv.worker == nil || srv.httpServer == nil {
		t.Fatal("expected default wiring to populate the core components")
	}
	if srv.metrics == nil {
		t.Fatal("expected a metrics recorder even without telemetry config")
	}
}

func TestServerHandlerServesRoutes(t *testing.T) {
	cfg := testConfig()
	cfg.Snapshots.AdminToken = "hunter2"
	srv := New(cfg, nil)

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(srv.Handler(), http.MethodGet, "/seasons", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	// Admin route registered because a token is configured.
	rr = testutil.Serve(srv.Handler(), http.MethodPost, "/admin/seasons/2019/resolve", nil)
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestServerHandlerOmitsAdminWithoutToken(t *testing.T) {
	srv := New(testConfig(), nil)

	rr := testutil.Serve(srv.Handler(), http.MethodPost, "/admin/seasons/2019/resolve", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestBuildMetricsFallsBackOnSetupFailure(t *testing.T) {
	orig := metricsSetup
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, context.DeadlineExceeded
	}
	t.Cleanup(func() { metricsSetup = orig })

	rec, metricsSrv, shutdown := buildMetrics(testConfig(), nil)

	if rec == nil {
		t.Fatal("expected a fallback recorder")
	}
	if metricsSrv != nil || shutdown != nil {
		t.Fatal("expected no metrics server after setup failure")
	}
}

func TestBuildMetricsEnabledStartsExporter(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = true
	cfg.Metrics.Port = "0"

	rec, metricsSrv, shutdown := buildMetrics(cfg, nil)
	if shutdown != nil {
		t.Cleanup(func() { _ = shutdown(context.Background()) })
	}

	if rec == nil || metricsSrv == nil {
		t.Fatal("expected recorder and metrics server when enabled")
	}
}

func TestBuildSnapshotsDisabled(t *testing.T) {
	snaps := buildSnapshots(config.Config{})
	if snaps.store != nil || snaps.writer != nil {
		t.Fatal("expected no snapshot components when disabled")
	}
}

func TestBuildSnapshotsEnabled(t *testing.T) {
	cfg := config.Config{}
	cfg.Snapshots.Enabled = true
	cfg.Snapshots.Dir = t.TempDir()

	snaps := buildSnapshots(cfg)
	if snaps.store == nil || snaps.writer == nil {
		t.Fatal("expected snapshot components when enabled")
	}
}

func TestBuildSinkDisabledWithoutURL(t *testing.T) {
	if sink := buildSink(config.Config{}, nil); sink != nil {
		t.Fatal("expected no sink without a database URL")
	}
}
