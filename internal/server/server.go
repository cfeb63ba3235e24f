package server

import (
	"context"
	"log/slog"
	"net/http"

	"league-postseason-service/internal/config"
	"league-postseason-service/internal/engine"
	httpserver "league-postseason-service/internal/http"
	"league-postseason-service/internal/http/handlers"
	"league-postseason-service/internal/http/middleware"
	"league-postseason-service/internal/logging"
	"league-postseason-service/internal/metrics"
	"league-postseason-service/internal/providers"
	"league-postseason-service/internal/store"
	"league-postseason-service/internal/store/postgres"
	"league-postseason-service/internal/worker"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	httpServer    httpServer
	metricsServer httpServer
	worker        SeasonWorker
	sink          *postgres.Store
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider and worker wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, formatSource engine.FormatSource) *Server {
	return newServerWithMetrics(cfg, logger, provider, formatSource)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, formatSource engine.FormatSource) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if provider == nil || formatSource == nil {
		provider, formatSource = newProviderFactory(logger, recorder).build(cfg)
	}

	memoryStore := store.NewMemoryStore()
	resolver := engine.NewResolver(provider, provider, formatSource, logger)
	snaps := buildSnapshots(cfg)
	sink := buildSink(cfg, logger)

	workerCfg := worker.Config{
		Resolver:    resolver,
		Store:       memoryStore,
		Seasons:     cfg.Seasons(),
		Concurrency: cfg.Concurrency,
		Interval:    cfg.ResolveInterval,
		Logger:      logger,
		Metrics:     recorder,
	}
	if snaps.writer != nil {
		workerCfg.Writer = snaps.writer
	}
	if sink != nil {
		workerCfg.Sink = sink
	}
	wrk := worker.New(workerCfg)

	httpSrv := buildHTTPServer(cfg, memoryStore, snaps, logger, recorder, wrk)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		worker:        wrk,
		sink:          sink,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, memoryStore *store.MemoryStore, httpSrv httpServer, wrk SeasonWorker) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		store:      memoryStore,
		httpServer: httpSrv,
		worker:     wrk,
	}
}

func buildSink(cfg config.Config, logger *slog.Logger) *postgres.Store {
	if cfg.Database.URL == "" {
		return nil
	}
	sink, err := postgres.NewStore(cfg.Database.URL)
	if err != nil {
		logging.Warn(logger, "standings database unavailable, continuing without sink", "err", err)
		return nil
	}
	if err := sink.EnsureSchema(context.Background()); err != nil {
		logging.Warn(logger, "standings schema setup failed, continuing without sink", "err", err)
		_ = sink.Close()
		return nil
	}
	return sink
}

func buildHTTPServer(cfg config.Config, memoryStore *store.MemoryStore, snaps snapshotComponents, logger *slog.Logger, recorder *metrics.Recorder, wrk SeasonWorker) httpServer {
	var statusFn func() worker.Status
	if wrk != nil {
		statusFn = wrk.Status
	}

	handler := handlers.NewHandler(memoryStore, snaps.store, logger, statusFn)
	var admin *handlers.AdminHandler
	if cfg.Snapshots.AdminToken != "" && wrk != nil {
		admin = handlers.NewAdminHandler(wrk, cfg.Snapshots.AdminToken, logger)
	}
	router := httpserver.NewRouter(handler, admin)

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the worker and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.worker.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.worker.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop worker", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.sink != nil {
		if err := s.sink.Close(); err != nil && s.logger != nil {
			s.logger.Warn("standings sink close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
