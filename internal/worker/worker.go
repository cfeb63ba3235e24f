package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"league-postseason-service/internal/domain"
	"league-postseason-service/internal/metrics"
	"league-postseason-service/internal/store"
)

const (
	defaultInterval    = time.Hour
	defaultConcurrency = 4
)

// SeasonResolver turns a season number into a full resolution.
type SeasonResolver interface {
	ResolveSeason(ctx context.Context, season int) (*domain.SeasonResult, error)
}

// SnapshotWriter persists resolved seasons to disk.
type SnapshotWriter interface {
	WriteSeasonSnapshot(result domain.SeasonResult) error
}

// StandingsSink receives final standings for external persistence.
type StandingsSink interface {
	UpsertStandings(ctx context.Context, result domain.SeasonResult) error
}

// Config wires a Worker.
type Config struct {
	Resolver    SeasonResolver
	Store       *store.MemoryStore
	Writer      SnapshotWriter // optional
	Sink        StandingsSink  // optional
	Seasons     []int
	Concurrency int
	Interval    time.Duration
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
}

// Worker resolves the configured seasons with bounded concurrency, on boot
// and then on an interval. Seasons are independent; one failing never blocks
// the others.
type Worker struct {
	resolver    SeasonResolver
	store       *store.MemoryStore
	writer      SnapshotWriter
	sink        StandingsSink
	seasons     []int
	concurrency int
	interval    time.Duration
	logger      *slog.Logger
	metrics     *metrics.Recorder

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the outcome of the most recent resolution cycle.
type Status struct {
	SeasonsResolved int
	SeasonsFailed   int
	LastError       string
	LastAttempt     time.Time
	LastSuccess     time.Time
}

// IsReady reports whether at least one cycle has resolved something.
func (s Status) IsReady() bool {
	return !s.LastSuccess.IsZero() && s.SeasonsResolved > 0
}

// New constructs a Worker with sane defaults.
func New(cfg Config) *Worker {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}
	return &Worker{
		resolver:    cfg.Resolver,
		store:       cfg.Store,
		writer:      cfg.Writer,
		sink:        cfg.Sink,
		seasons:     cfg.Seasons,
		concurrency: cfg.Concurrency,
		interval:    cfg.Interval,
		logger:      cfg.Logger,
		metrics:     cfg.Metrics,
		done:        make(chan struct{}),
	}
}

// Start begins resolving until the context is cancelled or Stop is called.
func (w *Worker) Start(ctx context.Context) {
	w.startMu.Lock()
	if w.started {
		w.startMu.Unlock()
		return
	}
	w.started = true
	w.startMu.Unlock()

	w.ticker = time.NewTicker(w.interval)

	go func() {
		w.logInfo("worker started", slog.Int("seasons", len(w.seasons)), slog.Int("concurrency", w.concurrency))
		// Initial cycle to warm data on boot.
		w.runCycle(ctx)

		for {
			select {
			case <-ctx.Done():
				w.stopTicker()
				w.logInfo("worker stopped")
				return
			case <-w.done:
				w.stopTicker()
				w.logInfo("worker stopped")
				return
			case <-w.ticker.C:
				w.runCycle(ctx)
			}
		}
	}()
}

// Stop halts the resolution loop.
func (w *Worker) Stop(ctx context.Context) error {
	_ = ctx
	w.stopOnce.Do(func() {
		close(w.done)
		w.stopTicker()
	})
	return nil
}

// ResolveSeason resolves one season immediately and stores the result.
// Used by the admin re-resolve endpoint.
func (w *Worker) ResolveSeason(ctx context.Context, season int) error {
	start := time.Now()
	err := w.resolveOne(ctx, season)
	if w.metrics != nil {
		w.metrics.RecordResolveCycle(time.Since(start), err)
	}
	return err
}

func (w *Worker) runCycle(ctx context.Context) {
	start := time.Now()
	w.recordAttempt(start)

	var (
		mu       sync.Mutex
		resolved int
		failed   int
		lastErr  error
	)

	sem := make(chan struct{}, w.concurrency)
	var wg sync.WaitGroup
	for _, season := range w.seasons {
		if ctx.Err() != nil {
			break
		}
		season := season
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			if err := w.resolveOne(ctx, season); err != nil {
				mu.Lock()
				failed++
				lastErr = err
				mu.Unlock()
				return
			}
			mu.Lock()
			resolved++
			mu.Unlock()
		}()
	}
	wg.Wait()

	if w.metrics != nil {
		w.metrics.RecordResolveCycle(time.Since(start), lastErr)
	}
	w.recordCycle(resolved, failed, lastErr, start)
	w.logInfo("resolution cycle complete",
		slog.Int("resolved", resolved),
		slog.Int("failed", failed),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
}

func (w *Worker) resolveOne(ctx context.Context, season int) error {
	result, err := w.resolver.ResolveSeason(ctx, season)
	if err != nil {
		w.logError("season resolution failed", err, slog.Int("season", season))
		return err
	}

	if w.store != nil {
		w.store.SetResult(*result)
	}
	if w.writer != nil {
		if writeErr := w.writer.WriteSeasonSnapshot(*result); writeErr != nil {
			w.logError("snapshot write failed", writeErr, slog.Int("season", season))
		}
	}
	if w.sink != nil {
		if sinkErr := w.sink.UpsertStandings(ctx, *result); sinkErr != nil {
			w.logError("standings sink write failed", sinkErr, slog.Int("season", season))
		}
	}
	return nil
}

func (w *Worker) stopTicker() {
	if w.ticker != nil {
		w.ticker.Stop()
	}
}

func (w *Worker) logInfo(msg string, args ...any) {
	if w.logger != nil {
		w.logger.Info(msg, args...)
	}
}

func (w *Worker) logError(msg string, err error, attrs ...any) {
	if w.logger != nil {
		w.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (w *Worker) recordAttempt(at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.LastAttempt = at
}

func (w *Worker) recordCycle(resolved, failed int, err error, at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.SeasonsResolved = resolved
	w.status.SeasonsFailed = failed
	if err != nil {
		w.status.LastError = err.Error()
	} else {
		w.status.LastError = ""
	}
	if resolved > 0 {
		w.status.LastSuccess = at
	}
	w.status.LastAttempt = at
}

// Status returns a snapshot of the worker's recent health.
func (w *Worker) Status() Status {
	w.statusMu.RLock()
	defer w.statusMu.RUnlock()
	return w.status
}
