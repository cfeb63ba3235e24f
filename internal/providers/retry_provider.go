package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"league-postseason-service/internal/domain"
	"league-postseason-service/internal/metrics"
)

const (
	defaultRetryAttempts   = 3
	defaultInitialInterval = 200 * time.Millisecond
)

// retryingProvider wraps a DataProvider with exponential backoff and jitter.
// Retries are capped; after exhaustion the last error is surfaced unchanged.
type retryingProvider struct {
	inner           DataProvider
	logger          *slog.Logger
	metrics         *metrics.Recorder
	name            string
	maxAttempts     int
	initialInterval time.Duration
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts or
// initialInterval are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, initialInterval time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initialInterval <= 0 {
		initialInterval = defaultInitialInterval
	}
	return &retryingProvider{
		inner:           inner,
		logger:          logger,
		metrics:         recorder,
		name:            name,
		maxAttempts:     maxAttempts,
		initialInterval: initialInterval,
	}
}

func (r *retryingProvider) FetchGames(ctx context.Context, season int) ([]domain.Game, error) {
	var out []domain.Game
	err := r.retry(ctx, "fetch games", func() error {
		return r.observe(func() error {
			var innerErr error
			out, innerErr = r.inner.FetchGames(ctx, season)
			return innerErr
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *retryingProvider) FetchStarterScore(ctx context.Context, teamID string, season, week int) (float64, error) {
	var out float64
	err := r.retry(ctx, "fetch starter score", func() error {
		return r.observe(func() error {
			var innerErr error
			out, innerErr = r.inner.FetchStarterScore(ctx, teamID, season, week)
			return innerErr
		})
	})
	if err != nil {
		return 0, err
	}
	return out, nil
}

func (r *retryingProvider) retry(ctx context.Context, op string, fn func() error) error {
	if r.inner == nil {
		return ErrProviderUnavailable
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.initialInterval
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(r.maxAttempts-1)), ctx)

	err := backoff.RetryNotify(fn, policy, func(err error, delay time.Duration) {
		if rl, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.name, rl.RetryAfter)
		}
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider "+op+" retry",
			slog.Int64("delay_ms", delay.Milliseconds()),
			slog.Any("error", err),
		)
	})
	if err != nil {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider "+op+" failed",
			slog.Int("max_attempts", r.maxAttempts),
			slog.Any("error", err),
		)
	}
	return err
}

// observe times a single attempt and records it.
func (r *retryingProvider) observe(fn func() error) error {
	start := time.Now()
	err := fn()
	r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
	return err
}

// logWithProvider emits a log entry if logger is non-nil and always includes
// the provider name.
func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args, slog.String("provider", provider))
	logger.Log(ctx, level, msg, args...)
}
