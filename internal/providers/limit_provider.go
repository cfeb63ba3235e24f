package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"league-postseason-service/internal/domain"
)

const (
	defaultRequestsPerMinute = 30
	defaultMinInterval       = 500 * time.Millisecond
)

// rateLimitedProvider wraps a DataProvider and enforces both a minimum delay
// between calls and a fixed request budget per minute. The league site is a
// non-cooperative data source; callers block until a request slot opens.
type rateLimitedProvider struct {
	next        DataProvider
	minInterval time.Duration
	perMinute   int
	logger      *slog.Logger
	now         func() time.Time

	mu          sync.Mutex
	lastRequest time.Time
	windowStart time.Time
	windowCount int
}

// NewRateLimitedProvider returns a DataProvider limited to perMinute requests
// per rolling minute with at least minInterval between calls. Non-positive
// arguments fall back to defaults.
func NewRateLimitedProvider(next DataProvider, perMinute int, minInterval time.Duration, logger *slog.Logger) DataProvider {
	if perMinute <= 0 {
		perMinute = defaultRequestsPerMinute
	}
	if minInterval <= 0 {
		minInterval = defaultMinInterval
	}
	return &rateLimitedProvider{
		next:        next,
		minInterval: minInterval,
		perMinute:   perMinute,
		logger:      logger,
		now:         time.Now,
	}
}

func (p *rateLimitedProvider) FetchGames(ctx context.Context, season int) ([]domain.Game, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchGames(ctx, season)
}

func (p *rateLimitedProvider) FetchStarterScore(ctx context.Context, teamID string, season, week int) (float64, error) {
	if p == nil || p.next == nil {
		return 0, ErrProviderUnavailable
	}
	if err := p.wait(ctx); err != nil {
		return 0, err
	}
	return p.next.FetchStarterScore(ctx, teamID, season, week)
}

// wait blocks until the next request slot is available or the context ends.
func (p *rateLimitedProvider) wait(ctx context.Context) error {
	for {
		delay := p.reserve()
		if delay <= 0 {
			return nil
		}
		if p.logger != nil {
			p.logger.Debug("rate limit wait",
				slog.Int64("delay_ms", delay.Milliseconds()),
			)
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// reserve either claims a request slot (returning 0) or returns how long to
// wait before trying again.
func (p *rateLimitedProvider) reserve() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()

	if now.Sub(p.windowStart) >= time.Minute {
		p.windowStart = now
		p.windowCount = 0
	}
	if p.windowCount >= p.perMinute {
		return p.windowStart.Add(time.Minute).Sub(now)
	}
	if !p.lastRequest.IsZero() {
		if since := now.Sub(p.lastRequest); since < p.minInterval {
			return p.minInterval - since
		}
	}

	p.lastRequest = now
	p.windowCount++
	return 0
}
