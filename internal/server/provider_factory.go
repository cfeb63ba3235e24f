package server

import (
	"log/slog"

	"league-postseason-service/internal/config"
	"league-postseason-service/internal/engine"
	"league-postseason-service/internal/metrics"
	"league-postseason-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) (providers.DataProvider, engine.FormatSource) {
	base, formatSource := selectProvider(cfg, f.logger)
	limited := providers.NewRateLimitedProvider(base, cfg.LeagueSite.RequestsPerMinute, cfg.LeagueSite.MinRequestInterval, f.logger)
	retrying := providers.NewRetryingProvider(limited, f.logger, f.metrics,
		normalizeProviderName(cfg.Provider, base), cfg.LeagueSite.RetryAttempts, cfg.LeagueSite.RetryBackoff)
	return retrying, formatSource
}
