package server

import (
	"log/slog"

	"league-postseason-service/internal/config"
	"league-postseason-service/internal/engine"
	"league-postseason-service/internal/formats"
	"league-postseason-service/internal/providers"
	"league-postseason-service/internal/providers/fixture"
	"league-postseason-service/internal/providers/leaguesite"
)

// selectProvider picks the base data provider and the matching format source.
// The fixture provider ships its own format source so its generated schedules
// line up with the bracket shapes the engine expects.
func selectProvider(cfg config.Config, logger *slog.Logger) (providers.DataProvider, engine.FormatSource) {
	switch cfg.Provider {
	case "fixture", "":
		f := fixture.New()
		return f, f.Formats()
	case "leaguesite":
		client := leaguesite.NewClient(leaguesite.Config{
			BaseURL: cfg.LeagueSite.BaseURL,
			APIKey:  cfg.LeagueSite.APIKey,
		})
		return client, formats.NewCatalog()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		f := fixture.New()
		return f, f.Formats()
	}
}
