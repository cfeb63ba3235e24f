package config

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	ResolveInterval Duration
	Provider        string
	SeasonStart     int
	SeasonEnd       int
	Concurrency     int
	LeagueSite      LeagueSiteConfig
	Database        DatabaseConfig
	Metrics         MetricsConfig
	Snapshots       SnapshotConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		ResolveInterval: durationEnvOrDefault(envResolveInterval, defaultResolveInterval),
		Provider:        envOrDefault(envProvider, defaultProvider),
		SeasonStart:     intEnvOrDefault(envSeasonStart, defaultSeasonStart),
		SeasonEnd:       intEnvOrDefault(envSeasonEnd, defaultSeasonEnd),
		Concurrency:     intEnvOrDefault(envConcurrency, defaultConcurrency),
		LeagueSite:      loadLeagueSite(),
		Database:        loadDatabase(),
		Metrics:         loadMetrics(),
		Snapshots:       loadSnapshots(),
	}
}

// Seasons expands the configured range into an ascending season list.
func (c Config) Seasons() []int {
	if c.SeasonEnd < c.SeasonStart {
		return nil
	}
	out := make([]int, 0, c.SeasonEnd-c.SeasonStart+1)
	for s := c.SeasonStart; s <= c.SeasonEnd; s++ {
		out = append(out, s)
	}
	return out
}
