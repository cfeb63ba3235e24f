package config

// DatabaseConfig controls the optional Postgres standings sink. An empty URL
// disables it.
type DatabaseConfig struct {
	URL string
}

func loadDatabase() DatabaseConfig {
	return DatabaseConfig{
		URL: envOrDefault(envDatabaseURL, ""),
	}
}
