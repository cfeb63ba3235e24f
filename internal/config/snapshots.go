package config

// SnapshotConfig controls on-disk caching of resolved seasons.
type SnapshotConfig struct {
	Enabled    bool
	Dir        string
	AdminToken string // reused for the admin re-resolve endpoint auth
}

func loadSnapshots() SnapshotConfig {
	return SnapshotConfig{
		Enabled:    boolEnvOrDefault(envSnapshotsOn, defaultSnapshotsOn),
		Dir:        envOrDefault(envSnapshotDir, defaultSnapshotDir),
		AdminToken: envOrDefault(envAdminToken, ""),
	}
}
