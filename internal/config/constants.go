package config

import "time"

const (
	envPort            = "PORT"
	envResolveInterval = "RESOLVE_INTERVAL"
	envProvider        = "PROVIDER"
	envSeasonStart     = "SEASON_START"
	envSeasonEnd       = "SEASON_END"
	envConcurrency     = "RESOLVE_CONCURRENCY"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken      = "ADMIN_TOKEN"
	envSnapshotsOn     = "SNAPSHOTS_ENABLED"
	envSnapshotDir     = "SNAPSHOT_DIR"
	envDatabaseURL     = "DATABASE_URL"

	defaultPort = "4000"
	// Historical standings rarely change; the interval only picks up
	// upstream data corrections.
	defaultResolveInterval = 1 * Duration(time.Hour)
	defaultProvider        = "fixture"
	defaultSeasonStart     = 2011
	defaultSeasonEnd       = 2023
	defaultConcurrency     = 4
	defaultMetricsPort     = "9090"
	defaultSnapshotsOn     = true
	defaultSnapshotDir     = "data/snapshots"
)
