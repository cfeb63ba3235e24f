package testutil

import (
	"testing"

	"league-postseason-service/internal/snapshots"
)

// NewTempWriter returns a snapshot writer rooted in a temp dir.
func NewTempWriter(t *testing.T) *snapshots.Writer {
	t.Helper()
	return snapshots.NewWriter(t.TempDir())
}

// WriteSnapshot persists a sample resolved season, failing the test on error.
func WriteSnapshot(t *testing.T, w *snapshots.Writer, season int) {
	t.Helper()
	if err := w.WriteSeasonSnapshot(SampleResult(season)); err != nil {
		t.Fatalf("failed to write snapshot for season %d: %v", season, err)
	}
}

// SnapshotPath returns the expected file path for a season snapshot.
func SnapshotPath(w *snapshots.Writer, season int) string {
	return snapshots.SeasonSnapshotPath(w.BasePath(), season)
}

// SnapshotStore returns a read store over the writer's base directory.
func SnapshotStore(w *snapshots.Writer) snapshots.Store {
	return snapshots.NewFSStore(w.BasePath())
}
