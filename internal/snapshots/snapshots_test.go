package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"league-postseason-service/internal/domain"
)

func sampleResult(season int) domain.SeasonResult {
	return domain.SeasonResult{
		Season: season,
		Records: []domain.TeamRecord{
			{TeamID: "1", TeamName: "Team One", Wins: 10, Losses: 4},
		},
		Standings: []domain.Standing{
			{Place: 1, Label: "1st Place", TeamID: "1", TeamName: "Team One", Points: 250.5},
		},
	}
}

func TestWriteAndLoadSeasonRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	if err := w.WriteSeasonSnapshot(sampleResult(2019)); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	store := NewFSStore(dir)
	got, err := store.LoadSeason(2019)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Season != 2019 {
		t.Fatalf("expected season 2019, got %d", got.Season)
	}
	if len(got.Standings) != 1 || got.Standings[0].Points != 250.5 {
		t.Fatalf("standings not preserved: %+v", got.Standings)
	}
}

func TestWriteSeasonSnapshotUpdatesManifest(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	for _, season := range []int{2020, 2019} {
		if err := w.WriteSeasonSnapshot(sampleResult(season)); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	if err != nil {
		t.Fatalf("manifest missing: %v", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("manifest unreadable: %v", err)
	}
	if len(m.Seasons.Resolved) != 2 || m.Seasons.Resolved[0] != 2019 || m.Seasons.Resolved[1] != 2020 {
		t.Fatalf("expected resolved seasons [2019 2020], got %v", m.Seasons.Resolved)
	}
	if m.Seasons.LastRefreshed.IsZero() {
		t.Fatal("expected last refreshed to be set")
	}
}

func TestWriteSeasonSnapshotUnchangedPayloadKeepsFile(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	if err := w.WriteSeasonSnapshot(sampleResult(2019)); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	path := SeasonSnapshotPath(dir, 2019)
	before, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if err := w.WriteSeasonSnapshot(sampleResult(2019)); err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}
	after, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Fatal("unchanged payload should not rewrite the snapshot file")
	}
}

func TestWriteSeasonSnapshotRequiresSeason(t *testing.T) {
	w := NewWriter(t.TempDir())
	if err := w.WriteSeasonSnapshot(domain.SeasonResult{}); err == nil {
		t.Fatal("expected an error for a zero season")
	}
}

func TestLoadSeasonMissingFile(t *testing.T) {
	store := NewFSStore(t.TempDir())
	if _, err := store.LoadSeason(1999); err == nil {
		t.Fatal("expected an error for a missing snapshot")
	}
}

func TestSeasonSnapshotPathLayout(t *testing.T) {
	got := SeasonSnapshotPath("/data", 2021)
	want := filepath.Join("/data", "seasons", "2021.json")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
