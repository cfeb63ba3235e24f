package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"league-postseason-service/internal/domain"
)

// Writer persists resolved-season snapshots and keeps the manifest current.
// Writes are atomic: payloads land in a temp file first, then rename over
// the target.
type Writer struct {
	basePath string
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{basePath: basePath}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteSeasonSnapshot writes the resolved season to disk and records it in
// the manifest. Unchanged payloads only refresh the manifest.
func (w *Writer) WriteSeasonSnapshot(result domain.SeasonResult) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if result.Season == 0 {
		return fmt.Errorf("season required")
	}

	target := SeasonSnapshotPath(w.basePath, result.Season)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return w.updateManifest(result.Season)
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.updateManifest(result.Season)
}

func (w *Writer) updateManifest(season int) error {
	manifestPath := filepath.Join(w.basePath, "manifest.json")
	m, _ := readManifest(manifestPath)

	seasons, err := w.listSeasons()
	if err != nil {
		return err
	}
	if !containsSeason(seasons, season) {
		seasons = append(seasons, season)
		sort.Ints(seasons)
	}

	m.Seasons.Resolved = seasons
	m.Seasons.LastRefreshed = time.Now().UTC()
	return writeManifest(w.basePath, m)
}

func containsSeason(seasons []int, season int) bool {
	for _, s := range seasons {
		if s == season {
			return true
		}
	}
	return false
}

func (w *Writer) listSeasons() ([]int, error) {
	dir := filepath.Join(w.basePath, "seasons")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []int{}, nil
		}
		return nil, err
	}
	seasons := make([]int, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		var season int
		if _, err := fmt.Sscanf(e.Name(), "%d.json", &season); err != nil || season == 0 {
			continue
		}
		seasons = append(seasons, season)
	}
	sort.Ints(seasons)
	return seasons, nil
}
