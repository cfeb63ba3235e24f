package snapshots

import (
	"encoding/json"
	"errors"
	"os"

	"league-postseason-service/internal/domain"
)

// Store defines how resolved-season snapshots are loaded.
type Store interface {
	LoadSeason(season int) (domain.SeasonResult, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadSeason reads the snapshot for a season from disk. Files live at
// {basePath}/seasons/{season}.json with a SeasonResult payload.
func (s *FSStore) LoadSeason(season int) (domain.SeasonResult, error) {
	if s == nil {
		return domain.SeasonResult{}, errors.New("snapshot store not configured")
	}
	var payload domain.SeasonResult
	f, err := os.Open(SeasonSnapshotPath(s.basePath, season))
	if err != nil {
		return domain.SeasonResult{}, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&payload); err != nil {
		return domain.SeasonResult{}, err
	}
	if payload.Season == 0 {
		payload.Season = season
	}
	return payload, nil
}
