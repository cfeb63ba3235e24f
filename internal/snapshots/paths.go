package snapshots

import (
	"fmt"
	"path/filepath"
)

// SeasonSnapshotPath builds the path to a resolved-season snapshot.
func SeasonSnapshotPath(basePath string, season int) string {
	return filepath.Join(basePath, "seasons", fmt.Sprintf("%d.json", season))
}
