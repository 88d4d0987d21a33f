package titleindex

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
)

// ErrNoSourceFile reports that no export matched the expected filename
// pattern in the working directory.
var ErrNoSourceFile = errors.New("no movie_ids export file found")

// ExportPattern matches the daily TMDB id export filenames.
const ExportPattern = "movie_ids_*.json.gz"

// ArtifactName is the fixed filename of the persisted index.
const ArtifactName = "movie_titles.json"

// DiscoverExport locates the export to ingest in dir. When several
// snapshots are present the lexicographically latest filename wins, so a
// rerun picks the same file regardless of directory iteration order.
func DiscoverExport(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, ExportPattern))
	if err != nil {
		return "", fmt.Errorf("scan %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%s: %w", dir, ErrNoSourceFile)
	}

	sort.Strings(matches)
	return matches[len(matches)-1], nil
}
