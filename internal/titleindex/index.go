package titleindex

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrIndexUnavailable reports that no index artifact exists at the given
// path. Callers should treat fuzzy suggestions as disabled, not crash.
var ErrIndexUnavailable = errors.New("title index unavailable")

// Index maps an original title to its TMDB identifier. Built wholesale by
// Build, immutable once written; rebuilds replace the artifact rather than
// merging into it.
type Index map[string]int

// Load reads an artifact previously written by WriteFile.
func Load(path string) (Index, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrIndexUnavailable)
	}
	if err != nil {
		return nil, fmt.Errorf("read index %s: %w", path, err)
	}

	var idx Index
	if err := json.Unmarshal(b, &idx); err != nil {
		return nil, fmt.Errorf("decode index %s: %w", path, err)
	}
	return idx, nil
}

// WriteFile serializes the index as a single JSON object. The artifact is
// written to a temp file in the target directory and renamed into place,
// so readers never observe a truncated index.
func (idx Index) WriteFile(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".titles-*.json")
	if err != nil {
		return fmt.Errorf("create temp index: %w", err)
	}

	if err := json.NewEncoder(tmp).Encode(idx); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("encode index: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp index: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("publish index %s: %w", path, err)
	}
	return nil
}

// FamilyView returns a filtered copy of the index excluding any entry
// whose title contains one of the given keywords, case-insensitively.
// It is a derived view for family-mode lookups; the stored artifact is
// untouched.
func (idx Index) FamilyView(keywords []string) Index {
	lowered := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			lowered = append(lowered, k)
		}
	}

	view := make(Index, len(idx))
	for title, id := range idx {
		lt := strings.ToLower(title)
		blocked := false
		for _, k := range lowered {
			if strings.Contains(lt, k) {
				blocked = true
				break
			}
		}
		if !blocked {
			view[title] = id
		}
	}
	return view
}
