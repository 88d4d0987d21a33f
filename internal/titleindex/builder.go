package titleindex

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// Lines in the export are small JSON objects, but titles can carry long
// alternate scripts; allow generous headroom.
const maxLineBytes = 4 << 20

// exportRecord is one line of the daily id export. Pointers distinguish a
// missing field from a zero value.
type exportRecord struct {
	ID            *int    `json:"id"`
	OriginalTitle *string `json:"original_title"`
	Adult         bool    `json:"adult"`
}

// Build consumes a gzip-compressed, newline-delimited JSON export and
// produces the title index. Records flagged adult are excluded; duplicate
// titles resolve last-write-wins. Any malformed line aborts the whole
// build with no partial result.
func Build(r io.Reader) (Index, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open gzip stream: %w", err)
	}
	defer zr.Close()

	idx := make(Index)
	sc := bufio.NewScanner(zr)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}

		var rec exportRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("line %d: malformed record: %w", lineNo, err)
		}
		if rec.ID == nil || rec.OriginalTitle == nil {
			return nil, fmt.Errorf("line %d: malformed record: missing id or original_title", lineNo)
		}

		if rec.Adult {
			continue
		}
		idx[*rec.OriginalTitle] = *rec.ID
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}
	return idx, nil
}

// BuildFromFile runs Build over the export at path.
func BuildFromFile(path string) (Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export %s: %w", path, err)
	}
	defer f.Close()

	idx, err := Build(f)
	if err != nil {
		return nil, fmt.Errorf("build from %s: %w", path, err)
	}
	return idx, nil
}
