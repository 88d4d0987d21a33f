package match

import (
	"errors"

	"github.com/hbollon/go-edlib"
)

// DefaultCutoff is the minimum score required to accept a fuzzy match.
const DefaultCutoff = 85

// ErrEmptyQuery is returned when the query normalizes to nothing; no scan
// is performed in that case.
var ErrEmptyQuery = errors.New("empty query")

// Match is a confident suggestion from the candidate set.
type Match struct {
	Title string `json:"title"`
	ID    int    `json:"id"`
	Score int    `json:"score"`
}

// Best finds the candidate title most similar to query, or ok=false when
// nothing reaches DefaultCutoff. See BestWithCutoff.
func Best(query string, candidates map[string]int) (Match, bool, error) {
	return BestWithCutoff(query, candidates, DefaultCutoff)
}

// BestWithCutoff scores every candidate against the normalized query and
// returns the single highest-scoring one, provided it reaches cutoff.
// An empty candidate set or a best score below cutoff yields ok=false with
// a nil error: finding nothing confident is an expected outcome.
//
// Ties on score are broken deterministically: higher Jaro-Winkler
// similarity first, then the lexicographically smallest title. The scan is
// a plain O(n) pass; it performs no I/O and never mutates candidates, so
// concurrent callers may share the map read-only.
func BestWithCutoff(query string, candidates map[string]int, cutoff int) (Match, bool, error) {
	q := Normalize(query)
	if q == "" {
		return Match{}, false, ErrEmptyQuery
	}
	if len(candidates) == 0 {
		return Match{}, false, nil
	}

	best := Match{Score: -1}
	var bestJW float32
	for title, id := range candidates {
		n := Normalize(title)
		if n == "" {
			continue
		}
		s := Score(q, n)
		if s < best.Score {
			continue
		}
		if s == best.Score {
			jw := edlib.JaroWinklerSimilarity(q, n)
			if jw < bestJW || (jw == bestJW && title >= best.Title) {
				continue
			}
			best = Match{Title: title, ID: id, Score: s}
			bestJW = jw
			continue
		}
		best = Match{Title: title, ID: id, Score: s}
		bestJW = edlib.JaroWinklerSimilarity(q, n)
	}

	if best.Score < cutoff {
		return Match{}, false, nil
	}
	return best, true, nil
}
