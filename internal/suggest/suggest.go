// Package suggest wires the persisted title index and the fuzzy matcher
// into the search flow: when a literal metadata search returns nothing,
// the closest known title is offered instead.
package suggest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mediarec/internal/match"
	"mediarec/internal/titleindex"
	"mediarec/internal/tmdb"
)

// MetadataClient is the slice of the TMDB client the fallback flow needs.
type MetadataClient interface {
	SearchMulti(ctx context.Context, query string, includeAdult bool) ([]tmdb.Result, error)
	MovieDetails(ctx context.Context, id int) (*tmdb.Details, error)
}

// Suggester holds the loaded candidate sets for both content modes. It is
// read-only after construction and safe for concurrent use.
type Suggester struct {
	all    titleindex.Index
	family titleindex.Index
	cutoff int
}

// New builds a Suggester over an already-loaded index. The family-mode
// view is derived once, up front.
func New(idx titleindex.Index, familyKeywords []string, cutoff int) *Suggester {
	return &Suggester{
		all:    idx,
		family: idx.FamilyView(familyKeywords),
		cutoff: cutoff,
	}
}

// NewFromFile loads the index artifact at path. A missing artifact is not
// an error: the returned Suggester reports Enabled() == false and every
// lookup yields no match, so callers degrade to "no suggestion available".
func NewFromFile(path string, familyKeywords []string, cutoff int) (*Suggester, error) {
	idx, err := titleindex.Load(path)
	if errors.Is(err, titleindex.ErrIndexUnavailable) {
		return &Suggester{cutoff: cutoff}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load suggestions: %w", err)
	}
	return New(idx, familyKeywords, cutoff), nil
}

// Enabled reports whether an index was loaded.
func (s *Suggester) Enabled() bool {
	return len(s.all) > 0
}

// Suggest returns the closest known title for query, honoring the active
// content mode. ok is false when nothing reaches the cutoff or the
// suggester is disabled.
func (s *Suggester) Suggest(query string, familyMode bool) (match.Match, bool, error) {
	if !s.Enabled() {
		return match.Match{}, false, nil
	}
	candidates := s.all
	if familyMode {
		candidates = s.family
	}
	return match.BestWithCutoff(query, candidates, s.cutoff)
}

// Suggestion is a fuzzy fallback hit, optionally enriched with the full
// record for the matched identifier.
type Suggestion struct {
	Title   string        `json:"title"`
	ID      int           `json:"id"`
	Score   int           `json:"score"`
	Details *tmdb.Details `json:"details,omitempty"`
}

// Outcome is what a search produced: direct results, or a fallback
// suggestion, or neither.
type Outcome struct {
	Results    []tmdb.Result `json:"results"`
	Suggestion *Suggestion   `json:"suggestion,omitempty"`
}

// SearchWithFallback runs a literal multi search and, only when it comes
// back empty, consults the fuzzy matcher. A confident hit is enriched with
// the movie details for its identifier; detail lookup failures degrade to
// a bare suggestion rather than failing the search.
func (s *Suggester) SearchWithFallback(ctx context.Context, client MetadataClient, query string, familyMode bool) (*Outcome, error) {
	if strings.TrimSpace(query) == "" {
		return nil, match.ErrEmptyQuery
	}

	results, err := client.SearchMulti(ctx, query, !familyMode)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	if len(results) > 0 {
		return &Outcome{Results: results}, nil
	}

	m, ok, err := s.Suggest(query, familyMode)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &Outcome{}, nil
	}

	sug := &Suggestion{Title: m.Title, ID: m.ID, Score: m.Score}
	if details, derr := client.MovieDetails(ctx, m.ID); derr == nil {
		sug.Details = details
	}
	return &Outcome{Suggestion: sug}, nil
}
