package suggest_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediarec/internal/match"
	"mediarec/internal/suggest"
	"mediarec/internal/titleindex"
	"mediarec/internal/tmdb"
)

// fakeClient scripts the metadata API for fallback tests.
type fakeClient struct {
	results     []tmdb.Result
	searchErr   error
	details     *tmdb.Details
	detailsErr  error
	searchCalls int
	detailCalls int
}

func (f *fakeClient) SearchMulti(_ context.Context, _ string, _ bool) ([]tmdb.Result, error) {
	f.searchCalls++
	return f.results, f.searchErr
}

func (f *fakeClient) MovieDetails(_ context.Context, _ int) (*tmdb.Details, error) {
	f.detailCalls++
	return f.details, f.detailsErr
}

func testIndex() titleindex.Index {
	return titleindex.Index{
		"Superman":       1,
		"Batman":         2,
		"XXX Adult Film": 3,
	}
}

func TestSuggestNearMiss(t *testing.T) {
	s := suggest.New(testIndex(), nil, match.DefaultCutoff)

	m, ok, err := s.Suggest("supermn", false)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Superman", m.Title)
	assert.Equal(t, 1, m.ID)
}

func TestSuggestFamilyModeExcludesKeywords(t *testing.T) {
	s := suggest.New(testIndex(), []string{"xxx"}, match.DefaultCutoff)

	_, ok, err := s.Suggest("xxx adult film", true)
	require.NoError(t, err)
	assert.False(t, ok, "explicit keyword titles are invisible in family mode")

	m, ok, err := s.Suggest("xxx adult film", false)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "XXX Adult Film", m.Title)
}

func TestSuggestEmptyQuery(t *testing.T) {
	s := suggest.New(testIndex(), nil, match.DefaultCutoff)

	_, _, err := s.Suggest("", false)
	assert.ErrorIs(t, err, match.ErrEmptyQuery)
}

func TestNewFromFileMissingArtifactDisables(t *testing.T) {
	s, err := suggest.NewFromFile(filepath.Join(t.TempDir(), "movie_titles.json"), nil, match.DefaultCutoff)
	require.NoError(t, err)
	assert.False(t, s.Enabled())

	_, ok, err := s.Suggest("superman", false)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewFromFileLoadsArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movie_titles.json")
	require.NoError(t, testIndex().WriteFile(path))

	s, err := suggest.NewFromFile(path, nil, match.DefaultCutoff)
	require.NoError(t, err)
	assert.True(t, s.Enabled())
}

func TestSearchWithFallbackPassesThroughResults(t *testing.T) {
	client := &fakeClient{results: []tmdb.Result{{ID: 1924, Title: "Superman", MediaType: "movie"}}}
	s := suggest.New(testIndex(), nil, match.DefaultCutoff)

	outcome, err := s.SearchWithFallback(context.Background(), client, "superman", false)
	require.NoError(t, err)
	require.Len(t, outcome.Results, 1)
	assert.Nil(t, outcome.Suggestion)
	assert.Zero(t, client.detailCalls, "no fallback when the direct search hits")
}

func TestSearchWithFallbackSuggests(t *testing.T) {
	client := &fakeClient{
		details: &tmdb.Details{Result: tmdb.Result{ID: 1, Title: "Superman"}},
	}
	s := suggest.New(testIndex(), nil, match.DefaultCutoff)

	outcome, err := s.SearchWithFallback(context.Background(), client, "supermn", false)
	require.NoError(t, err)
	assert.Empty(t, outcome.Results)
	require.NotNil(t, outcome.Suggestion)
	assert.Equal(t, "Superman", outcome.Suggestion.Title)
	assert.Equal(t, 1, outcome.Suggestion.ID)
	require.NotNil(t, outcome.Suggestion.Details)
	assert.Equal(t, "Superman", outcome.Suggestion.Details.Title)
}

func TestSearchWithFallbackDetailsFailureDegrades(t *testing.T) {
	client := &fakeClient{detailsErr: errors.New("boom")}
	s := suggest.New(testIndex(), nil, match.DefaultCutoff)

	outcome, err := s.SearchWithFallback(context.Background(), client, "supermn", false)
	require.NoError(t, err)
	require.NotNil(t, outcome.Suggestion)
	assert.Nil(t, outcome.Suggestion.Details, "suggestion survives a failed detail lookup")
}

func TestSearchWithFallbackNoConfidentMatch(t *testing.T) {
	client := &fakeClient{}
	s := suggest.New(testIndex(), nil, match.DefaultCutoff)

	outcome, err := s.SearchWithFallback(context.Background(), client, "zzqqxx", false)
	require.NoError(t, err)
	assert.Empty(t, outcome.Results)
	assert.Nil(t, outcome.Suggestion, "no confident match is a normal outcome")
}

func TestSearchWithFallbackEmptyQuery(t *testing.T) {
	client := &fakeClient{}
	s := suggest.New(testIndex(), nil, match.DefaultCutoff)

	_, err := s.SearchWithFallback(context.Background(), client, "  ", false)
	assert.ErrorIs(t, err, match.ErrEmptyQuery)
	assert.Zero(t, client.searchCalls, "no API call for an empty query")
}

func TestSearchWithFallbackSearchError(t *testing.T) {
	client := &fakeClient{searchErr: errors.New("api down")}
	s := suggest.New(testIndex(), nil, match.DefaultCutoff)

	_, err := s.SearchWithFallback(context.Background(), client, "superman", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api down")
}
