package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediarec/internal/match"
)

func TestBestNearMiss(t *testing.T) {
	candidates := map[string]int{"Superman": 1, "Batman": 2}

	m, ok, err := match.Best("supermn", candidates)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Superman", m.Title)
	assert.Equal(t, 1, m.ID)
	assert.GreaterOrEqual(t, m.Score, 85)
}

func TestBestNoConfidentMatch(t *testing.T) {
	candidates := map[string]int{"Superman": 1, "Batman": 2}

	m, ok, err := match.Best("zzqqxx", candidates)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, m)
}

func TestBestBelowCutoff(t *testing.T) {
	// "sup" resembles "Superman" but nowhere near the cutoff.
	_, ok, err := match.Best("sup", map[string]int{"Superman": 1})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBestEmptyQuery(t *testing.T) {
	for _, q := range []string{"", "   ", "!?!"} {
		_, ok, err := match.Best(q, map[string]int{"Superman": 1})
		assert.ErrorIs(t, err, match.ErrEmptyQuery, "query %q", q)
		assert.False(t, ok)
	}
}

func TestBestEmptyCandidates(t *testing.T) {
	_, ok, err := match.Best("superman", nil)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = match.Best("superman", map[string]int{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBestCaseInsensitive(t *testing.T) {
	candidates := map[string]int{"Superman": 1}

	lower, okLower, err := match.Best("superman", candidates)
	require.NoError(t, err)
	upper, okUpper, err2 := match.Best("SUPERMAN", candidates)
	require.NoError(t, err2)

	assert.Equal(t, okLower, okUpper)
	assert.Equal(t, lower, upper)
	assert.Equal(t, 100, lower.Score)
}

func TestBestSingleWinner(t *testing.T) {
	// Both candidates reach the cutoff; only the higher scorer is returned.
	candidates := map[string]int{"Superman": 1, "Superman Returns": 2}

	m, ok, err := match.Best("superman", candidates)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Superman", m.Title)
	assert.Equal(t, 1, m.ID)
}

func TestBestTieBreakDeterministic(t *testing.T) {
	// "abcd" and "abce" score identically against "abcf"; the
	// lexicographically smallest title must win every time.
	candidates := map[string]int{"abce": 2, "abcd": 1}

	for i := 0; i < 20; i++ {
		m, ok, err := match.BestWithCutoff("abcf", candidates, 70)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "abcd", m.Title)
		assert.Equal(t, 1, m.ID)
	}
}

func TestBestWithCutoffThresholdLaw(t *testing.T) {
	candidates := map[string]int{"Superman": 1}
	score := match.Score("supermn", "superman")

	// Exactly at the cutoff the match is accepted; one above, rejected.
	_, ok, err := match.BestWithCutoff("supermn", candidates, score)
	require.NoError(t, err)
	assert.True(t, ok)

	_, ok, err = match.BestWithCutoff("supermn", candidates, score+1)
	require.NoError(t, err)
	assert.False(t, ok)
}
