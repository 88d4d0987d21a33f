package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mediarec/internal/match"
)

func TestScoreIdentical(t *testing.T) {
	assert.Equal(t, 100, match.Score("superman", "superman"))
}

func TestScoreNearMissTypo(t *testing.T) {
	score := match.Score("supermn", "superman")
	assert.GreaterOrEqual(t, score, 85, "a one-letter typo should stay above the cutoff")
	assert.Less(t, score, 100)
}

func TestScoreUnrelated(t *testing.T) {
	assert.Equal(t, 0, match.Score("zzqqxx", "superman"))
	assert.Less(t, match.Score("zzqqxx", "batman"), 20)
}

func TestScoreWordOrder(t *testing.T) {
	// Token-sort handles reordering; the discount keeps it below verbatim.
	assert.Equal(t, 95, match.Score("returns superman", "superman returns"))
}

func TestScoreContainment(t *testing.T) {
	// Token-set scores a query contained in a longer title highly.
	assert.Equal(t, 95, match.Score("superman", "superman returns"))
}

func TestScoreEmpty(t *testing.T) {
	assert.Equal(t, 0, match.Score("", ""))
	assert.Equal(t, 0, match.Score("superman", ""))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Superman  ", "superman"},
		{"Spider-Man: No Way Home", "spider man no way home"},
		{"Amélie", "amelie"},
		{"WALL·E", "wall e"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, match.Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}
