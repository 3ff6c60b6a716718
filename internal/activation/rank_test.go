package activation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andywolf/grimoire/internal/skills"
)

func candidate(name string, score, position int) Candidate {
	return Candidate{
		Skill:    &skills.Definition{Name: name},
		Score:    score,
		position: position,
	}
}

func TestRank_DropsBelowThreshold(t *testing.T) {
	res := Rank([]Candidate{
		candidate("a", 2, 0),
		candidate("b", 0, 1),
		candidate("c", 1, 2),
	}, 1, 10)

	assert.Equal(t, []string{"a", "c"}, res.Names())
}

func TestRank_ThresholdZeroKeepsZeroScores(t *testing.T) {
	res := Rank([]Candidate{candidate("a", 0, 0)}, 0, 10)

	assert.Equal(t, []string{"a"}, res.Names())
}

func TestRank_SortsByScoreDescending(t *testing.T) {
	res := Rank([]Candidate{
		candidate("low", 1, 0),
		candidate("high", 5, 1),
		candidate("mid", 3, 2),
	}, 1, 10)

	assert.Equal(t, []string{"high", "mid", "low"}, res.Names())
}

func TestRank_TieBreaksByManifestOrder(t *testing.T) {
	res := Rank([]Candidate{
		candidate("second", 2, 1),
		candidate("first", 2, 0),
	}, 1, 10)

	assert.Equal(t, []string{"first", "second"}, res.Names())
}

func TestRank_TruncatesToMaxResults(t *testing.T) {
	res := Rank([]Candidate{
		candidate("a", 3, 0),
		candidate("b", 2, 1),
		candidate("c", 1, 2),
	}, 1, 2)

	assert.Equal(t, []string{"a", "b"}, res.Names())
}

func TestRank_NegativeMaxResultsKeepsNothing(t *testing.T) {
	res := Rank([]Candidate{candidate("a", 3, 0)}, 1, -1)

	assert.True(t, res.Empty())
}

func TestRank_EmptyInput(t *testing.T) {
	res := Rank(nil, 1, 3)

	require.True(t, res.Empty())
	assert.Empty(t, res.Names())
}

func TestRank_IsStableAcrossRuns(t *testing.T) {
	input := []Candidate{
		candidate("a", 2, 0),
		candidate("b", 2, 1),
		candidate("c", 2, 2),
		candidate("d", 1, 3),
	}

	first := Rank(input, 1, 3).Names()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Rank(input, 1, 3).Names())
	}
}
