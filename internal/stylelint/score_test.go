package stylelint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/spot/internal/types"
)

func occurrences(n int) []types.BannedOccurrence {
	occs := make([]types.BannedOccurrence, n)
	for i := range occs {
		occs[i] = types.BannedOccurrence{Term: "synergy", Position: i * 10, Snippet: "synergy"}
	}
	return occs
}

func TestScore_CleanResult(t *testing.T) {
	result := types.LintResult{
		ReadingLevel: types.ReadingLevel{Grade: 9.0, InTargetRange: true},
	}
	assert.Equal(t, 1.0, Score(result, DefaultScoreWeights()))
}

func TestScore_PenaltiesStack(t *testing.T) {
	result := types.LintResult{
		Banned:          occurrences(1),
		MissingRequired: []string{"accessible"},
		ReadingLevel:    types.ReadingLevel{Grade: 14.0, InTargetRange: false},
	}

	// 1.0 - 0.20 - 0.10 - 0.10
	assert.InDelta(t, 0.6, Score(result, DefaultScoreWeights()), 0.0001)
}

func TestScore_CategoryCaps(t *testing.T) {
	manyBanned := types.LintResult{
		Banned:       occurrences(50),
		ReadingLevel: types.ReadingLevel{InTargetRange: true},
	}
	// Capped at 0.80 rather than 50 * 0.20.
	assert.InDelta(t, 0.2, Score(manyBanned, DefaultScoreWeights()), 0.0001)

	manyMissing := types.LintResult{
		MissingRequired: []string{"a", "b", "c", "d", "e", "f", "g", "h"},
		ReadingLevel:    types.ReadingLevel{InTargetRange: true},
	}
	// Capped at 0.40 rather than 8 * 0.10.
	assert.InDelta(t, 0.6, Score(manyMissing, DefaultScoreWeights()), 0.0001)
}

func TestScore_AlwaysWithinBounds(t *testing.T) {
	results := []types.LintResult{
		{},
		{ReadingLevel: types.ReadingLevel{InTargetRange: true}},
		{Banned: occurrences(100), MissingRequired: []string{"a", "b", "c", "d", "e", "f"}},
		{Banned: occurrences(3), ReadingLevel: types.ReadingLevel{InTargetRange: false}},
	}

	for i, result := range results {
		score := Score(result, DefaultScoreWeights())
		assert.GreaterOrEqual(t, score, 0.0, "result %d", i)
		assert.LessOrEqual(t, score, 1.0, "result %d", i)
	}
}

func TestScore_MonotoneInViolations(t *testing.T) {
	weights := DefaultScoreWeights()

	prev := 1.1
	for n := 0; n <= 10; n++ {
		result := types.LintResult{
			Banned:       occurrences(n),
			ReadingLevel: types.ReadingLevel{InTargetRange: true},
		}
		score := Score(result, weights)
		assert.LessOrEqual(t, score, prev, "score must never increase with more violations")
		prev = score
	}
}

func TestScore_CustomWeights(t *testing.T) {
	weights := ScoreWeights{
		BannedPenalty:      0.5,
		BannedPenaltyCap:   1.0,
		MissingPenalty:     0.0,
		MissingPenaltyCap:  0.0,
		ReadabilityPenalty: 0.0,
	}
	result := types.LintResult{
		Banned:       occurrences(3),
		ReadingLevel: types.ReadingLevel{InTargetRange: true},
	}

	// 3 * 0.5 capped at 1.0, clamped to the floor.
	assert.Equal(t, 0.0, Score(result, weights))
}
