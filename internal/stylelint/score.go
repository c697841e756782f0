// Package stylelint evaluates generated text against a style pack and produces a compliance report.
package stylelint

import (
	"github.com/jonathan/spot/internal/types"
)

// Default penalty weights for score aggregation
const (
	bannedPenalty      = 0.20 // per banned occurrence
	bannedPenaltyCap   = 0.80
	missingPenalty     = 0.10 // per missing required term
	missingPenaltyCap  = 0.40
	readabilityPenalty = 0.10 // flat, when out of target range
)

// ScoreWeights makes the score-aggregation policy explicit. Each
// per-item penalty is capped so a single violation category cannot
// zero the score on its own.
type ScoreWeights struct {
	BannedPenalty      float64
	BannedPenaltyCap   float64
	MissingPenalty     float64
	MissingPenaltyCap  float64
	ReadabilityPenalty float64
}

// DefaultScoreWeights returns the weights used by Lint.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		BannedPenalty:      bannedPenalty,
		BannedPenaltyCap:   bannedPenaltyCap,
		MissingPenalty:     missingPenalty,
		MissingPenaltyCap:  missingPenaltyCap,
		ReadabilityPenalty: readabilityPenalty,
	}
}

// Score aggregates a LintResult's violations into a compliance score
// in [0, 1]. The score starts at 1.0 and decreases monotonically with
// each violation: more banned occurrences or missing required terms
// never raise it, and it is always clamped to the unit interval.
func Score(result types.LintResult, weights ScoreWeights) float64 {
	score := 1.0

	score -= capped(float64(len(result.Banned))*weights.BannedPenalty, weights.BannedPenaltyCap)
	score -= capped(float64(len(result.MissingRequired))*weights.MissingPenalty, weights.MissingPenaltyCap)

	if !result.ReadingLevel.InTargetRange {
		score -= weights.ReadabilityPenalty
	}

	if score < 0.0 {
		return 0.0
	}
	if score > 1.0 {
		return 1.0
	}
	return score
}

func capped(penalty, limit float64) float64 {
	if penalty > limit {
		return limit
	}
	return penalty
}
