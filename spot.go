// Package spot is the SPOT style-lint engine: deterministic evaluation
// of generated text against a brand style pack. It checks banned
// terms, required terms, terminology substitutions, and a target
// reading level, and aggregates the findings into a compliance score
// in [0, 1].
//
// The engine is stateless and side-effect free; a loaded StylePack
// can be shared across any number of concurrent lint calls.
package spot

import (
	"context"

	"github.com/jonathan/spot/internal/report"
	"github.com/jonathan/spot/internal/stylelint"
	"github.com/jonathan/spot/internal/stylepack"
	"github.com/jonathan/spot/internal/types"
)

// Re-exported data model. See the internal packages for field details.
type (
	StylePack        = types.StylePack
	LintResult       = types.LintResult
	BannedOccurrence = types.BannedOccurrence
	ReadingLevel     = types.ReadingLevel
	FileResult       = types.FileResult
	ScoreWeights     = stylelint.ScoreWeights
)

// Lint evaluates text against pack. Pure and deterministic; a nil
// pack behaves as an empty one.
func Lint(text string, pack *StylePack) LintResult {
	return stylelint.Lint(text, pack)
}

// LintHTML strips markup from HTML-formatted content before linting.
func LintHTML(htmlContent string, pack *StylePack) (LintResult, error) {
	return stylelint.LintHTML(htmlContent, pack)
}

// LintFiles lints many content files concurrently, returning results
// in input order.
func LintFiles(ctx context.Context, paths []string, pack *StylePack) ([]FileResult, error) {
	return stylelint.LintFiles(ctx, paths, pack)
}

// Score aggregates a LintResult into a compliance score in [0, 1].
func Score(result LintResult, weights ScoreWeights) float64 {
	return stylelint.Score(result, weights)
}

// DefaultScoreWeights returns the weights Lint applies.
func DefaultScoreWeights() ScoreWeights {
	return stylelint.DefaultScoreWeights()
}

// LoadStylePack reads and validates a style pack JSON document. An
// empty path falls back to the SPOT_STYLE_PACK environment variable,
// then to style/stylepack.json.
func LoadStylePack(path string) (*StylePack, error) {
	return stylepack.Load(path)
}

// FormatReport renders a lint result as a plain-text console report.
func FormatReport(result LintResult, pack *StylePack, sourceLabel string) string {
	return report.FormatReport(result, pack, sourceLabel)
}
