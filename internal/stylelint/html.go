// Package stylelint evaluates generated text against a style pack and produces a compliance report.
package stylelint

import (
	"fmt"

	"github.com/jonathan/spot/internal/extract"
	"github.com/jonathan/spot/internal/types"
)

// LintHTML strips markup from HTML-formatted content and lints the
// remaining visible text against pack. Positions and snippets in the
// result refer to the extracted plain text, not the raw markup.
func LintHTML(htmlContent string, pack *types.StylePack) (types.LintResult, error) {
	text, err := extract.PlainText(htmlContent)
	if err != nil {
		return types.LintResult{}, fmt.Errorf("failed to extract text for linting: %w", err)
	}

	return Lint(text, pack), nil
}
