// Package report renders lint results for console display.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/spot/internal/types"
)

const headerWidth = 50

// Printer handles formatted lint-report output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// PrintReport writes the formatted report for one lint result.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintReport(result types.LintResult, pack *types.StylePack, sourceLabel string) {
	fmt.Fprintln(p.out, FormatReport(result, pack, sourceLabel))
}

// FormatReport renders a deterministic plain-text summary of a lint
// result: banned terms first, then missing required terms, then
// readability, then the overall score. It is pure formatting with no
// side effects. sourceLabel names the linted content in the header and
// may be empty; a nil pack behaves as an empty one.
func FormatReport(result types.LintResult, pack *types.StylePack, sourceLabel string) string {
	if pack == nil {
		pack = &types.StylePack{}
	}

	var sb strings.Builder

	if sourceLabel != "" {
		sb.WriteString(fmt.Sprintf("Style Lint Report for: %s\n", sourceLabel))
	} else {
		sb.WriteString("Style Lint Report\n")
	}
	sb.WriteString(strings.Repeat("=", headerWidth))
	sb.WriteString("\n")
	if pack.BrandVoice != "" {
		sb.WriteString(fmt.Sprintf("Brand voice: %s\n", pack.BrandVoice))
	}

	writeBannedSection(&sb, result.Banned)
	writeMissingSection(&sb, result.MissingRequired, pack.MustUse)
	writeReadabilitySection(&sb, result.ReadingLevel, pack.ReadingLevel)

	sb.WriteString(fmt.Sprintf("\nOverall score: %.2f", result.Score))
	if result.Compliant {
		sb.WriteString(" (compliant)")
	} else {
		sb.WriteString(" (not compliant)")
	}

	return sb.String()
}

func writeBannedSection(sb *strings.Builder, banned []types.BannedOccurrence) {
	if len(banned) == 0 {
		sb.WriteString("\n[ok] No banned terms found\n")
		return
	}

	sb.WriteString(fmt.Sprintf("\n[x] Banned terms found: %d\n", len(banned)))
	for _, occ := range banned {
		sb.WriteString(fmt.Sprintf("  - %q at offset %d: %s\n", occ.Term, occ.Position, occ.Snippet))
		if occ.Suggestion != nil {
			sb.WriteString(fmt.Sprintf("    prefer %q\n", *occ.Suggestion))
		}
	}
}

func writeMissingSection(sb *strings.Builder, missing []string, required []string) {
	if len(missing) > 0 {
		sb.WriteString(fmt.Sprintf("[x] Missing required terms: %s\n", strings.Join(missing, ", ")))
		return
	}
	if len(required) > 0 {
		sb.WriteString("[ok] All required terms present\n")
	}
}

func writeReadabilitySection(sb *strings.Builder, level types.ReadingLevel, target string) {
	if target != "" {
		sb.WriteString(fmt.Sprintf("Reading level: %.1f (target: %s)\n", level.Grade, target))
	} else {
		sb.WriteString(fmt.Sprintf("Reading level: %.1f (no target set)\n", level.Grade))
	}
	if level.InTargetRange {
		sb.WriteString("[ok] Reading level in range\n")
	} else {
		sb.WriteString("[x] Reading level out of range\n")
	}
}
