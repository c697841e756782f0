// Package types provides type definitions for structured data used throughout the SPOT style-lint engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// BannedOccurrence represents a single match of a banned term or a
// terminology key at a specific location in the linted text.
type BannedOccurrence struct {
	Term     string `json:"term"`
	Position int    `json:"position"` // Zero-based byte offset into the original text
	Snippet  string `json:"snippet"`  // Short surrounding excerpt for human review

	// Suggestion is the preferred replacement when the match came from
	// the terminology mapping.
	Suggestion *string `json:"suggestion,omitempty"`
}

// ReadingLevel represents the computed readability of a text against
// the style pack's target band.
type ReadingLevel struct {
	Grade         float64 `json:"grade"`
	InTargetRange bool    `json:"in_target_range"`
}

// LintResult represents the outcome of linting one text against one
// style pack. It is a pure function of its inputs: identical text and
// pack always produce an identical result.
type LintResult struct {
	Banned          []BannedOccurrence `json:"banned"`
	MissingRequired []string           `json:"missing_required"`
	ReadingLevel    ReadingLevel       `json:"reading_level"`
	Score           float64            `json:"score"`
	Compliant       bool               `json:"compliant"`
}

// FileResult pairs a LintResult with the file it was produced from.
type FileResult struct {
	Path   string     `json:"path"`
	Result LintResult `json:"result"`
}
