// Package stylelint evaluates generated text against a style pack and produces a compliance report.
package stylelint

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/spot/internal/readability"
	"github.com/jonathan/spot/internal/types"
)

// snippetRadius is the number of bytes of context captured on each
// side of a banned-term match.
const snippetRadius = 30

// bannedTerm is one term to scan for, with the preferred replacement
// when it came from the terminology mapping.
type bannedTerm struct {
	term       string
	suggestion *string
}

// Lint evaluates text against pack and returns a fresh LintResult.
// It is pure and deterministic: no I/O, no mutation of pack, and
// identical inputs always produce identical results, so it is safe to
// call concurrently with a shared pack. A nil pack behaves as an
// empty one.
func Lint(text string, pack *types.StylePack) types.LintResult {
	if pack == nil {
		pack = &types.StylePack{}
	}

	result := types.LintResult{
		Banned:          findBanned(text, pack),
		MissingRequired: findMissingRequired(text, pack.MustUse),
		ReadingLevel:    checkReadingLevel(text, pack.ReadingLevel),
	}
	result.Score = Score(result, DefaultScoreWeights())
	result.Compliant = len(result.Banned) == 0 &&
		len(result.MissingRequired) == 0 &&
		result.ReadingLevel.InTargetRange

	return result
}

// findBanned scans text for every occurrence of a must_avoid term or
// terminology key. Matching is case-insensitive and whole-word: a term
// only matches between word boundaries, so "guy" never fires inside
// "guys". Occurrences are ordered by position, then term.
func findBanned(text string, pack *types.StylePack) []types.BannedOccurrence {
	occurrences := make([]types.BannedOccurrence, 0)

	for _, banned := range collectBannedTerms(pack) {
		re, err := compileTermPattern(banned.term)
		if err != nil {
			// QuoteMeta makes the pattern safe for any term; an empty
			// match set is the worst a pathological term can produce.
			continue
		}

		for _, loc := range re.FindAllStringIndex(text, -1) {
			occurrences = append(occurrences, types.BannedOccurrence{
				Term:       banned.term,
				Position:   loc[0],
				Snippet:    snippet(text, loc[0], loc[1]),
				Suggestion: banned.suggestion,
			})
		}
	}

	sort.SliceStable(occurrences, func(i, j int) bool {
		if occurrences[i].Position != occurrences[j].Position {
			return occurrences[i].Position < occurrences[j].Position
		}
		return occurrences[i].Term < occurrences[j].Term
	})

	return occurrences
}

// collectBannedTerms merges must_avoid terms and terminology keys into
// one deterministic scan list. A term present in both is scanned once,
// as a must_avoid term without a suggestion. Blank terms are skipped.
func collectBannedTerms(pack *types.StylePack) []bannedTerm {
	terms := make([]bannedTerm, 0, len(pack.MustAvoid)+len(pack.Terminology))
	seen := make(map[string]bool)

	for _, term := range pack.MustAvoid {
		term = strings.TrimSpace(term)
		if term == "" || seen[strings.ToLower(term)] {
			continue
		}
		seen[strings.ToLower(term)] = true
		terms = append(terms, bannedTerm{term: term})
	}

	// Map iteration order is random; sort keys so results stay stable.
	keys := make([]string, 0, len(pack.Terminology))
	for key := range pack.Terminology {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		term := strings.TrimSpace(key)
		if term == "" || seen[strings.ToLower(term)] {
			continue
		}
		seen[strings.ToLower(term)] = true
		preferred := pack.Terminology[key]
		terms = append(terms, bannedTerm{term: term, suggestion: &preferred})
	}

	return terms
}

// compileTermPattern builds the case-insensitive whole-word pattern
// for one configured term or phrase.
func compileTermPattern(term string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
}

// findMissingRequired returns the must_use terms absent from text in
// any form (case-insensitive substring), preserving pack order.
func findMissingRequired(text string, mustUse []string) []string {
	missing := make([]string, 0)
	lowerText := strings.ToLower(text)

	for _, term := range mustUse {
		trimmed := strings.TrimSpace(term)
		if trimmed == "" {
			continue
		}
		if !strings.Contains(lowerText, strings.ToLower(trimmed)) {
			missing = append(missing, term)
		}
	}

	return missing
}

// checkReadingLevel computes the Flesch-Kincaid grade and compares it
// against the pack's target band. An unparseable or empty band label
// disables enforcement entirely. Degenerate text (no words or no
// sentences) yields grade 0 and fails an enforced band.
func checkReadingLevel(text string, bandLabel string) types.ReadingLevel {
	band, enforced := readability.ParseBand(bandLabel)

	if readability.CountWords(text) == 0 || readability.CountSentences(text) == 0 {
		return types.ReadingLevel{Grade: 0.0, InTargetRange: !enforced}
	}

	grade := readability.Grade(text)
	return types.ReadingLevel{
		Grade:         grade,
		InTargetRange: !enforced || band.Contains(grade),
	}
}

// snippet extracts a short excerpt around the match at [start, end),
// trimmed to rune boundaries and flattened to a single line.
func snippet(text string, start, end int) string {
	from := start - snippetRadius
	if from < 0 {
		from = 0
	}
	for from > 0 && !utf8.RuneStart(text[from]) {
		from--
	}

	to := end + snippetRadius
	if to > len(text) {
		to = len(text)
	}
	for to < len(text) && !utf8.RuneStart(text[to]) {
		to++
	}

	excerpt := strings.Join(strings.Fields(text[from:to]), " ")
	if from > 0 {
		excerpt = "..." + excerpt
	}
	if to < len(text) {
		excerpt += "..."
	}
	return excerpt
}
