// Package readability computes approximate reading-grade levels for English text.
package readability

import (
	"math"
	"regexp"
	"strings"
)

// Flesch-Kincaid grade level coefficients
const (
	wordsPerSentenceWeight = 0.39
	syllablesPerWordWeight = 11.8
	gradeOffset            = 15.59
)

var (
	sentenceRe   = regexp.MustCompile(`[.!?]+`)
	wordRe       = regexp.MustCompile(`\b\w+\b`)
	letterRunRe  = regexp.MustCompile(`[a-z]+`)
	silentEndRe  = regexp.MustCompile(`([^laeiouy]es|ed|[^laeiouy]e)$`)
	leadingYRe   = regexp.MustCompile(`^y`)
	vowelGroupRe = regexp.MustCompile(`[aeiouy]{1,2}`)
)

// Grade computes the Flesch-Kincaid grade level of text, rounded to
// one decimal and floored at 0. Text with no words or no sentences
// yields the degenerate grade 0.
func Grade(text string) float64 {
	sentences := CountSentences(text)
	words := CountWords(text)
	if sentences == 0 || words == 0 {
		return 0.0
	}

	syllables := CountSyllables(text)
	grade := wordsPerSentenceWeight*(float64(words)/float64(sentences)) +
		syllablesPerWordWeight*(float64(syllables)/float64(words)) -
		gradeOffset

	if grade < 0 {
		return 0.0
	}
	return math.Round(grade*10) / 10
}

// CountSentences counts sentences delimited by runs of terminal
// punctuation (".", "!", "?").
func CountSentences(text string) int {
	return len(sentenceRe.FindAllString(text, -1))
}

// CountWords counts whitespace/punctuation-delimited words.
func CountWords(text string) int {
	return len(wordRe.FindAllString(text, -1))
}

// CountSyllables estimates the syllable count of text with a
// vowel-group heuristic: common silent endings are stripped, vowel
// runs of one or two letters count as one syllable each, and every
// word counts at least one.
func CountSyllables(text string) int {
	words := letterRunRe.FindAllString(strings.ToLower(text), -1)

	count := 0
	for _, word := range words {
		stripped := silentEndRe.ReplaceAllString(word, "")
		stripped = leadingYRe.ReplaceAllString(stripped, "")

		groups := vowelGroupRe.FindAllString(stripped, -1)
		if len(groups) == 0 {
			count++
			continue
		}
		count += len(groups)
	}

	return count
}
