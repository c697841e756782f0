// Package readability computes approximate reading-grade levels for English text.
package readability

import (
	"regexp"
	"strconv"
)

var bandRe = regexp.MustCompile(`(\d+)\D+(\d+)`)

// Band represents a parsed target reading band, e.g. "Grade 8-10".
type Band struct {
	Min int
	Max int
}

// ParseBand parses a reading-band label like "Grade 8-10" into its
// inclusive bounds. The second return value is false when the label
// carries no recognizable pair of grades, in which case no range is
// enforced.
func ParseBand(label string) (Band, bool) {
	m := bandRe.FindStringSubmatch(label)
	if m == nil {
		return Band{}, false
	}

	lo, err := strconv.Atoi(m[1])
	if err != nil {
		return Band{}, false
	}
	hi, err := strconv.Atoi(m[2])
	if err != nil {
		return Band{}, false
	}
	if hi < lo {
		lo, hi = hi, lo
	}

	return Band{Min: lo, Max: hi}, true
}

// Contains reports whether grade falls inside the band, inclusive.
func (b Band) Contains(grade float64) bool {
	return grade >= float64(b.Min) && grade <= float64(b.Max)
}
