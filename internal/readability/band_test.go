package readability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBand_GradeLabel(t *testing.T) {
	band, ok := ParseBand("Grade 8-10")
	require.True(t, ok)
	assert.Equal(t, 8, band.Min)
	assert.Equal(t, 10, band.Max)
}

func TestParseBand_LooseFormats(t *testing.T) {
	tests := []struct {
		label string
		min   int
		max   int
	}{
		{"Grade 6-8", 6, 8},
		{"grades 6 to 8", 6, 8},
		{"8-10", 8, 10},
		{"between 5 and 7", 5, 7},
	}

	for _, tt := range tests {
		band, ok := ParseBand(tt.label)
		require.True(t, ok, "label %q should parse", tt.label)
		assert.Equal(t, tt.min, band.Min, "label %q", tt.label)
		assert.Equal(t, tt.max, band.Max, "label %q", tt.label)
	}
}

func TestParseBand_ReversedBoundsSwap(t *testing.T) {
	band, ok := ParseBand("Grade 10-8")
	require.True(t, ok)
	assert.Equal(t, 8, band.Min)
	assert.Equal(t, 10, band.Max)
}

func TestParseBand_Unparseable(t *testing.T) {
	for _, label := range []string{"", "advanced", "Grade 8", "college level"} {
		_, ok := ParseBand(label)
		assert.False(t, ok, "label %q should not parse", label)
	}
}

func TestBand_Contains(t *testing.T) {
	band := Band{Min: 8, Max: 10}

	assert.True(t, band.Contains(8.0))
	assert.True(t, band.Contains(9.3))
	assert.True(t, band.Contains(10.0))
	assert.False(t, band.Contains(7.9))
	assert.False(t, band.Contains(10.1))
}
