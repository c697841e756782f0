package stylelint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/spot/internal/types"
)

func TestLintHTML_FindsTermsAcrossMarkup(t *testing.T) {
	pack := &types.StylePack{
		MustUse:   []string{"accessible"},
		MustAvoid: []string{"revolutionary"},
	}
	html := `<html><body>
		<h1>Our revolutionary product</h1>
		<p>It is accessible to everyone.</p>
		<script>var revolutionary = "not content";</script>
	</body></html>`

	result, err := LintHTML(html, pack)
	require.NoError(t, err)

	require.Len(t, result.Banned, 1, "script contents must not be linted")
	assert.Equal(t, "revolutionary", result.Banned[0].Term)
	assert.Empty(t, result.MissingRequired)
}

func TestLintHTML_TagSplitWordsStayWhole(t *testing.T) {
	pack := &types.StylePack{MustAvoid: []string{"synergy"}}
	html := `<p>No banned terms in <b>this</b> sentence.</p><p>synergy</p>`

	result, err := LintHTML(html, pack)
	require.NoError(t, err)
	require.Len(t, result.Banned, 1)
}

func TestLintHTML_PlainTextPassesThrough(t *testing.T) {
	pack := &types.StylePack{MustAvoid: []string{"synergy"}}

	result, err := LintHTML("Plain synergy, no markup.", pack)
	require.NoError(t, err)
	require.Len(t, result.Banned, 1)
}
