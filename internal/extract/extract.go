// Package extract converts HTML documents to plain text suitable for style linting.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText strips markup from an HTML document and returns its
// visible text with whitespace collapsed. Script and style contents
// are removed. Non-HTML input passes through mostly unchanged, since
// the parser treats it as bare text.
func PlainText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", &ParseError{
			Message: "failed to parse HTML",
			Cause:   err,
		}
	}

	doc.Find("script, style, noscript").Remove()

	// Block elements become line breaks so sentence boundaries survive
	// tag stripping.
	doc.Find("p, div, li, h1, h2, h3, h4, h5, h6, br").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	text := doc.Text()
	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		lines = append(lines, strings.Join(fields, " "))
	}

	return strings.Join(lines, "\n"), nil
}
