// Package htmltext derives plain text from upstream HTML fragments,
// e.g. contract bodies whose excerpt is shown in listings and meta tags.
package htmltext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Excerpt extracts the visible text of an HTML fragment, collapses
// whitespace and truncates to maxLen runes on a word boundary where possible.
// Malformed HTML degrades to the raw input, never an error.
func Excerpt(html string, maxLen int) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	text := html
	if err == nil {
		doc.Find("script,style").Remove()
		text = doc.Text()
	}
	text = strings.Join(strings.Fields(text), " ")
	if maxLen <= 0 {
		return text
	}

	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	cut := string(runes[:maxLen])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "…"
}
