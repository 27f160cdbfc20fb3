package content

import (
	"html"
	"regexp"
	"strings"
)

var (
	paragraphBreak = regexp.MustCompile(`(?i)</p>|<br\s*/?>`)
	htmlTag        = regexp.MustCompile(`<[^>]*>`)
)

// SplitParagraphs breaks a stored HTML fragment into plain-text paragraphs:
// split on paragraph and line-break tags, strip remaining markup, unescape
// entities, trim, drop empties. Always returns a non-nil slice.
func SplitParagraphs(fragment string) []string {
	parts := paragraphBreak.Split(fragment, -1)
	out := []string{}
	for _, part := range parts {
		text := htmlTag.ReplaceAllString(part, "")
		text = strings.TrimSpace(html.UnescapeString(text))
		if text != "" {
			out = append(out, text)
		}
	}
	return out
}
