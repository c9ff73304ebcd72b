package domain

import (
	"strings"

	"golang.org/x/net/html"
)

// PlainSummary returns the summary with markup removed and entities decoded
func (s Show) PlainSummary() string {
	return StripMarkup(s.Summary)
}

// StripMarkup drops tags from an HTML fragment and collapses whitespace
func StripMarkup(fragment string) string {
	if fragment == "" {
		return ""
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or a malformed tail; either way keep what was read
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			// Block-level tags separate words
			name, _ := z.TagName()
			switch string(name) {
			case "p", "br", "div", "li":
				b.WriteByte(' ')
			}
		}
	}
}
