package parser

import (
	"regexp"
	"strings"
)

var reWhitespace = regexp.MustCompile(`\s+`)

// Document is receipt text prepared for extraction: whitespace collapsed to
// single spaces so OCR line breaks don't split label/value pairs, with the
// original casing preserved for captured values. Trigger and keyword lookups
// go through the lowercased shadow copy.
type Document struct {
	Text  string
	lower string
}

func NewDocument(raw string) Document {
	collapsed := reWhitespace.ReplaceAllString(strings.TrimSpace(raw), " ")
	return Document{
		Text:  collapsed,
		lower: strings.ToLower(collapsed),
	}
}

// Contains reports whether the document contains the given lowercase substring.
func (d Document) Contains(sub string) bool {
	return strings.Contains(d.lower, sub)
}

// captureAfter runs re against text and returns the first capture group,
// trimmed. Empty string means no match.
func captureAfter(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}
