package domain

import (
	"strings"
	"unicode"
)

// CleanText prepares user-entered text for storage:
//   - trims leading/trailing whitespace
//   - collapses inner runs of spaces and tabs into a single space
//
// Case is preserved; questions and answers are case-sensitive.
// Newlines are kept so multi-line answers survive.
func CleanText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r != '\n' && unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
