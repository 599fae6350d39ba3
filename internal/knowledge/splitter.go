package knowledge

import (
	"regexp"
	"strings"
)

// Splits on newlines, bullet markers and numbered-list markers ("1)", "2)"...)
var sentenceDelimiter = regexp.MustCompile(`\n|•|- |\*|[0-9]+\)`)

// SplitSentences segments raw text into sentence/bullet units. Whitespace is
// trimmed and empty fragments dropped; order is preserved, duplicates kept.
// Text without any delimiter comes back as a single unit.
func SplitSentences(text string) []string {
	fragments := sentenceDelimiter.Split(text, -1)

	sentences := make([]string, 0, len(fragments))
	for _, f := range fragments {
		f = strings.TrimSpace(f)
		if f != "" {
			sentences = append(sentences, f)
		}
	}
	return sentences
}
