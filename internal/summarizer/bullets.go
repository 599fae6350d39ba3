package summarizer

import "strings"

// Fragments at or below this length are dropped as noise
const minBulletLen = 15

// FormatBulletPoints splits each summary on sentence boundaries and formats
// the meaningful fragments as bullet lines. The boundary heuristic (". " as
// separator) can mis-split abbreviations and decimal numbers; that is an
// accepted limitation.
func FormatBulletPoints(summaries []string) string {
	var bullets []string
	for _, summary := range summaries {
		sentences := strings.Split(strings.ReplaceAll(summary, ". ", ".|"), "|")
		for _, sentence := range sentences {
			sentence = strings.TrimSpace(sentence)
			if len(sentence) > minBulletLen {
				bullets = append(bullets, "• "+sentence)
			}
		}
	}
	return strings.Join(bullets, "\n")
}
