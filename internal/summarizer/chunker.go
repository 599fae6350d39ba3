package summarizer

import "strings"

// SplitChunks greedily regroups whitespace-delimited words into chunks of at
// most roughly maxLen characters: a chunk is flushed once appending a word
// (plus separator) reaches the limit. The final partial chunk is always
// flushed, so concatenating the chunks' words reproduces the input words.
func SplitChunks(text string, maxLen int) []string {
	words := strings.Fields(text)

	var chunks []string
	var current []string
	currentLen := 0

	for _, word := range words {
		current = append(current, word)
		currentLen += len(word) + 1
		if currentLen >= maxLen {
			chunks = append(chunks, strings.Join(current, " "))
			current = nil
			currentLen = 0
		}
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}

	return chunks
}
