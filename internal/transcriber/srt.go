package transcriber

import (
	"strconv"
	"strings"
	"time"
)

// ParseSRT parses SRT subtitle text into a Result.
//
//	1                                   sequence number
//	00:00:00,000 --> 00:00:01,830      start --> end
//	I'm happy to                       line
//	have you here today.               line
//
// Consecutive text lines of one cue are joined with a space. The transcript
// is the cue texts joined in order.
func ParseSRT(text string) *Result {
	result := &Result{}
	if text == "" {
		return result
	}

	var current *Segment
	flush := func() {
		if current != nil && current.Text != "" {
			result.Segments = append(result.Segments, *current)
		}
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if line == "" {
			flush()
			continue
		}

		// Sequence numbers delimit cues but carry no content
		if isDigitOnly(line) {
			flush()
			continue
		}

		if strings.Contains(line, "-->") {
			parts := strings.Split(line, "-->")
			if len(parts) == 2 {
				current = &Segment{
					Start: parseTimestamp(strings.TrimSpace(parts[0])),
					End:   parseTimestamp(strings.TrimSpace(parts[1])),
				}
			}
			continue
		}

		if current != nil {
			if current.Text != "" {
				current.Text += " "
			}
			current.Text += line
		}
	}
	flush()

	texts := make([]string, len(result.Segments))
	for i, s := range result.Segments {
		texts[i] = s.Text
	}
	result.Transcript = strings.Join(texts, " ")

	return result
}

// parseTimestamp converts "HH:MM:SS,mmm" to a duration. Malformed input
// yields zero rather than an error; SRT emitted by whisper is well-formed.
func parseTimestamp(s string) time.Duration {
	s = strings.ReplaceAll(s, ",", ".")
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0
	}

	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	seconds, _ := strconv.ParseFloat(parts[2], 64)

	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds*float64(time.Second))
}

func isDigitOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
