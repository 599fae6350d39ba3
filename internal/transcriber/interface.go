package transcriber

import (
	"context"
	"time"
)

// Segment is one timestamped piece of recognized speech, ordered by time
type Segment struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// Result holds the concatenated transcript and its segments
type Result struct {
	Transcript string
	Segments   []Segment
}

// Transcriber defines the interface for speech-to-text conversion
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*Result, error)
}
