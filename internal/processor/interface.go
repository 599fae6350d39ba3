package processor

import (
	"context"
	"errors"
)

// ErrExtractAudio signals that audio extraction failed. The underlying
// ffmpeg error is logged, not propagated; callers treat this as a graceful
// pipeline abort.
var ErrExtractAudio = errors.New("audio extraction failed")

// Processor defines the interface for the video-to-notes pipeline
type Processor interface {
	Process(ctx context.Context, videoPath string) error
}
