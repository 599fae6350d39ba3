package summarizer

import "context"

// Engine is the abstractive summarization capability. Implementations must
// be deterministic (no sampling) for a given input.
type Engine interface {
	Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error)
}

// Summarizer turns a full transcript into bullet-point key takeaways
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}
