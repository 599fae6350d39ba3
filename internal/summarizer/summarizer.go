package summarizer

import (
	"context"
	"fmt"
	"strings"
)

// Summarize splits the transcript into chunks, summarizes each qualifying
// chunk sequentially, and formats the results as bullet points. Chunks with
// fewer than the configured minimum word count are skipped — too short to
// summarize meaningfully.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	chunks := SplitChunks(transcript, s.cfg.MaxChunkLen)
	s.logger.Info(ctx, "Summarizing transcript: %d chunks", len(chunks))

	var summaries []string
	for i, chunk := range chunks {
		if len(strings.Fields(chunk)) < s.cfg.MinChunkWords {
			s.logger.Debug(ctx, "Skipping chunk %d/%d: too short", i+1, len(chunks))
			continue
		}

		s.logger.Info(ctx, "[%d/%d] Extracting key points...", i+1, len(chunks))

		summary, err := s.engine.Summarize(ctx, chunk, s.cfg.MaxLength, s.cfg.MinLength)
		if err != nil {
			return "", fmt.Errorf("summarize chunk %d: %w", i+1, err)
		}
		summaries = append(summaries, strings.TrimSpace(summary))
	}

	return FormatBulletPoints(summaries), nil
}
