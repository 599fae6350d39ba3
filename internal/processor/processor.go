package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/quangnd/noteflow/internal/notes"
)

// Process runs the full linear pipeline for one video: extract audio,
// transcribe, summarize, write notes. Each step is a terminal failure
// point; a failed pipeline produces no output file.
func (p *implProcessor) Process(ctx context.Context, videoPath string) error {
	startTime := time.Now()
	title := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing: %s", videoPath)
	p.logger.Info(ctx, "========================================")

	// Step 1: Extract audio. Failure is logged and converted to the
	// sentinel abort, never re-raised with the raw ffmpeg error.
	audioPath, err := p.extractAudio(ctx, videoPath)
	if err != nil {
		p.logger.Error(ctx, "Error extracting audio: %v", err)
		return ErrExtractAudio
	}
	defer p.cleanupTempFile(ctx, audioPath)

	// Step 2: Transcribe
	result, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	// Step 3: Summarize
	summary, err := p.summarizer.Summarize(ctx, result.Transcript)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	// Step 4: Write notes
	doc := &notes.Document{
		Title:      title,
		Transcript: result.Transcript,
		Summary:    summary,
		Segments:   result.Segments,
	}

	txtPath := filepath.Join(p.cfg.Paths.Output, title+"_notes.txt")
	if err := notes.WriteText(doc, txtPath); err != nil {
		return fmt.Errorf("save notes: %w", err)
	}

	docxPath := filepath.Join(p.cfg.Paths.Output, title+"_notes.docx")
	if err := notes.WriteDocx(doc, docxPath); err != nil {
		p.logger.Warn(ctx, "Failed to write docx notes: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Notes: %s", txtPath)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}
