package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Transcribe runs whisper on the audio file and parses the resulting SRT
// into ordered segments. Engine failures are wrapped and returned; there is
// no retry.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	t.logger.Info(ctx, "Starting transcription (language: %s, beam size: %d): %s",
		t.cfg.Language, t.cfg.BeamSize, audioPath)

	// Whisper arguments
	// -m: Model path
	// -f: Input audio file
	// -osrt: Output SRT format
	// -l: Force language (prevents hallucination)
	// -t: Number of threads
	// -bo: Best-of width for beam search
	// --output-file: Output file prefix
	args := []string{
		"-m", t.cfg.ModelPath,
		"-f", audioPath,
		"-osrt",
		"-l", t.cfg.Language,
		"-t", strconv.Itoa(t.cfg.Threads),
		"-bo", strconv.Itoa(t.cfg.BeamSize),
		"--output-file", outputPrefix,
	}

	if _, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	srtPath := outputPrefix + ".srt"
	data, err := os.ReadFile(srtPath)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	if err := os.Remove(srtPath); err != nil {
		t.logger.Warn(ctx, "Failed to cleanup transcript file %s: %v", srtPath, err)
	}

	result := ParseSRT(string(data))
	t.logger.Info(ctx, "Transcription completed: %d segments", len(result.Segments))
	return result, nil
}
