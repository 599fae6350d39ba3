package processor_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangnd/noteflow/internal/config"
	"github.com/quangnd/noteflow/internal/logger"
	"github.com/quangnd/noteflow/internal/processor"
	"github.com/quangnd/noteflow/internal/transcriber"
)

type fakeExecutor struct {
	err error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return "", f.err
}

type fakeTranscriber struct{}

func (fakeTranscriber) Transcribe(ctx context.Context, audioPath string) (*transcriber.Result, error) {
	return &transcriber.Result{
		Transcript: "hello from the lecture recording",
		Segments: []transcriber.Segment{
			{Start: 0, End: 2 * time.Second, Text: "hello from"},
			{Start: 2 * time.Second, End: 4 * time.Second, Text: "the lecture recording"},
		},
	}, nil
}

type fakeSummarizer struct{}

func (fakeSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	return "• the lecture says hello to everyone", nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Whisper: config.WhisperConfig{
			ModelPath:  "models/ggml-small.bin",
			BinaryPath: "./whisper",
			Language:   "en",
		},
		Paths: config.PathsConfig{Output: t.TempDir()},
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestProcessWritesNotes(t *testing.T) {
	cfg := testConfig(t)
	p := processor.New(cfg, &fakeExecutor{}, fakeTranscriber{}, fakeSummarizer{}, logger.New("error"))

	video := filepath.Join(t.TempDir(), "lecture.mp4")
	require.NoError(t, os.WriteFile(video, []byte("not a real video"), 0644))

	require.NoError(t, p.Process(context.Background(), video))

	data, err := os.ReadFile(filepath.Join(cfg.Paths.Output, "lecture_notes.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "• the lecture says hello to everyone")
	assert.Contains(t, string(data), "[00:00] hello from")

	assert.FileExists(t, filepath.Join(cfg.Paths.Output, "lecture_notes.docx"))
}

func TestProcessExtractionFailure(t *testing.T) {
	cfg := testConfig(t)
	exec := &fakeExecutor{err: fmt.Errorf("missing codec")}
	p := processor.New(cfg, exec, fakeTranscriber{}, fakeSummarizer{}, logger.New("error"))

	err := p.Process(context.Background(), "broken.mp4")
	assert.True(t, errors.Is(err, processor.ErrExtractAudio))

	// no partial output
	entries, readErr := os.ReadDir(cfg.Paths.Output)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}
