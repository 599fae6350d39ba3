package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// extractAudio demuxes the audio track into a 16kHz mono WAV next to the
// video. This format is what whisper expects.
func (p *implProcessor) extractAudio(ctx context.Context, videoPath string) (string, error) {
	audioPath := strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) + "_temp.wav"

	p.logger.Info(ctx, "Extracting audio from %s...", videoPath)

	// FFmpeg arguments for audio extraction
	// -i: Input video
	// -vn: No video (audio only)
	// -ar: Sample rate (16kHz is optimal for whisper)
	// -ac 1: Mono channel
	// -c:a: Audio codec, PCM 16-bit little-endian by default
	// -y: Overwrite output file if exists
	args := []string{
		"-i", videoPath,
		"-vn",
		"-ar", strconv.Itoa(p.cfg.FFmpeg.SampleRate),
		"-ac", "1",
		"-c:a", p.cfg.FFmpeg.AudioCodec,
		"-threads", "0",
		"-y",
		audioPath,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.FFmpeg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	p.logger.Info(ctx, "Audio extracted: %s", audioPath)
	return audioPath, nil
}
