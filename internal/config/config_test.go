package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Whisper: WhisperConfig{
					ModelPath:  "models/ggml-small.bin",
					BinaryPath: "./whisper",
					Language:   "en",
				},
				Paths: PathsConfig{
					Output: "data/output",
				},
			},
			wantErr: false,
		},
		{
			name: "missing model path",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "./whisper",
					Language:   "en",
				},
				Paths: PathsConfig{
					Output: "data/output",
				},
			},
			wantErr: true,
		},
		{
			name: "missing language",
			config: Config{
				Whisper: WhisperConfig{
					ModelPath:  "models/ggml-small.bin",
					BinaryPath: "./whisper",
				},
				Paths: PathsConfig{
					Output: "data/output",
				},
			},
			wantErr: true,
		},
		{
			name: "missing output path",
			config: Config{
				Whisper: WhisperConfig{
					ModelPath:  "models/ggml-small.bin",
					BinaryPath: "./whisper",
					Language:   "en",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Whisper: WhisperConfig{
			ModelPath:  "models/ggml-small.bin",
			BinaryPath: "./whisper",
			Language:   "en",
		},
		Paths: PathsConfig{
			Output: "data/output",
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Whisper.BeamSize != 5 {
		t.Errorf("BeamSize = %d, want 5", cfg.Whisper.BeamSize)
	}
	if cfg.Summarizer.MaxChunkLen != 1024 {
		t.Errorf("MaxChunkLen = %d, want 1024", cfg.Summarizer.MaxChunkLen)
	}
	if cfg.Summarizer.MinChunkWords != 50 {
		t.Errorf("MinChunkWords = %d, want 50", cfg.Summarizer.MinChunkWords)
	}
	if cfg.Chat.TopK != 1 {
		t.Errorf("TopK = %d, want 1", cfg.Chat.TopK)
	}
	if cfg.FFmpeg.BinaryPath != "ffmpeg" {
		t.Errorf("FFmpeg.BinaryPath = %q, want %q", cfg.FFmpeg.BinaryPath, "ffmpeg")
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
whisper:
  model_path: "models/ggml-small.bin"
  binary_path: "./whisper"
  language: "en"
  beam_size: 5

paths:
  input: "data/input"
  output: "data/output"

logging:
  level: "info"

summarizer:
  model: "gemini-2.5-flash"
  max_chunk_len: 1024
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Whisper.ModelPath != "models/ggml-small.bin" {
		t.Errorf("ModelPath = %v, want %v", cfg.Whisper.ModelPath, "models/ggml-small.bin")
	}
	if cfg.Paths.Input != "data/input" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "data/input")
	}
	if cfg.Summarizer.MinLength != 25 {
		t.Errorf("MinLength = %d, want default 25", cfg.Summarizer.MinLength)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
