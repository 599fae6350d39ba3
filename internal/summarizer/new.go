package summarizer

import (
	"github.com/quangnd/noteflow/internal/config"
	"github.com/quangnd/noteflow/internal/logger"
)

type implSummarizer struct {
	cfg    config.SummarizerConfig
	engine Engine
	logger logger.Logger
}

// New creates a Summarizer that chunks transcripts and summarizes each
// chunk with the given engine.
func New(cfg config.SummarizerConfig, engine Engine, log logger.Logger) Summarizer {
	return &implSummarizer{
		cfg:    cfg,
		engine: engine,
		logger: log,
	}
}
