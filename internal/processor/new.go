package processor

import (
	"github.com/quangnd/noteflow/internal/config"
	"github.com/quangnd/noteflow/internal/logger"
	"github.com/quangnd/noteflow/internal/summarizer"
	"github.com/quangnd/noteflow/internal/transcriber"
	"github.com/quangnd/noteflow/pkg/executor"
)

type implProcessor struct {
	cfg         *config.Config
	executor    executor.Executor
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	logger      logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, trans transcriber.Transcriber,
	summ summarizer.Summarizer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		executor:    exec,
		transcriber: trans,
		summarizer:  summ,
		logger:      log,
	}
}
