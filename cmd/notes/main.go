package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/quangnd/noteflow/internal/config"
	"github.com/quangnd/noteflow/internal/logger"
	"github.com/quangnd/noteflow/internal/processor"
	"github.com/quangnd/noteflow/internal/summarizer"
	"github.com/quangnd/noteflow/internal/transcriber"
	"github.com/quangnd/noteflow/internal/watcher"
	"github.com/quangnd/noteflow/pkg/executor"
)

func main() {
	var (
		configPath string
		videoPath  string
		watch      bool
	)
	flag.StringVar(&configPath, "config", "config.yaml", "Path to config file")
	flag.StringVar(&videoPath, "video", "", "Video file to process")
	flag.BoolVar(&watch, "watch", false, "Watch the input directory for new videos")
	flag.Parse()

	if err := run(configPath, videoPath, watch); err != nil {
		color.Red("Processing failed: %v", err)
		os.Exit(1)
	}
}

func run(configPath, videoPath string, watch bool) error {
	ctx := context.Background()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level)

	apiKeys := cfg.Summarizer.APIKeys
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		apiKeys = append(apiKeys, key)
	}
	if len(apiKeys) == 0 {
		return fmt.Errorf("no Gemini API key configured (summarizer.api_keys or GEMINI_API_KEY)")
	}

	exec := executor.New()
	trans := transcriber.New(cfg.Whisper, exec, log)
	engine := summarizer.NewGeminiEngine(apiKeys, cfg.Summarizer.Model, log)
	summ := summarizer.New(cfg.Summarizer, engine, log)
	proc := processor.New(cfg, exec, trans, summ, log)

	if err := os.MkdirAll(cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if watch {
		return runWatch(ctx, cfg, proc, log)
	}
	return runOnce(ctx, proc, videoPath)
}

func runOnce(ctx context.Context, proc processor.Processor, videoPath string) error {
	if videoPath == "" {
		return fmt.Errorf("no video file given (use -video or -watch)")
	}

	if _, err := os.Stat(videoPath); err != nil {
		color.Red("ERROR: Video file not found at: %s", videoPath)
		fmt.Println("\nHOW TO FIX:")
		fmt.Println("1. Check the path for typos")
		fmt.Println("2. Use an absolute path, or a path relative to the current directory")
		fmt.Println("3. Pass it with: -video /path/to/lecture.mp4")
		os.Exit(1)
	}

	spinner := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(color.CyanString("🎬 Processing video...")),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWidth(20),
		progressbar.OptionEnableColorCodes(true),
	)

	err := proc.Process(ctx, videoPath)
	spinner.Finish()
	fmt.Print("\n")

	if errors.Is(err, processor.ErrExtractAudio) {
		return fmt.Errorf("could not extract audio from %s (see log above)", videoPath)
	}
	if err != nil {
		return err
	}

	color.Green("🎉 Processing complete!")
	return nil
}

func runWatch(ctx context.Context, cfg *config.Config, proc processor.Processor, log logger.Logger) error {
	if err := os.MkdirAll(cfg.Paths.Input, 0755); err != nil {
		return fmt.Errorf("create input directory: %w", err)
	}

	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, 1)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Notes pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("watcher: %w", err)
	}

	cancel()
	return nil
}
