package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/ABB00717/Clean-Video/internal/config"
	"github.com/ABB00717/Clean-Video/internal/gemini"
	"github.com/ABB00717/Clean-Video/internal/logger"
	"github.com/ABB00717/Clean-Video/internal/processor"
	"github.com/ABB00717/Clean-Video/internal/speech"
	"github.com/ABB00717/Clean-Video/pkg/executor"
)

// pipeline bundles everything a command needs to run the video pipeline
type pipeline struct {
	cfg       *config.Config
	logger    logger.Logger
	processor processor.Processor
}

func buildPipeline(ctx context.Context, configPath string) (*pipeline, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Clean-Video Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "CPU Cores: %d", runtime.NumCPU())
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)

	if err := ensureDirectories(cfg); err != nil {
		return nil, fmt.Errorf("create directories: %w", err)
	}

	exec := executor.New()

	detector, err := speech.New(cfg, exec, log)
	if err != nil {
		return nil, fmt.Errorf("create speech detector: %w", err)
	}

	ai, err := gemini.New(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &pipeline{
		cfg:       cfg,
		logger:    log,
		processor: processor.New(cfg, exec, detector, ai, log),
	}, nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
