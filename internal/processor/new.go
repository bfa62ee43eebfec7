package processor

import (
	"github.com/ABB00717/Clean-Video/internal/config"
	"github.com/ABB00717/Clean-Video/internal/gemini"
	"github.com/ABB00717/Clean-Video/internal/logger"
	"github.com/ABB00717/Clean-Video/internal/speech"
	"github.com/ABB00717/Clean-Video/pkg/executor"
)

type implProcessor struct {
	cfg      *config.Config
	executor executor.Executor
	detector speech.Detector
	ai       *gemini.Client
	logger   logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, detector speech.Detector, ai *gemini.Client, log logger.Logger) Processor {
	return &implProcessor{
		cfg:      cfg,
		executor: exec,
		detector: detector,
		ai:       ai,
		logger:   log,
	}
}
