package speech

import (
	"fmt"

	"github.com/ABB00717/Clean-Video/internal/config"
	"github.com/ABB00717/Clean-Video/internal/logger"
	"github.com/ABB00717/Clean-Video/pkg/executor"
)

// New builds the detector selected by speech.backend
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Detector, error) {
	switch cfg.Speech.Backend {
	case "whisper":
		return newWhisperDetector(cfg, exec, log), nil
	case "openai":
		return newOpenAIDetector(cfg.OpenAIAPIKey, cfg.Whisper.Language, cfg.Whisper.Prompt, log), nil
	default:
		return nil, fmt.Errorf("unknown speech backend: %q", cfg.Speech.Backend)
	}
}
