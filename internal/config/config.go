package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Trim        TrimConfig        `yaml:"trim"`
	Speech      SpeechConfig      `yaml:"speech"`
	Refine      RefineConfig      `yaml:"refine"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`

	// Secrets come from the environment (.env), never from the YAML file.
	GeminiAPIKeys []string `yaml:"-"`
	OpenAIAPIKey  string   `yaml:"-"`
}

type WhisperConfig struct {
	ModelPath       string `yaml:"model_path"`
	DetectModelPath string `yaml:"detect_model_path"`
	BinaryPath      string `yaml:"binary_path"`
	Language        string `yaml:"language"`
	Prompt          string `yaml:"prompt"`
	Threads         int    `yaml:"threads"`
}

type FFmpegConfig struct {
	Encoder    string `yaml:"encoder"`
	Preset     string `yaml:"preset"`
	AudioCodec string `yaml:"audio_codec"`
}

type TrimConfig struct {
	GapThreshold float64 `yaml:"gap_threshold"`
}

type SpeechConfig struct {
	// Backend selects the speech-interval detector: "whisper" or "openai"
	Backend string `yaml:"backend"`
}

type RefineConfig struct {
	Workers        int    `yaml:"workers"`
	WindowSize     int    `yaml:"window_size"`
	MergeLimit     int    `yaml:"merge_limit"`
	FlashModel     string `yaml:"flash_model"`
	ProModel       string `yaml:"pro_model"`
	RequestTimeout int    `yaml:"request_timeout_seconds"`
}

type PathsConfig struct {
	Input string `yaml:"input"`
	Temp  string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

func (c *Config) Validate() error {
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Speech.Backend == "openai" && c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required for the openai speech backend")
	}
	if c.Trim.GapThreshold < 0 {
		return fmt.Errorf("trim.gap_threshold must not be negative")
	}

	if c.Whisper.DetectModelPath == "" {
		c.Whisper.DetectModelPath = c.Whisper.ModelPath
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "zh"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}
	if c.FFmpeg.Encoder == "" {
		c.FFmpeg.Encoder = "libx264"
	}
	if c.FFmpeg.Preset == "" {
		c.FFmpeg.Preset = "medium"
	}
	if c.FFmpeg.AudioCodec == "" {
		c.FFmpeg.AudioCodec = "aac"
	}
	if c.Trim.GapThreshold == 0 {
		c.Trim.GapThreshold = 1.0
	}
	if c.Speech.Backend == "" {
		c.Speech.Backend = "whisper"
	}
	if c.Refine.Workers == 0 {
		c.Refine.Workers = 20
	}
	if c.Refine.WindowSize == 0 {
		c.Refine.WindowSize = 100
	}
	if c.Refine.MergeLimit == 0 {
		c.Refine.MergeLimit = 30
	}
	if c.Refine.FlashModel == "" {
		c.Refine.FlashModel = "gemini-2.5-flash"
	}
	if c.Refine.ProModel == "" {
		c.Refine.ProModel = "gemini-2.5-pro"
	}
	if c.Refine.RequestTimeout == 0 {
		c.Refine.RequestTimeout = 120
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

// loadSecrets pulls API keys from the environment. GEMINI_API_KEYS accepts a
// comma-separated list so quota exhaustion can rotate to the next key.
func (c *Config) loadSecrets() {
	if raw := os.Getenv("GEMINI_API_KEYS"); raw != "" {
		for _, key := range strings.Split(raw, ",") {
			if key = strings.TrimSpace(key); key != "" {
				c.GeminiAPIKeys = append(c.GeminiAPIKeys, key)
			}
		}
	}
	if len(c.GeminiAPIKeys) == 0 {
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			c.GeminiAPIKeys = []string{key}
		}
	}
	c.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
}
