package speech

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ABB00717/Clean-Video/internal/logger"
	"github.com/ABB00717/Clean-Video/internal/segment"
)

// openaiDetector uses the OpenAI transcription API in verbose-JSON mode,
// which returns per-segment timestamps alongside the text.
type openaiDetector struct {
	client   *openai.Client
	language string
	prompt   string
	logger   logger.Logger
}

func newOpenAIDetector(apiKey, language, prompt string, log logger.Logger) Detector {
	return &openaiDetector{
		client:   openai.NewClient(apiKey),
		language: language,
		prompt:   prompt,
		logger:   log,
	}
}

func (d *openaiDetector) DetectSpeech(ctx context.Context, audioPath string) (Result, error) {
	d.logger.Debug(ctx, "Detecting speech intervals via OpenAI: %s", audioPath)

	resp, err := d.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
		Format:   openai.AudioResponseFormatVerboseJSON,
		Language: d.language,
		Prompt:   d.prompt,
	})
	if err != nil {
		return Result{}, fmt.Errorf("openai transcription: %w", err)
	}

	var intervals []segment.SpeechInterval
	for _, seg := range resp.Segments {
		iv := segment.SpeechInterval{Start: seg.Start, End: seg.End}
		if iv.End <= iv.Start {
			continue
		}
		if n := len(intervals); n > 0 && iv.Start < intervals[n-1].End {
			iv.Start = intervals[n-1].End
			if iv.End <= iv.Start {
				continue
			}
		}
		intervals = append(intervals, iv)
	}

	return Result{Intervals: intervals, Duration: resp.Duration}, nil
}
