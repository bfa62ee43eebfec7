package speech

import (
	"context"

	"github.com/ABB00717/Clean-Video/internal/segment"
)

// Result is what a detector reports for one audio file: ordered,
// non-overlapping speech intervals plus the total duration in seconds.
type Result struct {
	Intervals []segment.SpeechInterval
	Duration  float64
}

// Detector finds speech intervals in an extracted audio file
type Detector interface {
	DetectSpeech(ctx context.Context, audioPath string) (Result, error)
}
