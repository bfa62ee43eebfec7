package speech

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ABB00717/Clean-Video/internal/config"
	"github.com/ABB00717/Clean-Video/internal/logger"
	"github.com/ABB00717/Clean-Video/internal/segment"
	"github.com/ABB00717/Clean-Video/pkg/executor"
)

// whisperDetector runs a local whisper.cpp binary with JSON output and
// converts the segment offsets into speech intervals. A smaller detect
// model than the transcription model keeps this pass fast.
type whisperDetector struct {
	binaryPath string
	modelPath  string
	language   string
	threads    int
	executor   executor.Executor
	logger     logger.Logger
}

func newWhisperDetector(cfg *config.Config, exec executor.Executor, log logger.Logger) Detector {
	return &whisperDetector{
		binaryPath: cfg.Whisper.BinaryPath,
		modelPath:  cfg.Whisper.DetectModelPath,
		language:   cfg.Whisper.Language,
		threads:    cfg.Whisper.Threads,
		executor:   exec,
		logger:     log,
	}
}

// whisperOutput mirrors the parts of whisper.cpp's -oj JSON we consume.
// Offsets are milliseconds from the start of the audio.
type whisperOutput struct {
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

func (d *whisperDetector) DetectSpeech(ctx context.Context, audioPath string) (Result, error) {
	duration, err := ProbeDuration(ctx, d.executor, audioPath)
	if err != nil {
		return Result{}, fmt.Errorf("probe duration: %w", err)
	}

	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + "_detect"
	jsonPath := outputPrefix + ".json"
	defer os.Remove(jsonPath)

	args := []string{
		"-m", d.modelPath,
		"-f", audioPath,
		"-oj",
		"-l", d.language,
		"-t", strconv.Itoa(d.threads),
		"--output-file", outputPrefix,
	}

	d.logger.Debug(ctx, "Detecting speech intervals: %s", audioPath)
	if _, err := d.executor.Execute(ctx, d.binaryPath, args...); err != nil {
		return Result{}, fmt.Errorf("whisper detect: %w", err)
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return Result{}, fmt.Errorf("read whisper output: %w", err)
	}

	intervals, err := parseWhisperOutput(data)
	if err != nil {
		return Result{}, err
	}

	return Result{Intervals: intervals, Duration: duration}, nil
}

func parseWhisperOutput(data []byte) ([]segment.SpeechInterval, error) {
	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse whisper output: %w", err)
	}

	var intervals []segment.SpeechInterval
	for _, seg := range out.Transcription {
		if strings.TrimSpace(seg.Text) == "" {
			continue
		}
		iv := segment.SpeechInterval{
			Start: float64(seg.Offsets.From) / 1000,
			End:   float64(seg.Offsets.To) / 1000,
		}
		if iv.End <= iv.Start {
			continue
		}
		// whisper.cpp segments can butt against each other with equal
		// boundaries; clamp overlaps so downstream ordering holds.
		if n := len(intervals); n > 0 && iv.Start < intervals[n-1].End {
			iv.Start = intervals[n-1].End
			if iv.End <= iv.Start {
				continue
			}
		}
		intervals = append(intervals, iv)
	}

	return intervals, nil
}
