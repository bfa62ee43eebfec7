package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// transcribe runs the full-size whisper model over the (possibly trimmed)
// video and writes an SRT next to it
func (p *implProcessor) transcribe(ctx context.Context, videoPath string) (string, error) {
	audioPath, err := p.extractAudio(ctx, videoPath)
	if err != nil {
		return "", fmt.Errorf("extract audio: %w", err)
	}
	defer p.cleanupTempFile(ctx, audioPath)

	outputPrefix := strings.TrimSuffix(videoPath, filepath.Ext(videoPath))

	p.logger.Info(ctx, "Transcribing with %d threads (language: %s): %s",
		p.cfg.Whisper.Threads, p.cfg.Whisper.Language, videoPath)

	args := []string{
		"-m", p.cfg.Whisper.ModelPath,
		"-f", audioPath,
		"-osrt",
		"-l", p.cfg.Whisper.Language,
		"-t", strconv.Itoa(p.cfg.Whisper.Threads),
		"-bo", "5",
		"--prompt", p.cfg.Whisper.Prompt,
		"--output-file", outputPrefix,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.Whisper.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	srtPath := outputPrefix + ".srt"
	p.logger.Info(ctx, "Transcription completed: %s", srtPath)
	return srtPath, nil
}
