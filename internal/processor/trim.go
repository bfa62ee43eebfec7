package processor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ABB00717/Clean-Video/internal/segment"
)

// removeSilence detects speech, computes keep intervals and transcodes
// the video with the silent stretches cut out. When there is nothing to
// trim (no speech, no material gaps, or nothing retainable) the original
// path is returned untouched with trimmed=false; only a failed transcode
// is fatal for the video.
func (p *implProcessor) removeSilence(ctx context.Context, videoPath string) (string, bool, error) {
	audioPath, err := p.extractAudio(ctx, videoPath)
	if err != nil {
		return "", false, fmt.Errorf("extract audio: %w", err)
	}
	defer p.cleanupTempFile(ctx, audioPath)

	p.logger.Info(ctx, "Detecting silence in: %s", videoPath)

	result, err := p.detector.DetectSpeech(ctx, audioPath)
	if err != nil {
		return "", false, fmt.Errorf("detect speech: %w", err)
	}
	p.logger.Info(ctx, "Video duration: %.2fs, %d speech intervals", result.Duration, len(result.Intervals))

	threshold := p.cfg.Trim.GapThreshold
	keeps, err := segment.ComputeKeepIntervals(result.Intervals, result.Duration, threshold)
	switch {
	case errors.Is(err, segment.ErrNoSpeech):
		p.logger.Warn(ctx, "No speech detected, skipping trim: %s", videoPath)
		return videoPath, false, nil
	case errors.Is(err, segment.ErrNoRetainableContent):
		p.logger.Warn(ctx, "No video segments remain after trimming, keeping original: %s", videoPath)
		return videoPath, false, nil
	case err != nil:
		return "", false, fmt.Errorf("compute keep intervals: %w", err)
	}

	if len(keeps) == 1 && keeps[0].Start == 0 && keeps[0].End == result.Duration {
		p.logger.Info(ctx, "No silence gaps longer than %.1fs found", threshold)
		return videoPath, false, nil
	}

	spec := segment.BuildTranscodeSpec(keeps)
	outputPath := strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) + "_trimmed.mp4"

	p.logger.Info(ctx, "Trimming %d silence gaps -> %s", len(keeps)-1, outputPath)

	args := spec.FFmpegArgs(videoPath, outputPath,
		p.cfg.FFmpeg.Encoder, p.cfg.FFmpeg.Preset, p.cfg.FFmpeg.AudioCodec)
	if _, err := p.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		// The CommandError inside carries ffmpeg's stderr
		return "", false, fmt.Errorf("transcode failed: %w", err)
	}

	return outputPath, true, nil
}
