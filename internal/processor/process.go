package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Process runs the full pipeline for one video: silence removal,
// transcription, two-pass refinement and file finalization
func (p *implProcessor) Process(ctx context.Context, videoPath string) error {
	startTime := time.Now()

	if _, err := os.Stat(videoPath); err != nil {
		return fmt.Errorf("input not found: %w", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing: %s", filepath.Base(videoPath))
	p.logger.Info(ctx, "========================================")

	p.logger.Info(ctx, ">>> Step 1: Silence Removal")
	trimmedPath, trimmed, err := p.removeSilence(ctx, videoPath)
	if err != nil {
		return fmt.Errorf("remove silence: %w", err)
	}

	p.logger.Info(ctx, ">>> Step 2: Transcription")
	srtPath, err := p.transcribe(ctx, trimmedPath)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	p.logger.Info(ctx, ">>> Step 3: Subtitle Refinement")
	finalSRT, err := p.refineSubtitles(ctx, srtPath, trimmedPath, videoPath)
	if err != nil {
		return fmt.Errorf("refine subtitles: %w", err)
	}

	p.logger.Info(ctx, ">>> Step 4: Finalizing Files")
	if err := p.finalize(ctx, videoPath, trimmedPath, srtPath, finalSRT, trimmed); err != nil {
		return fmt.Errorf("finalize: %w", err)
	}

	p.logger.Info(ctx, "Processing complete for %s (%s)",
		filepath.Base(videoPath), time.Since(startTime).Round(time.Second))
	return nil
}
