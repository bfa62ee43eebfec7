package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// finalize swaps the pipeline outputs into place: the original video is
// kept as *_orig, the trimmed video takes the original name, the refined
// SRT takes the video's name, and intermediates are removed.
func (p *implProcessor) finalize(ctx context.Context, videoPath, trimmedPath, rawSRT, finalSRT string, trimmed bool) error {
	ext := filepath.Ext(videoPath)
	base := strings.TrimSuffix(videoPath, ext)

	if trimmed {
		backup := base + "_orig" + ext
		if _, err := os.Stat(backup); os.IsNotExist(err) {
			if err := os.Rename(videoPath, backup); err != nil {
				return fmt.Errorf("backup original video: %w", err)
			}
			p.logger.Info(ctx, "Renamed original video to: %s", filepath.Base(backup))
		}
		if err := os.Rename(trimmedPath, videoPath); err != nil {
			return fmt.Errorf("promote trimmed video: %w", err)
		}
		p.logger.Info(ctx, "Renamed trimmed video to: %s", filepath.Base(videoPath))
	}

	targetSRT := base + ".srt"
	if targetSRT != finalSRT {
		// Remove a stale SRT from a previous run before promoting
		if _, err := os.Stat(targetSRT); err == nil {
			if err := os.Remove(targetSRT); err != nil {
				return fmt.Errorf("remove existing subtitle: %w", err)
			}
		}
		if err := os.Rename(finalSRT, targetSRT); err != nil {
			return fmt.Errorf("promote refined subtitle: %w", err)
		}
		p.logger.Info(ctx, "Renamed final SRT to: %s", filepath.Base(targetSRT))
	}

	intermediates := []string{rawSRT}
	if srtBase := strings.TrimSuffix(rawSRT, ".srt"); srtBase != rawSRT {
		intermediates = append(intermediates, srtBase+"_flash.srt")
	}
	for _, path := range intermediates {
		if path == "" || path == finalSRT || path == targetSRT {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			if err := os.Remove(path); err != nil {
				p.logger.Warn(ctx, "Failed to remove intermediate %s: %v", path, err)
			} else {
				p.logger.Info(ctx, "Removed intermediate: %s", filepath.Base(path))
			}
		}
	}

	return nil
}
