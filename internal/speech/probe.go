package speech

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ABB00717/Clean-Video/pkg/executor"
)

// ProbeDuration returns the media duration in seconds via ffprobe
func ProbeDuration(ctx context.Context, exec executor.Executor, path string) (float64, error) {
	out, err := exec.Execute(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe duration %q: %w", out, err)
	}

	return duration, nil
}
