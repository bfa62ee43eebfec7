package refine

import (
	"context"

	"github.com/ABB00717/Clean-Video/internal/logger"
	"github.com/ABB00717/Clean-Video/internal/subtitle"
)

// ReconcileBatches walks the lines in consecutive windows of windowSize,
// asks the reviewer for corrections per window and applies each correction
// to the line in that window whose index matches. Corrections naming an
// unknown index, or text identical to the current line, are no-ops. A
// failed window degrades to zero corrections and the walk continues.
//
// Lines are mutated in place. Returns how many lines were changed.
func ReconcileBatches(ctx context.Context, lines []subtitle.Line, shared *Context, reviewer Reviewer, windowSize int, log logger.Logger) int {
	applied := 0

	for start := 0; start < len(lines); start += windowSize {
		end := start + windowSize
		if end > len(lines) {
			end = len(lines)
		}
		window := lines[start:end]

		corrections, err := reviewer.ReviewWindow(ctx, shared, window)
		if err != nil {
			log.Warn(ctx, "Review of lines %d-%d failed, no corrections applied: %v", start, end, err)
			continue
		}

		updates := 0
		for _, c := range corrections {
			// Index scope is the current window only; a stale id from the
			// service must not touch lines elsewhere.
			for j := range window {
				if window[j].Index != c.Index {
					continue
				}
				if window[j].Text != c.Text {
					window[j].Text = c.Text
					updates++
				}
				break
			}
		}

		if updates > 0 {
			log.Info(ctx, "Window %d-%d: %d corrections applied", start, end, updates)
		}
		applied += updates
	}

	return applied
}
