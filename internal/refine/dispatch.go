package refine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ABB00717/Clean-Video/internal/logger"
	"github.com/ABB00717/Clean-Video/internal/subtitle"
)

// Dispatch runs one rewrite task per line with at most width requests in
// flight. Tasks complete in any order; each writes only its own slot of
// the result slice, so downstream consumption by position is always
// order-correct. A failed or timed-out task degrades to the original line
// text with no merge flag, so one bad line never fails the whole pass.
//
// Returns the position-indexed results and the number of fallbacks taken.
func Dispatch(ctx context.Context, lines []subtitle.Line, shared *Context, rewriter Rewriter, width int, timeout time.Duration, log logger.Logger) ([]Rewrite, int) {
	results := make([]Rewrite, len(lines))

	sem := newSemaphore(width)
	var wg sync.WaitGroup
	var done, fallbacks int64

	for i := range lines {
		wg.Add(1)
		go func(pos int) {
			defer wg.Done()

			if err := sem.acquire(ctx); err != nil {
				results[pos] = Rewrite{Text: lines[pos].Text}
				atomic.AddInt64(&fallbacks, 1)
				return
			}
			defer sem.release()

			callCtx, cancel := context.WithTimeout(ctx, timeout)
			rewrite, err := rewriter.RewriteLine(callCtx, shared, lines[pos].Text)
			cancel()

			if err != nil {
				log.Debug(ctx, "Line %d rewrite failed, keeping original: %v", lines[pos].Index, err)
				rewrite = Rewrite{Text: lines[pos].Text}
				atomic.AddInt64(&fallbacks, 1)
			}
			results[pos] = rewrite

			if n := atomic.AddInt64(&done, 1); n%100 == 0 {
				log.Info(ctx, "Refined %d/%d lines...", n, len(lines))
			}
		}(i)
	}

	// Barrier: every slot must be written before anyone reads the results
	wg.Wait()

	if n := atomic.LoadInt64(&fallbacks); n > 0 {
		log.Warn(ctx, "Rewrite pass kept original text for %d of %d lines", n, len(lines))
	}

	return results, int(fallbacks)
}
