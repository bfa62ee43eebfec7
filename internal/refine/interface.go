package refine

import (
	"context"

	"github.com/ABB00717/Clean-Video/internal/subtitle"
)

// FileRef points at an uploaded context file on the text service
type FileRef struct {
	URI      string
	MIMEType string
}

// Context is the shared, read-only material every refinement task sees:
// the global topic summary, the style guide extracted from the video, the
// detected transcript language and handles to uploaded reference files.
// It is built once per run and never mutated afterwards, so concurrent
// reads need no synchronization.
type Context struct {
	Summary    string
	StyleGuide string
	Language   string
	Files      []FileRef
}

// Rewrite is the outcome of one per-line refinement task
type Rewrite struct {
	Text      string
	MergeNext bool
}

// Correction addresses a line by its stable subtitle index. Corrections
// naming unknown indices are ignored.
type Correction struct {
	Index int
	Text  string
}

// Rewriter performs the per-line rewrite call of pass 1
type Rewriter interface {
	RewriteLine(ctx context.Context, shared *Context, line string) (Rewrite, error)
}

// Reviewer performs the windowed correction call of pass 2
type Reviewer interface {
	ReviewWindow(ctx context.Context, shared *Context, window []subtitle.Line) ([]Correction, error)
}
