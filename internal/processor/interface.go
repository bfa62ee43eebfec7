package processor

import "context"

// Processor runs the full pipeline for one video or a directory of videos
type Processor interface {
	Process(ctx context.Context, videoPath string) error
	ProcessDirectory(ctx context.Context, dir string) error
}
