package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// ProcessDirectory runs the pipeline over every .mp4 in dir, skipping
// the *_orig backups of earlier runs. Videos are processed under the
// configured concurrency limit; one failed video never aborts the rest.
func (p *implProcessor) ProcessDirectory(ctx context.Context, dir string) error {
	videos, err := discoverVideos(dir)
	if err != nil {
		return fmt.Errorf("discover videos: %w", err)
	}
	if len(videos) == 0 {
		return fmt.Errorf("no valid .mp4 files found in %s", dir)
	}

	p.logger.Info(ctx, "Found %d videos to process (max concurrent: %d)",
		len(videos), p.cfg.Performance.MaxConcurrent)

	sem := newSemaphore(p.cfg.Performance.MaxConcurrent)
	var wg sync.WaitGroup
	var failed int64

	for _, videoPath := range videos {
		if err := sem.acquire(ctx); err != nil {
			break
		}
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer sem.release()

			if err := p.Process(ctx, path); err != nil {
				p.logger.Error(ctx, "Failed to process %s: %v", path, err)
				atomic.AddInt64(&failed, 1)
			}
		}(videoPath)
	}

	wg.Wait()

	if n := atomic.LoadInt64(&failed); n > 0 {
		return fmt.Errorf("%d of %d videos failed", n, len(videos))
	}

	p.logger.Info(ctx, "Batch complete: %d videos processed", len(videos))
	return nil
}

func discoverVideos(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var videos []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(strings.ToLower(name), ".mp4") {
			continue
		}
		if strings.HasSuffix(strings.TrimSuffix(name, filepath.Ext(name)), "_orig") {
			continue
		}
		videos = append(videos, filepath.Join(dir, name))
	}

	sort.Strings(videos)
	return videos, nil
}
