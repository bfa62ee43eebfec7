package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ABB00717/Clean-Video/internal/refine"
	"github.com/ABB00717/Clean-Video/internal/report"
	"github.com/ABB00717/Clean-Video/internal/subtitle"
)

// auxExtensions are sibling files uploaded as shared context when present
var auxExtensions = []string{".pptx", ".pdf", ".txt", ".md"}

// refineSubtitles runs both refinement passes over the SRT: the
// concurrent per-line rewrite with cascade merge, then the windowed
// review pass. Writes the intermediate and final SRT files and the
// off-topic report, and returns the final SRT path. contentPath is the
// (possibly trimmed) video the subtitles belong to; sourcePath is the
// original file the run was started with, which names the report
// artifacts and locates aux materials.
func (p *implProcessor) refineSubtitles(ctx context.Context, srtPath, contentPath, sourcePath string) (string, error) {
	lines, err := subtitle.ParseFile(srtPath)
	if err != nil {
		return "", fmt.Errorf("parse subtitles: %w", err)
	}
	if len(lines) == 0 {
		p.logger.Warn(ctx, "Subtitle file is empty, nothing to refine: %s", srtPath)
		return srtPath, nil
	}

	shared := p.buildSharedContext(ctx, lines, contentPath, sourcePath)

	p.logger.Info(ctx, "Pass 1: refining %d lines (%d workers)...", len(lines), p.cfg.Refine.Workers)
	timeout := time.Duration(p.cfg.Refine.RequestTimeout) * time.Second
	results, fallbacks := refine.Dispatch(ctx, lines, shared, p.ai, p.cfg.Refine.Workers, timeout, p.logger)

	merged := refine.Reassemble(lines, results, p.cfg.Refine.MergeLimit)
	p.logger.Info(ctx, "Pass 1 complete: %d lines merged into %d (%d fallbacks)",
		len(lines), len(merged), fallbacks)

	base := strings.TrimSuffix(srtPath, filepath.Ext(srtPath))
	flashPath := base + "_flash.srt"
	if err := subtitle.WriteFile(flashPath, merged); err != nil {
		return "", err
	}

	p.logger.Info(ctx, "Pass 2: reviewing in windows of %d...", p.cfg.Refine.WindowSize)
	applied := refine.ReconcileBatches(ctx, merged, shared, p.ai, p.cfg.Refine.WindowSize, p.logger)
	p.logger.Info(ctx, "Pass 2 complete: %d corrections applied", applied)

	finalPath := base + "_refined.srt"
	if err := subtitle.WriteFile(finalPath, merged); err != nil {
		return "", err
	}

	p.writeReports(ctx, shared, merged, sourcePath)

	return finalPath, nil
}

// buildSharedContext uploads the video and any sibling reference files,
// generates the global summary and detects the transcript language. All
// failures here degrade: refinement still runs with whatever context
// could be built. Aux materials are siblings of the original source file,
// not of the trimmed intermediate.
func (p *implProcessor) buildSharedContext(ctx context.Context, lines []subtitle.Line, contentPath, sourcePath string) *refine.Context {
	base := strings.TrimSuffix(sourcePath, filepath.Ext(sourcePath))

	var files []refine.FileRef
	if ref, err := p.ai.UploadFile(ctx, contentPath); err != nil {
		p.logger.Warn(ctx, "Video upload failed: %v", err)
	} else {
		files = append(files, ref)
	}
	for _, ext := range auxExtensions {
		auxPath := base + ext
		if _, err := os.Stat(auxPath); err != nil {
			continue
		}
		if ref, err := p.ai.UploadFile(ctx, auxPath); err != nil {
			p.logger.Warn(ctx, "Aux upload failed for %s: %v", auxPath, err)
		} else {
			files = append(files, ref)
		}
	}

	texts := make([]string, len(lines))
	for i, line := range lines {
		texts[i] = line.Text
	}
	fullText := strings.Join(texts, " ")

	language := refine.DetectLanguage(fullText)
	if language != "" {
		p.logger.Info(ctx, "Detected transcript language: %s (configured: %s)",
			language, p.cfg.Whisper.Language)
	}

	shared := &refine.Context{Language: language, Files: files}

	p.logger.Info(ctx, "Generating global summary...")
	summary, err := p.ai.GenerateSummary(ctx, files, fullText)
	if err != nil {
		p.logger.Warn(ctx, "Global summary failed, using fallback: %v", err)
		shared.Summary = "Topic: General lecture."
		return shared
	}

	shared.Summary = summary.Summary
	shared.StyleGuide = summary.StyleGuide
	return shared
}

// writeReports produces the off-topic report and the docx transcript,
// named after the source video so they outlive finalization. Both are
// best-effort extras and never fail the run.
func (p *implProcessor) writeReports(ctx context.Context, shared *refine.Context, lines []subtitle.Line, sourcePath string) {
	reportPath, docxPath := reportPaths(sourcePath)
	videoName := filepath.Base(sourcePath)

	var b strings.Builder
	for _, line := range lines {
		fmt.Fprintf(&b, "[%s --> %s] %s\n",
			subtitle.FormatTimestamp(line.Start), subtitle.FormatTimestamp(line.End), line.Text)
	}

	segments, err := p.ai.DetectOffTopic(ctx, shared, b.String())
	if err != nil {
		p.logger.Warn(ctx, "Off-topic detection failed: %v", err)
	} else {
		if err := report.WriteOffTopic(reportPath, videoName, segments); err != nil {
			p.logger.Warn(ctx, "Off-topic report write failed: %v", err)
		} else {
			p.logger.Info(ctx, "Off-topic report saved: %s (%d segments)", reportPath, len(segments))
		}
	}

	if err := report.WriteTranscriptDocx(videoName, lines, docxPath); err != nil {
		p.logger.Warn(ctx, "Transcript docx write failed: %v", err)
	} else {
		p.logger.Info(ctx, "Transcript docx saved: %s", docxPath)
	}
}

// reportPaths derives the report artifact names from the source video
func reportPaths(videoPath string) (offTopicPath, docxPath string) {
	base := strings.TrimSuffix(videoPath, filepath.Ext(videoPath))
	return base + "_off_topic.txt", base + ".docx"
}
