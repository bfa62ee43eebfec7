package processor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ABB00717/Clean-Video/internal/logger"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestDiscoverVideos(t *testing.T) {
	dir := t.TempDir()

	touch(t, filepath.Join(dir, "lecture02.mp4"))
	touch(t, filepath.Join(dir, "lecture01.mp4"))
	touch(t, filepath.Join(dir, "lecture01_orig.mp4"))
	touch(t, filepath.Join(dir, "notes.txt"))
	if err := os.Mkdir(filepath.Join(dir, "archive.mp4"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	videos, err := discoverVideos(dir)
	if err != nil {
		t.Fatalf("discoverVideos: %v", err)
	}

	want := []string{
		filepath.Join(dir, "lecture01.mp4"),
		filepath.Join(dir, "lecture02.mp4"),
	}
	if len(videos) != len(want) {
		t.Fatalf("got %d videos %v, want %d", len(videos), videos, len(want))
	}
	for i := range want {
		if videos[i] != want[i] {
			t.Errorf("videos[%d] = %s, want %s", i, videos[i], want[i])
		}
	}
}

func TestReportPaths(t *testing.T) {
	// Report artifacts are named after the source video, not after the
	// refined-SRT intermediate, so they keep sensible names after the
	// intermediates are cleaned up.
	offTopic, docx := reportPaths(filepath.Join("videos", "lecture.mp4"))

	if want := filepath.Join("videos", "lecture_off_topic.txt"); offTopic != want {
		t.Errorf("off-topic path = %s, want %s", offTopic, want)
	}
	if want := filepath.Join("videos", "lecture.docx"); docx != want {
		t.Errorf("docx path = %s, want %s", docx, want)
	}
}

func TestFinalizeTrimmed(t *testing.T) {
	dir := t.TempDir()
	video := filepath.Join(dir, "lecture.mp4")
	trimmed := filepath.Join(dir, "lecture_trimmed.mp4")
	rawSRT := filepath.Join(dir, "lecture_trimmed.srt")
	flashSRT := filepath.Join(dir, "lecture_trimmed_flash.srt")
	finalSRT := filepath.Join(dir, "lecture_trimmed_refined.srt")

	for _, path := range []string{video, trimmed, rawSRT, flashSRT, finalSRT} {
		touch(t, path)
	}

	p := &implProcessor{logger: logger.New("error")}
	if err := p.finalize(context.Background(), video, trimmed, rawSRT, finalSRT, true); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	for _, path := range []string{
		filepath.Join(dir, "lecture_orig.mp4"),
		video,
		filepath.Join(dir, "lecture.srt"),
	} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected %s to exist: %v", filepath.Base(path), err)
		}
	}
	for _, path := range []string{trimmed, rawSRT, flashSRT, finalSRT} {
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("expected %s to be gone", filepath.Base(path))
		}
	}
}

func TestFinalizeKeepsExistingBackup(t *testing.T) {
	dir := t.TempDir()
	video := filepath.Join(dir, "lecture.mp4")
	trimmed := filepath.Join(dir, "lecture_trimmed.mp4")
	backup := filepath.Join(dir, "lecture_orig.mp4")
	finalSRT := filepath.Join(dir, "lecture_trimmed_refined.srt")

	if err := os.WriteFile(backup, []byte("original content"), 0644); err != nil {
		t.Fatalf("write backup: %v", err)
	}
	for _, path := range []string{video, trimmed, finalSRT} {
		touch(t, path)
	}

	p := &implProcessor{logger: logger.New("error")}
	if err := p.finalize(context.Background(), video, trimmed, "", finalSRT, true); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	data, err := os.ReadFile(backup)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(data) != "original content" {
		t.Errorf("backup was overwritten on a second run")
	}
}

func TestFinalizeUntrimmed(t *testing.T) {
	dir := t.TempDir()
	video := filepath.Join(dir, "lecture.mp4")
	rawSRT := filepath.Join(dir, "lecture.srt")
	flashSRT := filepath.Join(dir, "lecture_flash.srt")
	finalSRT := filepath.Join(dir, "lecture_refined.srt")

	touch(t, video)
	touch(t, rawSRT)
	touch(t, flashSRT)
	if err := os.WriteFile(finalSRT, []byte("refined"), 0644); err != nil {
		t.Fatalf("write final srt: %v", err)
	}

	p := &implProcessor{logger: logger.New("error")}
	if err := p.finalize(context.Background(), video, video, rawSRT, finalSRT, false); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "lecture_orig.mp4")); !os.IsNotExist(err) {
		t.Errorf("no backup should be made when the video was not trimmed")
	}
	data, err := os.ReadFile(filepath.Join(dir, "lecture.srt"))
	if err != nil {
		t.Fatalf("refined subtitle not promoted: %v", err)
	}
	if string(data) != "refined" {
		t.Errorf("lecture.srt = %q, want refined content", data)
	}
	for _, path := range []string{flashSRT, finalSRT} {
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("expected %s to be gone", filepath.Base(path))
		}
	}
}
