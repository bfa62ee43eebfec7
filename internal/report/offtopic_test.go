package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ABB00717/Clean-Video/internal/gemini"
)

func TestWriteOffTopic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")

	segments := []gemini.OffTopicSegment{
		{StartTime: "00:01:00", EndTime: "00:02:30", Description: "exam logistics"},
		{StartTime: "00:40:10", EndTime: "00:41:00", Description: "personal story"},
	}
	if err := WriteOffTopic(path, "lecture01.srt", segments); err != nil {
		t.Fatalf("WriteOffTopic() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, want := range []string{"lecture01.srt", "00:01:00 - 00:02:30", "exam logistics", "personal story"} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q:\n%s", want, text)
		}
	}
}

func TestWriteOffTopicEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")

	if err := WriteOffTopic(path, "lecture01.srt", nil); err != nil {
		t.Fatalf("WriteOffTopic() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "No significant off-topic segments detected.") {
		t.Errorf("empty report missing placeholder:\n%s", data)
	}
}
