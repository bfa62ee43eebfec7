// Package report writes the human-facing artifacts of a run: the
// off-topic segment report and a docx copy of the final transcript.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/ABB00717/Clean-Video/internal/gemini"
)

// WriteOffTopic renders the off-topic segments into a plain text report
func WriteOffTopic(path, videoName string, segments []gemini.OffTopicSegment) error {
	var b strings.Builder

	b.WriteString("Off-Topic Segments Report\n")
	fmt.Fprintf(&b, "Video: %s\n", videoName)
	b.WriteString(strings.Repeat("=", 50))
	b.WriteString("\n\n")

	if len(segments) == 0 {
		b.WriteString("No significant off-topic segments detected.\n")
	} else {
		for _, seg := range segments {
			fmt.Fprintf(&b, "Time: %s - %s\n", seg.StartTime, seg.EndTime)
			fmt.Fprintf(&b, "Content: %s\n", seg.Description)
			b.WriteString(strings.Repeat("-", 30))
			b.WriteString("\n")
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write off-topic report: %w", err)
	}
	return nil
}
