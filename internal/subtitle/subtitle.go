// Package subtitle implements the SRT data model used between pipeline
// stages: sequential blocks of index, "start --> end" timestamp and text.
package subtitle

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Line is one subtitle block. Index is the stable identifier the review
// pass uses to address corrections; it must not be reassigned between the
// merge step and the review step.
type Line struct {
	Index int
	Start time.Duration
	End   time.Duration
	Text  string
}

// Parse reads SRT content into lines. Text blocks may span multiple lines;
// they are preserved verbatim (joined with \n). Windows line endings are
// accepted.
func Parse(data string) ([]Line, error) {
	data = strings.ReplaceAll(data, "\r\n", "\n")
	blocks := strings.Split(data, "\n\n")

	var lines []Line
	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		rows := strings.Split(block, "\n")
		if len(rows) < 2 {
			return nil, fmt.Errorf("malformed subtitle block: %q", block)
		}

		index, err := strconv.Atoi(strings.TrimSpace(rows[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid subtitle index %q: %w", rows[0], err)
		}

		start, end, err := parseTimeRange(rows[1])
		if err != nil {
			return nil, fmt.Errorf("subtitle %d: %w", index, err)
		}

		lines = append(lines, Line{
			Index: index,
			Start: start,
			End:   end,
			Text:  strings.Join(rows[2:], "\n"),
		})
	}

	return lines, nil
}

// ParseFile reads and parses an SRT file
func ParseFile(path string) ([]Line, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read subtitle file: %w", err)
	}
	return Parse(string(data))
}

// Compose renders lines back into SRT format
func Compose(lines []Line) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(strconv.Itoa(line.Index))
		b.WriteString("\n")
		b.WriteString(FormatTimestamp(line.Start))
		b.WriteString(" --> ")
		b.WriteString(FormatTimestamp(line.End))
		b.WriteString("\n")
		b.WriteString(line.Text)
		b.WriteString("\n\n")
	}
	return b.String()
}

// WriteFile composes lines and writes them to path
func WriteFile(path string, lines []Line) error {
	if err := os.WriteFile(path, []byte(Compose(lines)), 0644); err != nil {
		return fmt.Errorf("write subtitle file: %w", err)
	}
	return nil
}

// FormatTimestamp converts a duration to SRT form (HH:MM:SS,mmm)
func FormatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := d.Milliseconds()
	ms := total % 1000
	sec := (total / 1000) % 60
	min := (total / 60000) % 60
	hour := total / 3600000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hour, min, sec, ms)
}

// ParseTimestamp reads an SRT timestamp (HH:MM:SS,mmm). A dot separator for
// milliseconds is tolerated since some tools emit it.
func ParseTimestamp(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	s = strings.Replace(s, ".", ",", 1)

	clock, msPart, ok := strings.Cut(s, ",")
	if !ok {
		return 0, fmt.Errorf("invalid timestamp %q: missing millisecond separator", s)
	}
	fields := strings.Split(clock, ":")
	if len(fields) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", s)
	}

	var parts [4]int64
	for i, field := range append(fields, msPart) {
		v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("invalid timestamp %q", s)
		}
		parts[i] = v
	}

	total := ((parts[0]*60+parts[1])*60+parts[2])*1000 + parts[3]
	return time.Duration(total) * time.Millisecond, nil
}

func parseTimeRange(row string) (time.Duration, time.Duration, error) {
	parts := strings.Split(row, "-->")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time range %q", row)
	}

	start, err := ParseTimestamp(parts[0])
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseTimestamp(parts[1])
	if err != nil {
		return 0, 0, err
	}

	return start, end, nil
}
