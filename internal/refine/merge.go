package refine

import (
	"unicode/utf8"

	"github.com/ABB00717/Clean-Video/internal/subtitle"
)

// Reassemble applies pass-1 results to the lines in original order and
// merges a line with its immediate successor when the rewrite flagged it
// and the combined text stays within mergeLimit characters (runes, so
// multi-byte scripts count correctly). Merging is single-hop: a line that
// absorbed its successor is not reconsidered against the line after that
// in the same pass.
//
// The returned sequence carries fresh contiguous indices starting at 1;
// the index of a consumed successor is discarded.
func Reassemble(lines []subtitle.Line, results []Rewrite, mergeLimit int) []subtitle.Line {
	merged := make([]subtitle.Line, 0, len(lines))
	consumed := false

	for i := range lines {
		if consumed {
			consumed = false
			continue
		}

		line := lines[i]
		line.Text = results[i].Text

		if results[i].MergeNext && i+1 < len(results) {
			combined := results[i].Text + results[i+1].Text
			if utf8.RuneCountInString(combined) <= mergeLimit {
				line.Text = combined
				line.End = lines[i+1].End
				consumed = true
			}
			// Over the limit: the merge flag is ignored, both lines stay
		}

		line.Index = len(merged) + 1
		merged = append(merged, line)
	}

	return merged
}
