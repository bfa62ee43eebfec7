// Package segment turns detected speech intervals into the keep intervals
// of the trimmed video and builds the ffmpeg filter graph that cuts them.
package segment

import "errors"

var (
	// ErrNoSpeech means the detector found nothing to keep; the caller
	// should skip trimming and leave the source untouched.
	ErrNoSpeech = errors.New("no speech detected")

	// ErrNoRetainableContent means every computed keep interval collapsed
	// to zero or negative width after buffering.
	ErrNoRetainableContent = errors.New("no retainable content after trimming")
)

// SpeechInterval is a closed-open [Start, End) range of detected speech,
// in seconds. Callers must supply intervals ordered by start time and
// non-overlapping; detectors in internal/speech guarantee this.
type SpeechInterval struct {
	Start float64
	End   float64
}

// SilenceGap is a stretch of non-speech longer than the gap threshold
type SilenceGap struct {
	Start float64
	End   float64
}

// KeepInterval is a region of the source retained in the output
type KeepInterval struct {
	Start float64
	End   float64
}

// SilenceGaps derives the removable gaps around and between speech
// intervals. Gaps at or under the threshold are never materialized; that
// audio stays kept implicitly.
func SilenceGaps(speech []SpeechInterval, totalDuration, gapThreshold float64) []SilenceGap {
	if len(speech) == 0 {
		return nil
	}

	var gaps []SilenceGap

	if speech[0].Start > gapThreshold {
		gaps = append(gaps, SilenceGap{Start: 0, End: speech[0].Start})
	}

	previousEnd := speech[0].End
	for _, s := range speech[1:] {
		if s.Start-previousEnd > gapThreshold {
			gaps = append(gaps, SilenceGap{Start: previousEnd, End: s.Start})
		}
		previousEnd = s.End
	}

	if totalDuration-previousEnd > gapThreshold {
		gaps = append(gaps, SilenceGap{Start: previousEnd, End: totalDuration})
	}

	return gaps
}

// ComputeKeepIntervals converts speech intervals into the ordered keep
// intervals of the trimmed output. Half the gap threshold is retained on
// each side of every cut so words are not clipped at speech boundaries.
//
// Returns ErrNoSpeech for empty input and ErrNoRetainableContent when
// buffering collapses every interval.
func ComputeKeepIntervals(speech []SpeechInterval, totalDuration, gapThreshold float64) ([]KeepInterval, error) {
	if len(speech) == 0 {
		return nil, ErrNoSpeech
	}

	gaps := SilenceGaps(speech, totalDuration, gapThreshold)
	if len(gaps) == 0 {
		return []KeepInterval{{Start: 0, End: totalDuration}}, nil
	}

	half := gapThreshold / 2

	var keeps []KeepInterval
	open := 0.0
	for _, gap := range gaps {
		end := gap.Start + half
		// Buffer overlap can produce zero or negative width; drop silently.
		if end > open {
			keeps = append(keeps, KeepInterval{Start: open, End: end})
		}
		open = gap.End - half
	}

	if open < totalDuration {
		keeps = append(keeps, KeepInterval{Start: open, End: totalDuration})
	}

	if len(keeps) == 0 {
		return nil, ErrNoRetainableContent
	}

	return keeps, nil
}
