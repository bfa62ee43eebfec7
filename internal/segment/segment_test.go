package segment

import (
	"errors"
	"testing"
)

func TestComputeKeepIntervalsWorkedExample(t *testing.T) {
	// Speech from 2s to 5s in a 10s video with a 1s threshold. Each removed
	// gap keeps half a threshold of silence on both of its sides, so the
	// leading gap (0,2) leaves (0,0.5) and the speech resumes at 1.5; the
	// trailing gap (5,10) extends the speech block to 5.5 and leaves the
	// final half second before the end.
	keeps, err := ComputeKeepIntervals([]SpeechInterval{{Start: 2, End: 5}}, 10, 1.0)
	if err != nil {
		t.Fatalf("ComputeKeepIntervals() error = %v", err)
	}

	want := []KeepInterval{{Start: 0, End: 0.5}, {Start: 1.5, End: 5.5}, {Start: 9.5, End: 10}}
	if len(keeps) != len(want) {
		t.Fatalf("got %v, want %v", keeps, want)
	}
	for i := range want {
		if keeps[i] != want[i] {
			t.Errorf("interval %d = %v, want %v", i, keeps[i], want[i])
		}
	}
}

func TestSilenceGapsWorkedExample(t *testing.T) {
	gaps := SilenceGaps([]SpeechInterval{{Start: 2, End: 5}}, 10, 1.0)

	want := []SilenceGap{{Start: 0, End: 2}, {Start: 5, End: 10}}
	if len(gaps) != len(want) {
		t.Fatalf("got %v, want %v", gaps, want)
	}
	for i := range want {
		if gaps[i] != want[i] {
			t.Errorf("gap %d = %v, want %v", i, gaps[i], want[i])
		}
	}
}

func TestComputeKeepIntervalsNoSpeech(t *testing.T) {
	_, err := ComputeKeepIntervals(nil, 10, 1.0)
	if !errors.Is(err, ErrNoSpeech) {
		t.Fatalf("error = %v, want ErrNoSpeech", err)
	}
}

func TestComputeKeepIntervalsNoGaps(t *testing.T) {
	speech := []SpeechInterval{
		{Start: 0, End: 4},
		{Start: 4.5, End: 9.8},
	}
	keeps, err := ComputeKeepIntervals(speech, 10, 1.0)
	if err != nil {
		t.Fatalf("ComputeKeepIntervals() error = %v", err)
	}
	if len(keeps) != 1 || keeps[0] != (KeepInterval{Start: 0, End: 10}) {
		t.Fatalf("got %v, want single full-span interval", keeps)
	}
}

func TestComputeKeepIntervalsGapAtThresholdIgnored(t *testing.T) {
	// Gap of exactly gapThreshold must not be materialized
	speech := []SpeechInterval{
		{Start: 0, End: 3},
		{Start: 4, End: 10},
	}
	keeps, err := ComputeKeepIntervals(speech, 10, 1.0)
	if err != nil {
		t.Fatalf("ComputeKeepIntervals() error = %v", err)
	}
	if len(keeps) != 1 {
		t.Fatalf("got %v, want no trimming", keeps)
	}
}

func TestComputeKeepIntervalsProperties(t *testing.T) {
	speech := []SpeechInterval{
		{Start: 1.2, End: 4.7},
		{Start: 9.1, End: 12.3},
		{Start: 12.9, End: 20},
		{Start: 26, End: 31.5},
	}
	keeps, err := ComputeKeepIntervals(speech, 40, 2.0)
	if err != nil {
		t.Fatalf("ComputeKeepIntervals() error = %v", err)
	}

	prevEnd := -1.0
	for i, k := range keeps {
		if k.End <= k.Start {
			t.Errorf("interval %d has non-positive width: %v", i, k)
		}
		if k.Start <= prevEnd {
			t.Errorf("interval %d overlaps or touches predecessor: %v", i, keeps)
		}
		prevEnd = k.End
	}
}

func TestComputeKeepIntervalsRetainedGapsNotResplit(t *testing.T) {
	// Every removed gap retains exactly one threshold of silence (half on
	// each side of the cut). When no gap is longer than twice the threshold
	// the retained silences never exceed it, so treating the keep intervals
	// as a new speech track finds nothing more to cut.
	speech := []SpeechInterval{
		{Start: 0, End: 5},
		{Start: 6.5, End: 10},
		{Start: 11.8, End: 20},
	}
	keeps, err := ComputeKeepIntervals(speech, 20, 1.0)
	if err != nil {
		t.Fatalf("first pass error = %v", err)
	}

	want := []KeepInterval{{Start: 0, End: 5.5}, {Start: 6, End: 10.5}, {Start: 11.3, End: 20}}
	if len(keeps) != len(want) {
		t.Fatalf("got %v, want %v", keeps, want)
	}
	for i := range want {
		if keeps[i] != want[i] {
			t.Errorf("interval %d = %v, want %v", i, keeps[i], want[i])
		}
	}

	asSpeech := make([]SpeechInterval, len(keeps))
	for i, k := range keeps {
		asSpeech[i] = SpeechInterval{Start: k.Start, End: k.End}
	}

	again, err := ComputeKeepIntervals(asSpeech, 20, 1.0)
	if err != nil {
		t.Fatalf("second pass error = %v", err)
	}
	if len(again) != 1 || again[0] != (KeepInterval{Start: 0, End: 20}) {
		t.Fatalf("second pass split again: %v", again)
	}
}

func TestComputeKeepIntervalsDropsDegenerate(t *testing.T) {
	// Buffer overlap can push a keep interval's end at or behind its start;
	// those intervals must vanish silently rather than error.
	speech := []SpeechInterval{
		{Start: 50, End: 51},
		{Start: 5, End: 6},
	}
	keeps, err := ComputeKeepIntervals(speech, 100, 10.0)
	if err != nil {
		t.Fatalf("ComputeKeepIntervals() error = %v", err)
	}

	want := []KeepInterval{{Start: 0, End: 5}, {Start: 95, End: 100}}
	if len(keeps) != len(want) {
		t.Fatalf("got %v, want %v", keeps, want)
	}
	for i := range want {
		if keeps[i] != want[i] {
			t.Errorf("interval %d = %v, want %v", i, keeps[i], want[i])
		}
	}
}
