package segment

import (
	"strings"
	"testing"
)

func TestBuildTranscodeSpec(t *testing.T) {
	keeps := []KeepInterval{
		{Start: 0, End: 2.5},
		{Start: 4.5, End: 10},
	}
	spec := BuildTranscodeSpec(keeps)

	if spec.Segments != 2 {
		t.Fatalf("Segments = %d, want 2", spec.Segments)
	}
	if spec.VideoLabel != "[outv]" || spec.AudioLabel != "[outa]" {
		t.Errorf("unexpected labels: %q %q", spec.VideoLabel, spec.AudioLabel)
	}

	want := "[0:v]trim=start=0:end=2.5,setpts=PTS-STARTPTS[v0];" +
		"[0:a]atrim=start=0:end=2.5,asetpts=PTS-STARTPTS[a0];" +
		"[0:v]trim=start=4.5:end=10,setpts=PTS-STARTPTS[v1];" +
		"[0:a]atrim=start=4.5:end=10,asetpts=PTS-STARTPTS[a1];" +
		"[v0][a0][v1][a1]concat=n=2:v=1:a=1[outv][outa]"
	if spec.FilterComplex != want {
		t.Errorf("FilterComplex =\n%s\nwant\n%s", spec.FilterComplex, want)
	}
}

func TestBuildTranscodeSpecPreservesOrder(t *testing.T) {
	keeps := []KeepInterval{
		{Start: 10, End: 20},
		{Start: 30, End: 40},
		{Start: 50, End: 60},
	}
	spec := BuildTranscodeSpec(keeps)

	// Concatenation order must equal interval order
	prev := -1
	for i, k := range keeps {
		pos := strings.Index(spec.FilterComplex, "trim=start="+formatSeconds(k.Start))
		if pos < 0 {
			t.Fatalf("interval %d missing from filter graph", i)
		}
		if pos < prev {
			t.Fatalf("interval %d appears out of order", i)
		}
		prev = pos
	}
	if !strings.HasSuffix(spec.FilterComplex, "concat=n=3:v=1:a=1[outv][outa]") {
		t.Errorf("unexpected concat tail: %s", spec.FilterComplex)
	}
}

func TestFFmpegArgs(t *testing.T) {
	spec := BuildTranscodeSpec([]KeepInterval{{Start: 1, End: 2}})
	args := spec.FFmpegArgs("in.mp4", "out.mp4", "libx264", "medium", "aac")

	joined := strings.Join(args, " ")
	for _, fragment := range []string{
		"-i in.mp4",
		"-map [outv]",
		"-map [outa]",
		"-c:v libx264",
		"-preset medium",
		"-c:a aac",
		"-y out.mp4",
	} {
		if !strings.Contains(joined, fragment) {
			t.Errorf("args missing %q: %s", fragment, joined)
		}
	}
}
