package segment

import (
	"strconv"
	"strings"
)

// TranscodeSpec describes the trim-and-concat transcode for one source
// file: paired video/audio trims for each keep interval, concatenated in
// interval order. Building it is pure; running it is the caller's job.
type TranscodeSpec struct {
	FilterComplex string
	VideoLabel    string
	AudioLabel    string
	Segments      int
}

// BuildTranscodeSpec synthesizes the ffmpeg filter graph for the given
// keep intervals. Concatenation order equals interval order; reordering
// would corrupt playback sync. Callers must pass at least one interval.
func BuildTranscodeSpec(keeps []KeepInterval) TranscodeSpec {
	var filters []string
	var concat strings.Builder

	for i, k := range keeps {
		start := formatSeconds(k.Start)
		end := formatSeconds(k.End)
		idx := strconv.Itoa(i)

		filters = append(filters,
			"[0:v]trim=start="+start+":end="+end+",setpts=PTS-STARTPTS[v"+idx+"]",
			"[0:a]atrim=start="+start+":end="+end+",asetpts=PTS-STARTPTS[a"+idx+"]",
		)
		concat.WriteString("[v" + idx + "][a" + idx + "]")
	}

	graph := strings.Join(filters, ";") + ";" +
		concat.String() +
		"concat=n=" + strconv.Itoa(len(keeps)) + ":v=1:a=1[outv][outa]"

	return TranscodeSpec{
		FilterComplex: graph,
		VideoLabel:    "[outv]",
		AudioLabel:    "[outa]",
		Segments:      len(keeps),
	}
}

// FFmpegArgs renders the full ffmpeg argument list for this transcode
func (s TranscodeSpec) FFmpegArgs(inputPath, outputPath, encoder, preset, audioCodec string) []string {
	return []string{
		"-i", inputPath,
		"-filter_complex", s.FilterComplex,
		"-map", s.VideoLabel,
		"-map", s.AudioLabel,
		"-c:v", encoder,
		"-preset", preset,
		"-c:a", audioCodec,
		"-y",
		outputPath,
	}
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
