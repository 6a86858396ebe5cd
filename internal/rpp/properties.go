package rpp

import (
	"regexp"
	"strconv"

	"github.com/s95rob/ReaParser/internal/lines"
	"github.com/s95rob/ReaParser/internal/types"
)

var (
	sampleRateRe = regexp.MustCompile(`^\s*SAMPLERATE\s+(\d+)`)
	tempoRe      = regexp.MustCompile(`^\s*TEMPO\s+(` + num + `)\s+(\d+)\s+(\d+)`)
)

// parseProperties captures the top-level numeric properties. A later
// matching line overwrites an earlier one.
func parseProperties(src *lines.Source, project *types.Project) {
	scan(src, scanWholeDocument, func(line string) {
		if m := sampleRateRe.FindStringSubmatch(line); m != nil {
			project.SampleRate, _ = strconv.Atoi(m[1])
		}
		if m := tempoRe.FindStringSubmatch(line); m != nil {
			project.Tempo.BPM, _ = strconv.ParseFloat(m[1], 64)
			project.Tempo.Beats, _ = strconv.Atoi(m[2])
			project.Tempo.Bars, _ = strconv.Atoi(m[3])
		}
	})
}
