package rpp

import (
	"regexp"
	"strconv"

	"github.com/s95rob/ReaParser/internal/lines"
	"github.com/s95rob/ReaParser/internal/types"
)

var (
	// The first MASTER_NCH integer is the input channel count, the second
	// the output count the mixer actually runs.
	masterNCHRe    = regexp.MustCompile(`^\s*MASTER_NCH\s+-?\d+\s+(-?\d+)`)
	masterVolumeRe = regexp.MustCompile(`^\s*MASTER_VOLUME\s+(` + num + `)\s+(` + num + `)`)
)

// parseMaster synthesizes the master track. Its fields come from a
// whole-document scan of the MASTER_* lines, last match wins, rather than
// from a scoped block.
func parseMaster(src *lines.Source, project *types.Project, opts types.Options) {
	master := types.Track{GUID: "0", Name: "MASTER"}

	scan(src, scanWholeDocument, func(line string) {
		if m := masterNCHRe.FindStringSubmatch(line); m != nil {
			master.Channels, _ = strconv.Atoi(m[1])
		}
		if m := masterVolumeRe.FindStringSubmatch(line); m != nil {
			master.Volume, _ = strconv.ParseFloat(m[1], 64)
			master.Pan, _ = strconv.ParseFloat(m[2], 64)
		}
	})

	master.Volume, master.Pan = applyUnits(master.Volume, master.Pan, opts)
	project.Tracks = append(project.Tracks, master)
}
