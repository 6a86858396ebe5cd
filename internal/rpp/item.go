package rpp

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/s95rob/ReaParser/internal/lines"
	"github.com/s95rob/ReaParser/internal/types"
)

const (
	itemFooter = "    >"

	sourceMidi = "      <SOURCE MIDI"
	sourceWave = "      <SOURCE WAVE"
	sourceMP3  = "      <SOURCE MP3"
)

var (
	positionRe = regexp.MustCompile(`^\s*POSITION\s+(` + num + `)`)
	lengthRe   = regexp.MustCompile(`^\s*LENGTH\s+(` + num + `)`)
	muteRe     = regexp.MustCompile(`^\s*MUTE\s+(-?\d+)`)
	fileRe     = regexp.MustCompile(`^\s*FILE\s+"([^"]*)"`)
)

// parseItem consumes one ITEM scope. A WAVE or MP3 source marker consumes
// exactly one extra line expecting the FILE path; when that line is
// something else it is consumed anyway and Filepath stays empty. MIDI
// sources never carry a path.
func parseItem(src *lines.Source, opts types.Options) types.MediaItem {
	var item types.MediaItem

	for {
		line, ok := src.Next()
		if !ok {
			break
		}
		if strings.HasPrefix(line, itemFooter) {
			break
		}

		if m := positionRe.FindStringSubmatch(line); m != nil {
			item.Start, _ = strconv.ParseFloat(m[1], 64)
		}
		if m := lengthRe.FindStringSubmatch(line); m != nil {
			item.Length, _ = strconv.ParseFloat(m[1], 64)
		}
		if m := muteRe.FindStringSubmatch(line); m != nil {
			n, _ := strconv.Atoi(m[1])
			item.Muted = n != 0
		}
		if m := nameQuotedRe.FindStringSubmatch(line); m != nil {
			item.Name = m[1]
		} else if m := nameTokenRe.FindStringSubmatch(line); m != nil {
			item.Name = m[1]
		}
		if m := volPanRe.FindStringSubmatch(line); m != nil {
			item.Volume, _ = strconv.ParseFloat(m[1], 64)
			item.Pan, _ = strconv.ParseFloat(m[2], 64)
		}

		switch {
		case strings.HasPrefix(line, sourceMidi):
			item.Type = types.MediaMidi
		case strings.HasPrefix(line, sourceWave), strings.HasPrefix(line, sourceMP3):
			item.Type = types.MediaSample
			if next, ok := src.Next(); ok {
				if m := fileRe.FindStringSubmatch(next); m != nil {
					item.Filepath = m[1]
				}
			}
		}
	}

	item.End = item.Start + item.Length
	item.Volume, item.Pan = applyUnits(item.Volume, item.Pan, opts)
	return item
}
