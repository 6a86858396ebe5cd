package rpp

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/s95rob/ReaParser/internal/lines"
	"github.com/s95rob/ReaParser/internal/types"
)

// Scope markers are matched by exact prefix at their own indentation. A
// deeper footer never trips a shallower check: where the shallow footer has
// '>' the deeper line still has a space.
const (
	trackFooter = "  >"

	itemOpen  = "    <ITEM"
	chainOpen = "    <FXCHAIN"
)

var (
	trackOpenRe = regexp.MustCompile(`^\s*<TRACK\s*\{([^}]+)\}`)

	nameQuotedRe = regexp.MustCompile(`^\s*NAME\s+"([^"]*)"`)
	nameTokenRe  = regexp.MustCompile(`^\s*NAME\s+(\S+)`)
	volPanRe     = regexp.MustCompile(`^\s*VOLPAN\s+(` + num + `)\s+(` + num + `)`)
	iphaseRe     = regexp.MustCompile(`^\s*IPHASE\s+(-?\d+)`)
	muteSoloRe   = regexp.MustCompile(`^\s*MUTESOLO\s+(-?\d+)`)
)

// parseTracks emits the master track first, then walks the document for
// TRACK blocks. Real tracks are numbered from 1 in file order.
func parseTracks(src *lines.Source, project *types.Project, opts types.Options) {
	parseMaster(src, project, opts)

	src.Rewind()
	count := 0
	for {
		line, ok := src.Next()
		if !ok {
			break
		}
		m := trackOpenRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		count++
		project.Tracks = append(project.Tracks, parseTrack(src, m[1], count, opts))
	}
}

// parseTrack consumes one track scope from the line after its header through
// its closing marker. Running out of input closes the scope the same way and
// the partial track is kept.
func parseTrack(src *lines.Source, guid string, id int, opts types.Options) types.Track {
	track := types.Track{GUID: guid, NumericID: id}

	for {
		line, ok := src.Next()
		if !ok {
			break
		}
		if strings.HasPrefix(line, trackFooter) {
			break
		}

		// Every field pattern gets a look at the line; the last matching
		// line wins per field.
		if m := nameQuotedRe.FindStringSubmatch(line); m != nil {
			track.Name = m[1]
		} else if m := nameTokenRe.FindStringSubmatch(line); m != nil {
			track.Name = m[1]
		}
		if m := volPanRe.FindStringSubmatch(line); m != nil {
			track.Volume, _ = strconv.ParseFloat(m[1], 64)
			track.Pan, _ = strconv.ParseFloat(m[2], 64)
		}
		if m := iphaseRe.FindStringSubmatch(line); m != nil {
			n, _ := strconv.Atoi(m[1])
			track.PhaseInverted = n != 0
		}
		if m := muteSoloRe.FindStringSubmatch(line); m != nil {
			n, _ := strconv.Atoi(m[1])
			track.Muted = n != 0
		}

		// Nested scopes consume their own closing markers.
		if strings.HasPrefix(line, itemOpen) {
			track.MediaItems = append(track.MediaItems, parseItem(src, opts))
		}
		if strings.HasPrefix(line, chainOpen) {
			track.FXChain = append(track.FXChain, parseFXChain(src)...)
		}
	}

	track.Volume, track.Pan = applyUnits(track.Volume, track.Pan, opts)
	return track
}
