package rpp

import (
	"regexp"
	"strings"

	"github.com/s95rob/ReaParser/internal/lines"
	"github.com/s95rob/ReaParser/internal/types"
)

const (
	chainFooter = "    >"
	fxFooter    = "      >"
)

var (
	// Standard plugin entry: tag, quoted "Name: Preset" string, plugin file
	// token. JS entries carry an unquoted script path instead, so the two
	// forms never match the same line.
	fxOpenRe = regexp.MustCompile(`^\s*<(\S+)\s+"([^"]*)"\s+(\S+)`)
	jsOpenRe = regexp.MustCompile(`^\s*<JS\s+(\S+)`)

	// fxData strips every space, tab and carriage return from a captured
	// plugin payload. Newlines stay.
	fxData = strings.NewReplacer(" ", "", "\t", "", "\r", "")
)

// fxTagTypes orders the tag prefixes most specific first, so a longer tag is
// never claimed by a shorter one ("VST3i" must not classify as "VST").
var fxTagTypes = []struct {
	prefix string
	typ    types.FXType
}{
	{"VST3i", types.FXVST3i},
	{"VST3", types.FXVST3},
	{"VSTi", types.FXVSTi},
	{"VST", types.FXVST},
	{"AUi", types.FXAUi},
	{"AU", types.FXAU},
}

func classifyFXTag(tag string) types.FXType {
	for _, t := range fxTagTypes {
		if strings.HasPrefix(tag, t.prefix) {
			return t.typ
		}
	}
	return types.FXUndefined
}

// parseFXChain consumes one FXCHAIN scope and returns its effect entries in
// file order. Chain lines opening neither effect form (window state, bypass
// flags, preset names) are skipped.
func parseFXChain(src *lines.Source) []types.FX {
	var chain []types.FX

	for {
		line, ok := src.Next()
		if !ok {
			break
		}
		if strings.HasPrefix(line, chainFooter) {
			break
		}

		// JS entry: script path token, no plugin file. Exactly the one
		// following line is its data, losing only the leading run of
		// spaces (tabs and carriage returns stay).
		if m := jsOpenRe.FindStringSubmatch(line); m != nil {
			fx := types.FX{Name: m[1], Type: types.FXJS}
			if next, ok := src.Next(); ok {
				fx.Data = strings.TrimLeft(next, " ")
			}
			chain = append(chain, fx)
			continue
		}

		if m := fxOpenRe.FindStringSubmatch(line); m != nil {
			fx := types.FX{
				Name:     m[2],
				Filepath: m[3],
				Type:     classifyFXTag(m[1]),
			}
			fx.Data = parseFXData(src)
			chain = append(chain, fx)
		}
	}

	return chain
}

// parseFXData captures the lines below a plugin header through the effect
// footer and normalizes them into one blob.
func parseFXData(src *lines.Source) string {
	var body []string
	for {
		line, ok := src.Next()
		if !ok {
			break
		}
		if strings.HasPrefix(line, fxFooter) {
			break
		}
		body = append(body, line)
	}
	return fxData.Replace(strings.Join(body, "\n"))
}
