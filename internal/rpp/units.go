package rpp

import (
	"math"

	"github.com/s95rob/ReaParser/internal/types"
)

// applyUnits converts a volume/pan pair according to the decode options as a
// scope closes. Volume conversion is the fader-tooltip formula
// 20*log10(amplitude); a non-positive amplitude comes out -Inf or NaN,
// exactly as the formula says.
func applyUnits(volume, pan float64, opts types.Options) (float64, float64) {
	if opts.ConvertVolumeToDB {
		volume = 20 * math.Log10(volume)
	}
	if !opts.NormalizePan {
		pan *= 100
	}
	return volume, pan
}
