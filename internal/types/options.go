package types

// Options controls the unit conversion applied to volume and pan values as
// each scope (master track, track, media item) finishes decoding.
//
// Options is passed by value into every extraction function; decoded records
// never hold a reference back to it.
type Options struct {
	// ConvertVolumeToDB converts volumes from the serialized amplitude to
	// decibels (20*log10), matching the values REAPER shows on fader
	// tooltips. A non-positive amplitude produces -Inf or NaN; the
	// conversion is applied as-is, without guarding.
	ConvertVolumeToDB bool

	// NormalizePan keeps pan values in the serialized -1 (left) to 1
	// (right) range. When false, pan is scaled to -100..100 as shown on
	// pan tooltips.
	NormalizePan bool
}

// DefaultOptions returns the default conversion settings: volume in
// decibels, pan normalized to -1..1.
func DefaultOptions() Options {
	return Options{
		ConvertVolumeToDB: true,
		NormalizePan:      true,
	}
}
