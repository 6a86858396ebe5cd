package reaparser

import (
	"github.com/s95rob/ReaParser/internal/types"
)

// Option configures unit handling when decoding projects.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	project, err := reaparser.Open("song.rpp",
//	    reaparser.WithRawVolume(),
//	    reaparser.WithPanPercent(),
//	)
type Option func(*decodeOptions)

// decodeOptions holds configuration for decoding projects.
type decodeOptions struct {
	convertVolumeToDB bool // Convert amplitudes to decibels
	normalizePan      bool // Keep pan in the serialized -1..1 range
}

// defaultOptions returns the default configuration.
func defaultOptions() *decodeOptions {
	return &decodeOptions{
		convertVolumeToDB: true,
		normalizePan:      true,
	}
}

// resolveOptions folds the caller's options over the defaults into the
// scanner configuration.
func resolveOptions(opts []Option) types.Options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return types.Options{
		ConvertVolumeToDB: options.convertVolumeToDB,
		NormalizePan:      options.normalizePan,
	}
}

// WithRawVolume keeps volume values as the serialized amplitude.
//
// By default, volumes are converted to decibels with 20*log10(amplitude),
// matching what REAPER shows on fader tooltips. With this option the raw
// amplitude is kept instead: 1.0 is unity gain, 0.5 is half amplitude.
//
// Example:
//
//	project, err := reaparser.Open("song.rpp", reaparser.WithRawVolume())
//	// project.Tracks[i].Volume is an amplitude, not dB
func WithRawVolume() Option {
	return func(o *decodeOptions) {
		o.convertVolumeToDB = false
	}
}

// WithPanPercent scales pan values to -100..100.
//
// By default, pan stays in the serialized range: -1 (hard left) to 1 (hard
// right). With this option values are scaled by 100, matching what REAPER
// shows on pan tooltips.
//
// Example:
//
//	project, err := reaparser.Open("song.rpp", reaparser.WithPanPercent())
//	// project.Tracks[i].Pan of 50 means halfway right
func WithPanPercent() Option {
	return func(o *decodeOptions) {
		o.normalizePan = false
	}
}
