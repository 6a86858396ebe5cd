// Package reaparser decodes REAPER project files (.rpp) into an in-memory
// model.
//
// reaparser reads the line-oriented, bracket-scoped RPP text format without
// needing REAPER installed. It produces a Project with its tracks, media
// items, FX chains, tempo and sample rate, ready for inventory, migration and
// analysis tools.
//
// # Quick Start
//
// Decoding a project file:
//
//	project, err := reaparser.Open("song.rpp")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("%s (%s)\n", project.Name, project.Version)
//	for _, track := range project.Tracks {
//		fmt.Printf("  %s: %.2f dB\n", track.Name, track.Volume)
//	}
//
// There is nothing to close: the file is read once during Open and released
// before it returns.
//
// # Model
//
// The decoded model mirrors what the project window shows:
//
//	[Project]            - Name, Version, SampleRate, Tempo
//	  └─ [Track]         - Volume, Pan, Muted, PhaseInverted
//	       ├─ [MediaItem] - Start/Length/End, source type, file path
//	       └─ [FX]        - plugin or JS entry with its preset payload
//
// Tracks[0] is always the synthetic master track (GUID "0", Name "MASTER");
// real tracks follow in file order with NumericID counting from 1.
//
// # Units
//
// REAPER serializes volume as amplitude and pan as -1..1. By default volumes
// are converted to decibels (the fader tooltip value) and pan is left
// normalized. Both conversions are configurable:
//
//	project, err := reaparser.Open("song.rpp",
//	    reaparser.WithRawVolume(),  // keep amplitudes
//	    reaparser.WithPanPercent(), // -100..100
//	)
//
// # Error Handling
//
// Only two things fail a decode:
//
//   - *OpenError: the input cannot be opened or read
//   - *InvalidFormatError: the first line is not a REAPER project header
//
// Everything else degrades gracefully: a field whose line never appears
// keeps its zero value, and a scope cut short by end of input simply ends,
// keeping the partial record. A failed decode never returns a partial
// Project.
//
// # Concurrency
//
// Decoding is synchronous. OpenMany() decodes batches of files in parallel:
//
//	ctx := context.Background()
//	projects, err := reaparser.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Streams
//
// Decode() accepts any io.Reader; the document is materialized up front, so
// non-seekable inputs work the same as files:
//
//	project, err := reaparser.Decode(resp.Body, "remote.rpp")
package reaparser
