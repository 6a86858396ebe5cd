// Package types provides the core data structures for decoded REAPER
// projects.
//
// This package defines the Project, Track, MediaItem, and FX types that make
// up the in-memory model, plus the Options and error types shared between the
// scanner packages and the public API.
package types

import "fmt"

// Project is the decoded form of one REAPER project file.
//
// A Project is produced by a single complete decode pass and is not mutated
// by the library afterwards. Tracks[0] is always the synthetic master track;
// real tracks follow in file order starting at index 1.
type Project struct {
	// Name is derived from the source path (base name without extension),
	// never from file content.
	Name string

	// SourcePath is the path the project was decoded from. It may be empty
	// when decoding from a plain reader with no associated path.
	SourcePath string

	// Version describes the REAPER release that wrote the file.
	Version ProjectVersion

	// SampleRate in Hz. Zero when the file carries no SAMPLERATE line.
	SampleRate int

	// Tempo is the project-wide tempo and time signature.
	Tempo Tempo

	// Tracks holds the master track followed by the real tracks in file
	// order.
	Tracks []Track `yaml:",omitempty"`
}

// Tempo is the project tempo and time signature as written on the TEMPO line.
type Tempo struct {
	BPM   float64
	Beats int
	Bars  int
}

// String returns the tempo in the familiar "120 bpm 4/4" form.
func (t Tempo) String() string {
	return fmt.Sprintf("%g bpm %d/%d", t.BPM, t.Beats, t.Bars)
}

// Platform identifies the operating system that authored the project file.
type Platform int

const (
	// PlatformUndefined is reported for any platform token the header scan
	// does not recognize.
	PlatformUndefined Platform = iota
	PlatformWindows
	PlatformOSX
	PlatformLinux
)

// String returns a human-readable platform name.
func (p Platform) String() string {
	switch p {
	case PlatformWindows:
		return "Windows"
	case PlatformOSX:
		return "Apple OSX"
	case PlatformLinux:
		return "Linux"
	default:
		return "Unknown"
	}
}

// ProjectVersion is the REAPER release recorded in the project header line,
// e.g. 6.12 on win64.
type ProjectVersion struct {
	Major    int
	Minor    int
	Platform Platform
}

// String returns the version as "<platform> <major>.<minor>".
func (v ProjectVersion) String() string {
	return fmt.Sprintf("%s %d.%d", v.Platform, v.Major, v.Minor)
}
