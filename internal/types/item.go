package types

// MediaType classifies the source of a media item.
type MediaType int

const (
	// MediaUndefined is used when an item block carries no recognized
	// SOURCE marker.
	MediaUndefined MediaType = iota
	// MediaSample covers file-backed sources (WAVE, MP3).
	MediaSample
	// MediaMidi covers MIDI sources.
	MediaMidi
)

// String returns a human-readable media type name.
func (t MediaType) String() string {
	switch t {
	case MediaSample:
		return "Sample"
	case MediaMidi:
		return "Midi"
	default:
		return "Unknown"
	}
}

// MediaItem is one media item placed on a track.
//
// Start, Length and End are in seconds. End is maintained as Start + Length
// at all times.
type MediaItem struct {
	Name string

	// Filepath is the source file of a Sample item, exactly as written on
	// its FILE line. MIDI and undefined items leave it empty. Relative
	// paths are not resolved.
	Filepath string `yaml:",omitempty"`

	Type MediaType

	// Volume and Pan follow the same unit rules as Track.Volume/Track.Pan.
	Volume float64
	Pan    float64

	Muted bool

	Start  float64
	Length float64
	End    float64
}
