package types

// Track is one mixer track of a project.
//
// The master track is synthesized by the decoder rather than read from a
// TRACK block: it always sits at Tracks[0] with GUID "0", Name "MASTER" and
// NumericID 0. Real tracks keep their brace-delimited GUID from the file and
// are numbered 1..N in file order.
type Track struct {
	Name string

	// GUID is the brace-delimited identifier from the track header line.
	// "0" is reserved for the master track.
	GUID string

	// NumericID is 0 for the master track and 1..N for real tracks in file
	// order.
	NumericID int

	// Volume is the track volume. Units depend on Options: dB when
	// ConvertVolumeToDB is set, otherwise the raw serialized amplitude.
	Volume float64

	// Pan ranges -1..1 when NormalizePan is set, -100..100 otherwise.
	Pan float64

	// Channels is the output channel count. Only populated for the master
	// track (from MASTER_NCH).
	Channels int `yaml:",omitempty"`

	Muted         bool
	PhaseInverted bool

	// MediaItems holds the track's items in file order.
	MediaItems []MediaItem `yaml:",omitempty"`

	// FXChain holds the track's effect entries in file order.
	FXChain []FX `yaml:",omitempty"`
}

// IsMaster reports whether this is the synthetic master track.
func (t Track) IsMaster() bool {
	return t.GUID == "0" && t.NumericID == 0
}
