package types

// FXType classifies an effect-chain entry by the tag on its header line.
type FXType int

const (
	// FXUndefined is used when the header tag matches no known plugin
	// format.
	FXUndefined FXType = iota
	FXVST
	FXVST3
	FXVSTi
	FXVST3i
	FXAU
	FXAUi
	FXJS
)

// String returns the tag name for the effect type.
func (t FXType) String() string {
	switch t {
	case FXVST:
		return "VST"
	case FXVST3:
		return "VST3"
	case FXVSTi:
		return "VSTi"
	case FXVST3i:
		return "VST3i"
	case FXAU:
		return "AU"
	case FXAUi:
		return "AUi"
	case FXJS:
		return "JS"
	default:
		return "Unknown"
	}
}

// FX is one entry of a track's effect chain.
type FX struct {
	// Name is the quoted "Name: Preset" string from a plugin header line,
	// or the script path token of a JS entry.
	Name string

	// Filepath is the plugin file token from the header line. JS entries
	// leave it empty.
	Filepath string `yaml:",omitempty"`

	Type FXType

	// Data is the preset payload captured below the header line. It is kept
	// as opaque text: plugin entries have every space, tab and carriage
	// return stripped (newlines kept), JS entries keep their single data
	// line with only the leading run of spaces removed.
	Data string `yaml:",omitempty"`
}
