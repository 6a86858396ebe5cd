package reaparser

import (
	"github.com/s95rob/ReaParser/internal/types"
)

// MediaItem is an alias to types.MediaItem.
// Re-exporting from internal/types to keep the public API at the module root.
type MediaItem = types.MediaItem

// MediaType is an alias to types.MediaType.
// Re-exporting from internal/types to keep the public API at the module root.
type MediaType = types.MediaType

// Media types recognized from an item's SOURCE block.
const (
	MediaUndefined = types.MediaUndefined
	MediaSample    = types.MediaSample
	MediaMidi      = types.MediaMidi
)
