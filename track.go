package reaparser

import (
	"github.com/s95rob/ReaParser/internal/types"
)

// Track is an alias to types.Track.
// Re-exporting from internal/types to keep the public API at the module root.
type Track = types.Track
