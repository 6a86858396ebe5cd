package reaparser

import (
	"github.com/s95rob/ReaParser/internal/types"
)

// OpenError is an alias to types.OpenError.
// Re-exporting from internal/types to keep the public API at the module root.
type OpenError = types.OpenError

// InvalidFormatError is an alias to types.InvalidFormatError.
// Re-exporting from internal/types to keep the public API at the module root.
type InvalidFormatError = types.InvalidFormatError
