package reaparser

import (
	"github.com/s95rob/ReaParser/internal/types"
)

// FX is an alias to types.FX.
// Re-exporting from internal/types to keep the public API at the module root.
type FX = types.FX

// FXType is an alias to types.FXType.
// Re-exporting from internal/types to keep the public API at the module root.
type FXType = types.FXType

// Effect types recognized from an FX chain entry's header tag.
const (
	FXUndefined = types.FXUndefined
	FXVST       = types.FXVST
	FXVST3      = types.FXVST3
	FXVSTi      = types.FXVSTi
	FXVST3i     = types.FXVST3i
	FXAU        = types.FXAU
	FXAUi       = types.FXAUi
	FXJS        = types.FXJS
)
