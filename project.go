package reaparser

import (
	"github.com/s95rob/ReaParser/internal/types"
)

// Project is an alias to types.Project.
// Re-exporting from internal/types to keep the public API at the module root.
type Project = types.Project

// ProjectVersion is an alias to types.ProjectVersion.
// Re-exporting from internal/types to keep the public API at the module root.
type ProjectVersion = types.ProjectVersion

// Tempo is an alias to types.Tempo.
// Re-exporting from internal/types to keep the public API at the module root.
type Tempo = types.Tempo

// Platform is an alias to types.Platform.
// Re-exporting from internal/types to keep the public API at the module root.
type Platform = types.Platform

// Platform values recognized in the project header.
const (
	PlatformUndefined = types.PlatformUndefined
	PlatformWindows   = types.PlatformWindows
	PlatformOSX       = types.PlatformOSX
	PlatformLinux     = types.PlatformLinux
)
