package rpp

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/s95rob/ReaParser/internal/lines"
	"github.com/s95rob/ReaParser/internal/types"
)

// headerRe matches the project header line. The trailing project id is
// tolerated but not required.
var headerRe = regexp.MustCompile(`^<REAPER_PROJECT\s+` + num + `\s+"(\d+)\.(\d+)/([^"]*)"`)

// parseMetadata validates the header line and derives the format version,
// author platform and display name.
func parseMetadata(src *lines.Source, path string, project *types.Project) error {
	line, ok := src.Line(0)
	if !ok {
		return &types.InvalidFormatError{Path: path}
	}

	m := headerRe.FindStringSubmatch(line)
	if m == nil {
		return &types.InvalidFormatError{Path: path, Line: line}
	}

	project.Version.Major, _ = strconv.Atoi(m[1])
	project.Version.Minor, _ = strconv.Atoi(m[2])
	project.Version.Platform = classifyPlatform(m[3])
	project.Name = projectName(path)

	return nil
}

// classifyPlatform maps the header's platform token. Tokens outside the two
// recognized families stay Undefined.
func classifyPlatform(token string) types.Platform {
	switch token {
	case "win64", "win32":
		return types.PlatformWindows
	case "OSX64", "OSX32":
		return types.PlatformOSX
	}
	return types.PlatformUndefined
}

// projectName strips the directory prefix and final extension from path.
// Both separator styles are handled, so projects written on Windows keep
// their names when decoded elsewhere.
func projectName(path string) string {
	name := path
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[:i]
	}
	return name
}
