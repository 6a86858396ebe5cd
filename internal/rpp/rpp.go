// Package rpp implements the scanners that decode REAPER project text.
//
// The format is line-oriented and bracket-scoped: a "<KEYWORD ..." line opens
// a scope and a line of matching indentation plus ">" closes it. Decoding runs
// in phases over a shared line source: the header line first, then a
// whole-document property scan, then a track walk that hands nested item and
// FX chain scopes to their own scanners. Each scoped scanner consumes exactly
// its scope's lines, closing marker included.
package rpp

import (
	"github.com/s95rob/ReaParser/internal/lines"
	"github.com/s95rob/ReaParser/internal/types"
)

// num matches one serialized decimal number inside a line pattern.
const num = `[-+]?[0-9]*\.?[0-9]+(?:[eE][-+]?[0-9]+)?`

// scanPolicy selects how far a property scan ranges over the document.
//
// SAMPLERATE, TEMPO and the MASTER_* lines are searched last-match-wins
// across the entire document rather than scoped to their own block. The
// breadth is deliberate; a scope-bounded search would be a new policy value,
// not a change to this one.
type scanPolicy int

const (
	scanWholeDocument scanPolicy = iota
)

// scan applies fn to every line the policy selects. The shared cursor is
// left untouched.
func scan(src *lines.Source, policy scanPolicy, fn func(line string)) {
	switch policy {
	case scanWholeDocument:
		for i := 0; i < src.Len(); i++ {
			line, _ := src.Line(i)
			fn(line)
		}
	}
}

// Parse decodes one complete project document from src. path labels errors
// and supplies the project name; it is never opened here.
//
// Only the header phase can fail. On failure no Project is returned; every
// other anomaly leaves zero values behind and decoding continues.
func Parse(src *lines.Source, path string, opts types.Options) (*types.Project, error) {
	project := &types.Project{SourcePath: path}

	if err := parseMetadata(src, path, project); err != nil {
		return nil, err
	}
	parseProperties(src, project)
	parseTracks(src, project, opts)

	return project, nil
}
