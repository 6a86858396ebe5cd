// Package lines materializes a text document into an indexable sequence of lines.
package lines

import (
	"bufio"
	"io"
)

// maxLineSize bounds a single line. REAPER wraps encoded FX state at a fixed
// width, but MIDI-heavy projects have been seen with lines past bufio's default.
const maxLineSize = 1 << 20

// Source holds every line of a document in memory along with a single shared
// read cursor. Scanners walk forward with Next; phases that re-scan the whole
// document iterate by index or Rewind the cursor, never the underlying input.
type Source struct {
	lines []string
	pos   int
}

// New reads r to the end and returns a Source over its lines.
// Trailing end-of-line markers are stripped, so CRLF documents
// scan the same as LF documents.
func New(r io.Reader) (*Source, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var ls []string
	for sc.Scan() {
		ls = append(ls, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return &Source{lines: ls}, nil
}

// Len returns the number of lines in the document.
func (s *Source) Len() int {
	return len(s.lines)
}

// Line returns the line at index i. The second result is false
// when i is out of range.
func (s *Source) Line(i int) (string, bool) {
	if i < 0 || i >= len(s.lines) {
		return "", false
	}
	return s.lines[i], true
}

// Next returns the line under the cursor and advances past it. The second
// result is false once the cursor has moved past the last line.
func (s *Source) Next() (string, bool) {
	if s.pos >= len(s.lines) {
		return "", false
	}
	line := s.lines[s.pos]
	s.pos++
	return line, true
}

// Rewind moves the cursor back to the first line.
func (s *Source) Rewind() {
	s.pos = 0
}
