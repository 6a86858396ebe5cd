package types

import "fmt"

// OpenError is returned when the project input cannot be acquired or read.
//
// It wraps the underlying I/O error, so errors.Is/errors.As see through it.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unable to load REAPER project: %v", e.Err)
	}
	return fmt.Sprintf("%s: unable to load REAPER project: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// InvalidFormatError is returned when the first line of the input does not
// match the REAPER project header signature.
//
// Any other structural anomaly is tolerated silently: missing fields keep
// their zero values and scopes cut short by end of input simply end.
type InvalidFormatError struct {
	Path string

	// Line is the offending first line, empty when the input had none.
	Line string
}

func (e *InvalidFormatError) Error() string {
	path := e.Path
	if path == "" {
		path = "input"
	}
	if e.Line == "" {
		return fmt.Sprintf("%s: not a REAPER project: missing header line", path)
	}
	return fmt.Sprintf("%s: not a REAPER project: bad header line %q", path, e.Line)
}
