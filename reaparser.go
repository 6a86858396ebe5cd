package reaparser

import (
	"context"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/s95rob/ReaParser/internal/lines"
	"github.com/s95rob/ReaParser/internal/rpp"
)

// Open reads and decodes the REAPER project at path.
//
// The file handle is held only while the document is read into memory; it is
// released on every path, success and failure alike, before Open returns. The
// returned Project carries no resources and needs no Close.
//
// Options can be provided to customize unit handling:
//
//	project, err := reaparser.Open("song.rpp",
//	    reaparser.WithRawVolume(),
//	    reaparser.WithPanPercent(),
//	)
//
// Example:
//
//	project, err := reaparser.Open("song.rpp")
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%s (%s)\n", project.Name, project.Version)
func Open(path string, opts ...Option) (*Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	defer f.Close()

	return Decode(f, path, opts...)
}

// Decode decodes a REAPER project document from r.
//
// The document is materialized up front, so r does not need to support
// seeking; any reader works, including network streams. path is only used to
// derive the project name and to label errors. It may be empty.
func Decode(r io.Reader, path string, opts ...Option) (*Project, error) {
	options := resolveOptions(opts)

	src, err := lines.New(r)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	return rpp.Parse(src, path, options)
}

// OpenContext opens a project with context support for cancellation.
//
// This is a thin wrapper around Open() that checks context before starting.
// Decoding itself is a bounded computation over one file and runs without
// further suspension points.
//
// Options can be provided just like with Open():
//
//	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
//	defer cancel()
//
//	project, err := reaparser.OpenContext(ctx, "song.rpp")
func OpenContext(ctx context.Context, path string, opts ...Option) (*Project, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return Open(path, opts...)
}

// OpenMany opens multiple project files concurrently.
//
// Files are decoded in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths.
//
// If any file fails to decode, the partial results are dropped and an error
// is returned.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	projects, err := reaparser.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, p := range projects {
//		fmt.Printf("%s: %d tracks\n", p.Name, len(p.Tracks)-1)
//	}
func OpenMany(ctx context.Context, paths ...string) ([]*Project, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU()) // Limit concurrent operations

	results := make([]*Project, len(paths))

	for i, path := range paths {
		i, path := i, path // Capture loop variables
		g.Go(func() error {
			// Check for cancellation
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			project, err := Open(path)
			if err != nil {
				return err
			}

			results[i] = project
			return nil
		})
	}

	// Wait for all to complete. Projects hold no resources, so dropping the
	// partial results is all the cleanup a failure needs.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
