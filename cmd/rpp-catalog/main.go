package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	reaparser "github.com/s95rob/ReaParser"
	"github.com/s95rob/ReaParser/internal/catalog"
)

func main() {
	dbPath := flag.String("db", "catalog.db", "Path of the catalog database. Created on first use.")
	rawVolume := flag.Bool("raw", false, "Store volume as the raw project scalar instead of decibels.")
	panPercent := flag.Bool("percent", false, "Store pan as a percentage instead of the normalized -1..1 range.")
	verbose := flag.Bool("v", false, "Print every file as it is cataloged.")
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	var opts []reaparser.Option
	if *rawVolume {
		opts = append(opts, reaparser.WithRawVolume())
	}
	if *panPercent {
		opts = append(opts, reaparser.WithPanPercent())
	}

	store, err := catalog.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open catalog: %v\n", err)
		os.Exit(1)
	}

	retval := 0
	stored := 0
	process := func(path string) {
		project, err := reaparser.Open(path, opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not decode %v: %v\n", path, err)
			retval = 1
			return
		}
		if _, err := store.Put(project); err != nil {
			fmt.Fprintf(os.Stderr, "could not store %v: %v\n", path, err)
			retval = 1
			return
		}
		stored++
		if *verbose {
			fmt.Printf("cataloged %s (%d tracks)\n", path, len(project.Tracks)-1)
		}
	}

	for _, root := range flag.Args() {
		info, err := os.Stat(root)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not stat %v: %v\n", root, err)
			retval = 1
			continue
		}
		if !info.IsDir() {
			process(root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".rpp") {
				process(path)
			}
			return nil
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not walk %v: %v\n", root, err)
			retval = 1
		}
	}

	fmt.Printf("Cataloged %d project(s) into %s\n\n", stored, *dbPath)

	records, err := store.Projects()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not list catalog: %v\n", err)
		retval = 1
	}
	if len(records) > 0 {
		fmt.Printf("%-24s %6s %6s %4s %7s %-14s %s\n",
			"NAME", "TRACKS", "ITEMS", "FX", "RATE", "TEMPO", "PATH")
		for _, rec := range records {
			tempo := fmt.Sprintf("%g bpm %d/%d", rec.BPM, rec.TimeSigBeats, rec.TimeSigBars)
			fmt.Printf("%-24s %6d %6d %4d %7d %-14s %s\n",
				rec.Name, rec.TrackCount, rec.ItemCount, rec.FXCount,
				rec.SampleRate, tempo, rec.SourcePath)
		}
	}

	store.Close()
	os.Exit(retval)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Catalog REAPER projects into a SQLite database. Inputs are .rpp files or directories to scan.\nUsage: %s [flags] [path ...]\n", os.Args[0])
	flag.PrintDefaults()
}
