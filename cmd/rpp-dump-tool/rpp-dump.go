package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	reaparser "github.com/s95rob/ReaParser"
)

func main() {
	jsonOut := flag.Bool("j", false, "Print the decoded project as JSON instead of the text report.")
	yamlOut := flag.Bool("y", false, "Print the decoded project as YAML instead of the text report.")
	rawVolume := flag.Bool("raw", false, "Report volume as the raw project scalar instead of decibels.")
	panPercent := flag.Bool("percent", true, "Report pan as a percentage instead of the normalized -1..1 range.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()

	if *versionFlag {
		info := reaparser.GetVersionInfo()
		fmt.Printf("rpp-dump %s (commit %s, built %s, %s)\n",
			info.Version, info.GitCommit, info.BuildTime, info.GoVersion)
		os.Exit(0)
	}
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

	retval := 0
	for _, path := range flag.Args() {
		project, err := reaparser.Open(path, opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not decode %v: %v\n", path, err)
			retval = 1
			continue
		}

		switch {
		case *jsonOut:
			out, err := json.MarshalIndent(project, "", "  ")
			if err != nil {
				fmt.Fprintf(os.Stderr, "could not marshal %v as json: %v\n", path, err)
				retval = 1
				continue
			}
			fmt.Println(string(out))
		case *yamlOut:
			out, err := yaml.Marshal(project)
			if err != nil {
				fmt.Fprintf(os.Stderr, "could not marshal %v as yaml: %v\n", path, err)
				retval = 1
				continue
			}
			fmt.Print(string(out))
		default:
			report(project, *rawVolume, *panPercent)
		}
	}
	os.Exit(retval)
}

// report prints the project inventory: header fields first, then every
// track with its items and effect chain.
func report(project *reaparser.Project, rawVolume, panPercent bool) {
	volUnit, panUnit := "dB", ""
	if rawVolume {
		volUnit = ""
	}
	if panPercent {
		panUnit = "%"
	}

	fmt.Printf("Reaper project: %s\n", project.Name)
	fmt.Printf("Reaper version: %s\n", project.Version)
	fmt.Printf("Sample rate: %dHz\n", project.SampleRate)
	fmt.Printf("Tempo: %s\n\n", project.Tempo)

	if len(project.Tracks) == 0 {
		return
	}

	fmt.Println("Tracks:")
	fmt.Println("----------------------------")
	for _, track := range project.Tracks {
		fmt.Printf("%d) %s (%s)\n", track.NumericID, track.Name, track.GUID)
		fmt.Printf("Volume: %.6g%s Pan: %.6g%s\n", track.Volume, volUnit, track.Pan, panUnit)
		fmt.Printf("Muted: %s\n", yesNo(track.Muted))
		fmt.Printf("Phase: %s\n", phase(track.PhaseInverted))

		if len(track.MediaItems) > 0 {
			fmt.Println("Items: ---------------------")
			for _, item := range track.MediaItems {
				fmt.Printf("%q\n", item.Name)
				if item.Type == reaparser.MediaSample {
					fmt.Printf("FILE  : %s\n", item.Filepath)
				}
				fmt.Printf("START : %.6gs\n", item.Start)
				fmt.Printf("END   : %.6gs\n", item.End)
				fmt.Printf("LENGTH: %.6gs\n", item.Length)
			}
		}

		if len(track.FXChain) > 0 {
			fmt.Println("FX Chain: ------------------")
			for _, fx := range track.FXChain {
				fmt.Printf("%s (%s)\n", fx.Name, fx.Filepath)
				fmt.Println(fx.Data)
			}
		}

		fmt.Println()
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func phase(inverted bool) string {
	if inverted {
		return "Flipped"
	}
	return "Normal"
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Dump REAPER projects. Input .rpp project files, output a text report, JSON or YAML.\nUsage: %s [flags] [path ...]\n", os.Args[0])
	flag.PrintDefaults()
}
