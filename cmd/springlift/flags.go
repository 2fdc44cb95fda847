package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// AppFlags holds the parsed command line options.
type AppFlags struct {
	ProjectPath     string
	BatchFile       string
	ConfigFile      string
	BatchReportPath string
	NoHTMLReport    bool
	NoJSONReport    bool
}

// ParseFlags parses and validates command line flags. Exactly one of
// --project and --batch-file must be given.
func ParseFlags() AppFlags {
	flags := AppFlags{}

	flag.StringVarP(&flags.ProjectPath, "project", "p", "", "Path to a single Java project to modernize")
	flag.StringVarP(&flags.BatchFile, "batch-file", "b", "", "Path to a text file listing project paths, one per line")
	flag.StringVarP(&flags.ConfigFile, "config", "c", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	flag.StringVar(&flags.BatchReportPath, "batch-report", "", "Path to write the aggregated batch report JSON (batch mode only)")
	flag.BoolVar(&flags.NoHTMLReport, "no-html-report", false, "Disable HTML report generation")
	flag.BoolVar(&flags.NoJSONReport, "no-json-report", false, "Disable JSON diff summary export")
	flag.Parse()

	if flags.ProjectPath == "" && flags.BatchFile == "" {
		fmt.Fprintln(os.Stderr, "[FATAL] either --project or --batch-file is required")
		flag.Usage()
		os.Exit(1)
	}
	if flags.ProjectPath != "" && flags.BatchFile != "" {
		fmt.Fprintln(os.Stderr, "[FATAL] --project and --batch-file are mutually exclusive")
		os.Exit(1)
	}

	return flags
}
