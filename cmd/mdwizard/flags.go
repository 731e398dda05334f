package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// buildFlags holds flags for the build command.
type buildFlags struct {
	common     commonFlags
	output     string
	html       bool
	workers    int
	workersSet bool // --workers given explicitly, so 0 overrides config
}

// previewFlags holds flags for the preview command.
type previewFlags struct {
	common commonFlags
	html   bool
	width  int
	style  string
}

// docsFlags holds flags for the docs command.
type docsFlags struct {
	output string
	date   string
}

// addCommonFlags adds flags shared across commands to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed output")
}

// newFlagSet creates a FlagSet that reports errors instead of exiting.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string) (*buildFlags, []string, error) {
	fs := newFlagSet("build")
	f := &buildFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory (or .md file for a single recipe)")
	fs.BoolVar(&f.html, "html", false, "also write an HTML preview")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: build: %w", ErrInvalidFlags, err)
	}
	f.workersSet = fs.Changed("workers")

	return f, fs.Args(), nil
}

// parsePreviewFlags parses preview command flags and returns positional args.
func parsePreviewFlags(args []string) (*previewFlags, []string, error) {
	fs := newFlagSet("preview")
	f := &previewFlags{}

	fs.BoolVar(&f.html, "html", false, "print a standalone HTML page instead of terminal output")
	fs.IntVar(&f.width, "width", 0, "terminal wrap width (0 = config or 80)")
	fs.StringVar(&f.style, "style", "", "terminal style: dark, light, notty, ascii, ...")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: preview: %w", ErrInvalidFlags, err)
	}

	return f, fs.Args(), nil
}

// parseDocsFlags parses docs command flags. Positional args are rejected.
func parseDocsFlags(args []string) (*docsFlags, error) {
	fs := newFlagSet("docs")
	f := &docsFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.StringVar(&f.date, "date", "auto", "footer date layout: auto, none, a preset, or tokens like \"D MMMM YYYY\"")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: docs: %w", ErrInvalidFlags, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: docs takes no arguments, got %q", ErrInvalidFlags, fs.Args())
	}

	return f, nil
}
