package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for a generation run.
type cliFlags struct {
	config  string
	root    string
	output  string
	quiet   bool
	verbose bool
	noIndex bool
	noStyle bool
	version bool
}

// newFlagSet builds the flag set for a generation run.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("legalpages", flag.ContinueOnError)

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.root, "root", "r", "", "project root containing the source documents")
	fs.StringVarP(&f.output, "output", "o", "", "output directory (relative paths resolve under root)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show warnings and errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file timing and a summary")
	fs.BoolVar(&f.noIndex, "no-index", false, "skip writing index.html")
	fs.BoolVar(&f.noStyle, "no-style", false, "skip writing style.css")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(fs.Output(), fs) }
	return fs
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := newFlagSet(f)

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage writes the command usage to w.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "usage: legalpages [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Converts the legal documents (privacy policy, terms of service,")
	fmt.Fprintln(w, "license, copyright) into static HTML pages under docs/.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
