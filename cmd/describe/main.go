package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/wbrown/describe/describe"
	"github.com/wbrown/describe/describe/annotations"
	"github.com/wbrown/describe/describe/table"
)

// samples are the values shown when the program runs.
var samples = []interface{}{"World", 100, false}

// errUnexpectedArgs is returned when positional arguments are given. The
// program only describes its built-in samples.
var errUnexpectedArgs = errors.New("unexpected arguments")

type options struct {
	help    bool
	verbose bool
	asTable bool
}

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	opts, err := parseFlags(fs, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		if errors.Is(err, errUnexpectedArgs) {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			fs.Usage()
		}
		os.Exit(2)
	}

	if opts.help {
		fs.Usage()
		os.Exit(0)
	}

	var handler annotations.Handler
	if opts.verbose {
		handler = annotations.NewOutputFormatter(os.Stderr).Handle
	}

	if err := run(os.Stdout, handler, opts.asTable); err != nil {
		log.Fatalf("describe: %v", err)
	}
}

// parseFlags reads options from args. Flag errors are reported by fs itself;
// any positional argument yields errUnexpectedArgs.
func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var opts options

	fs.BoolVar(&opts.help, "h", false, "show help")
	fs.BoolVar(&opts.verbose, "verbose", false, "verbose mode (show describe annotations on stderr)")
	fs.BoolVar(&opts.asTable, "table", false, "print the samples as a markdown table")
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: %s [options]\n\n", fs.Name())
		fmt.Fprintf(out, "Describes a string, a number and a boolean sample value.\n\n")
		fmt.Fprintf(out, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("%w: %v", errUnexpectedArgs, fs.Args())
	}
	return opts, nil
}

func run(w io.Writer, handler annotations.Handler, asTable bool) error {
	d := describe.NewDescriber(handler)

	if asTable {
		// Still run through the describer so -verbose reports each sample.
		for _, v := range samples {
			d.DescribeValue(v)
		}
		if _, err := fmt.Fprint(w, table.Render(samples...)); err != nil {
			return fmt.Errorf("write table: %w", err)
		}
		return nil
	}

	for _, v := range samples {
		if _, err := fmt.Fprintln(w, d.DescribeValue(v)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
