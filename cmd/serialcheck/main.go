// Serialcheck runs formatting self-checks and reports the results.
//
// Usage:
//
//	serialcheck [-plan file] [-config file] [-report format] [-border style] [-width n] [-transcript]
//
// Without -plan, serialcheck runs the built-in boundary plan, which covers
// the limits of every integer and float width.
//
// The -config flag names a YAML file overriding the plan's config (line
// ending, exponent marker, slice framing).
//
// The -report flag selects table, tsv, yaml or jsonl output. The -border
// flag selects rounded, ascii or none for tables, and -width truncates the
// got and want columns.
//
// The -transcript flag streams every check through a Writer bound to
// standard output instead, one "name: value (n bytes)." line per check.
//
// Serialcheck exits with status 1 if any check fails.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"syscall"

	"github.com/bjaus/serialwrite"
)

var (
	planFlag       = flag.String("plan", "", "read checks from YAML `file` (default built-in boundary plan)")
	configFlag     = flag.String("config", "", "read writer config from YAML `file`")
	reportFlag     = flag.String("report", "table", "report `format`: table, tsv, yaml or jsonl")
	borderFlag     = flag.String("border", "rounded", "table border `style`: rounded, ascii or none")
	widthFlag      = flag.Int("width", 0, "truncate got and want columns to `n` cells (0 means no limit)")
	transcriptFlag = flag.Bool("transcript", false, "stream checks through a writer instead of reporting")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: serialcheck [-plan file] [-config file] [-report format] [-border style] [-width n] [-transcript]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("serialcheck: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 0 {
		usage()
	}

	format, err := serialwrite.ParseReportFormat(*reportFlag)
	if err != nil {
		log.Print(err)
		usage()
	}
	border, err := serialwrite.ParseBorder(*borderFlag)
	if err != nil {
		log.Print(err)
		usage()
	}

	plan, err := loadPlan()
	if err != nil {
		log.Fatal(err)
	}

	out := bufio.NewWriter(os.Stdout)
	ok, err := run(out, plan, format, serialwrite.ReportOptions{Border: border, MaxWidth: *widthFlag})
	if err == nil {
		err = out.Flush()
	}
	if err != nil && !isBrokenPipe(err) {
		log.Fatal(err)
	}
	if !ok {
		os.Exit(1)
	}
}

func loadPlan() (serialwrite.Plan, error) {
	plan := serialwrite.BoundaryPlan()
	if *planFlag != "" {
		p, err := readFile(*planFlag, serialwrite.LoadPlan)
		if err != nil {
			return serialwrite.Plan{}, err
		}
		plan = p
	}
	if *configFlag != "" {
		cfg, err := readFile(*configFlag, serialwrite.LoadConfig)
		if err != nil {
			return serialwrite.Plan{}, err
		}
		plan.Config = cfg
	}
	return plan, nil
}

func readFile[T any](name string, load func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(name)
	if err != nil {
		return zero, err
	}
	defer f.Close()
	v, err := load(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

// run writes the plan's results to out and reports whether every check passed.
func run(out io.Writer, plan serialwrite.Plan, format serialwrite.ReportFormat, opts serialwrite.ReportOptions) (bool, error) {
	results := plan.Run()
	passed, total := serialwrite.Summary(results)
	if *transcriptFlag {
		w, err := serialwrite.NewWithConfig(out, plan.Config)
		if err != nil {
			return false, err
		}
		if _, err := serialwrite.WriteTranscript(w, plan); err != nil {
			return false, err
		}
	} else if err := serialwrite.WriteReport(out, format, results, opts); err != nil {
		return false, err
	}
	if passed != total {
		log.Printf("%d of %d checks failed", total-passed, total)
	}
	return passed == total, nil
}

// isBrokenPipe reports whether err is a broken or closed pipe, as when
// output is piped into head.
func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
