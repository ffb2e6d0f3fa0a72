// Package cmd implements the gometric command line.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/patrikhermansson/gometric/batch"
	"github.com/patrikhermansson/gometric/metric"
	"github.com/rs/zerolog/log"
)

const usage = `usage:
  gometric list
  gometric vector -metric NAME -l 1,2,3 -r 4,5,6
  gometric text -metric NAME -l STRING -r STRING
  gometric batch -metric NAME -kind vector|text -file PATH [-workers N] [-progress]`

// errUsage reports a malformed command line.
var errUsage = errors.New(usage)

// Execute runs the CLI with the process arguments and exits non-zero on failure.
func Execute(ctx context.Context) {
	if err := Run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Run dispatches args to a subcommand, writing results to out.
func Run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	log.Debug().Strs("args", args).Msg("Running command")

	switch args[0] {
	case "list":
		return list(out)
	case "vector":
		return vector(args[1:], out)
	case "text":
		return text(args[1:], out)
	case "batch":
		return runBatch(ctx, args[1:], out)
	default:
		return fmt.Errorf("unknown command %q\n%w", args[0], errUsage)
	}
}

func list(out io.Writer) error {
	fmt.Fprintf(out, "vector: %s\n", strings.Join(metric.Names(metric.Vectors), " "))
	fmt.Fprintf(out, "text:   %s\n", strings.Join(metric.Names(metric.Texts), " "))
	return nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func vector(args []string, out io.Writer) error {
	fs := newFlagSet("vector")
	name := fs.String("metric", "euclidean", "vector metric name")
	left := fs.String("l", "", "left vector, comma separated")
	right := fs.String("r", "", "right vector, comma separated")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w\n%w", err, errUsage)
	}

	fn, err := metric.LookupVector(*name)
	if err != nil {
		return err
	}
	l, err := batch.ParseVector(*left)
	if err != nil {
		return fmt.Errorf("left vector: %w", err)
	}
	r, err := batch.ParseVector(*right)
	if err != nil {
		return fmt.Errorf("right vector: %w", err)
	}

	value, err := safely(func() float64 { return fn(l, r) })
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%g\n", value)
	return nil
}

func text(args []string, out io.Writer) error {
	fs := newFlagSet("text")
	name := fs.String("metric", "levenshtein", "text metric name")
	left := fs.String("l", "", "left string")
	right := fs.String("r", "", "right string")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w\n%w", err, errUsage)
	}

	fn, err := metric.LookupText(*name)
	if err != nil {
		return err
	}
	value, err := safely(func() float64 { return fn(*left, *right) })
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%g\n", value)
	return nil
}

func runBatch(ctx context.Context, args []string, out io.Writer) error {
	fs := newFlagSet("batch")
	name := fs.String("metric", "", "metric name")
	kind := fs.String("kind", "vector", "input kind: vector or text")
	file := fs.String("file", "", "CSV file of pairs")
	workers := fs.Int("workers", 0, "concurrent workers (default $"+batch.WorkersEnv+" or 1)")
	progress := fs.Bool("progress", false, "show a progress bar")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w\n%w", err, errUsage)
	}
	if *name == "" || *file == "" {
		return errUsage
	}
	opts := batch.Options{Workers: *workers, Progress: *progress}

	var (
		results []batch.Result
		err     error
	)
	switch *kind {
	case "vector":
		fn, lerr := metric.LookupVector(*name)
		if lerr != nil {
			return lerr
		}
		pairs, lerr := batch.LoadVectorPairs(*file)
		if lerr != nil {
			return lerr
		}
		results, err = batch.Run(ctx, pairs, fn, opts)
	case "text":
		fn, lerr := metric.LookupText(*name)
		if lerr != nil {
			return lerr
		}
		pairs, lerr := batch.LoadTextPairs(*file)
		if lerr != nil {
			return lerr
		}
		results, err = batch.Run(ctx, pairs, fn, opts)
	default:
		return fmt.Errorf("unknown kind %q\n%w", *kind, errUsage)
	}
	if err != nil {
		return err
	}

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(out, "%d\terror: %v\n", r.Index, r.Err)
			continue
		}
		fmt.Fprintf(out, "%d\t%g\n", r.Index, r.Value)
	}
	s := batch.Summary(results)
	fmt.Fprintf(out, "count=%d failures=%d min=%g max=%g mean=%g\n", s.Count, s.Failures, s.Min, s.Max, s.Mean)
	return nil
}

// safely converts a contract panic raised by fn into an error.
func safely(fn func() float64) (value float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	return fn(), nil
}
