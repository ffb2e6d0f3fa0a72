package batch

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

// WorkersEnv names the environment variable holding the default worker count.
const WorkersEnv = "GOMETRIC_NTRD"

// ErrSkipped marks a pair that was not evaluated because the batch was
// cancelled first.
var ErrSkipped = errors.New("batch: pair not evaluated")

// Options configures Run.
type Options struct {
	// Workers bounds the number of concurrent evaluations. Values below one
	// fall back to DefaultWorkers.
	Workers int
	// Progress shows a progress bar on stderr.
	Progress bool
}

// Result is the outcome of evaluating one pair.
type Result struct {
	Index int
	Value float64
	// Err holds the contract violation raised for this pair, if any.
	Err error
}

// DefaultWorkers reads the worker count from GOMETRIC_NTRD, defaulting to 1.
func DefaultWorkers() int {
	threads := 1
	if env := os.Getenv(WorkersEnv); env != "" {
		if t, err := strconv.Atoi(env); err == nil && t > 0 {
			threads = t
			log.Debug().Msgf("Using %d worker threads", threads)
		}
	}
	return threads
}

// Run evaluates fn over every pair and returns the results in input order.
// A panic raised by fn for a pair is recovered into that pair's Result.Err
// so one bad row does not abort the batch. Run stops scheduling pairs once
// ctx is done and returns ctx's error together with the partial results.
func Run[T any](ctx context.Context, pairs []Pair[T], fn func(a, b T) float64, opts Options) ([]Result, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = DefaultWorkers()
	}
	log.Info().Msgf("Evaluating %d pairs using %d workers", len(pairs), workers)

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.NewOptions(len(pairs),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("evaluating"),
			progressbar.OptionShowCount(),
		)
	}

	results := make([]Result, len(pairs))
	for i := range results {
		results[i] = Result{Index: i, Err: ErrSkipped}
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range pairs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = evaluate(i, pairs[i], fn)
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if bar != nil {
		_ = bar.Finish()
	}
	return results, err
}

func evaluate[T any](i int, p Pair[T], fn func(a, b T) float64) (res Result) {
	res.Index = i
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}
			log.Warn().Err(err).Int("row", i).Msg("Pair rejected")
			res.Err = err
		}
	}()
	res.Value = fn(p.Left, p.Right)
	return res
}

// Stats aggregates the successful results of a batch.
type Stats struct {
	Count    int
	Failures int
	Min      float64
	Max      float64
	Mean     float64
}

// Summary computes Stats over results. Min, Max and Mean are zero when no
// result succeeded.
func Summary(results []Result) Stats {
	s := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	sum := 0.0
	for _, r := range results {
		if r.Err != nil {
			s.Failures++
			continue
		}
		s.Count++
		sum += r.Value
		s.Min = min(s.Min, r.Value)
		s.Max = max(s.Max, r.Value)
	}
	if s.Count == 0 {
		s.Min, s.Max = 0, 0
		return s
	}
	s.Mean = sum / float64(s.Count)
	return s
}
