// Package runner solves several puzzle days concurrently and collects
// their answers.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rail44/advent/internal/checksum"
	"github.com/rail44/advent/internal/config"
	"github.com/rail44/advent/internal/input"
	"github.com/rail44/advent/internal/log"
	"github.com/rail44/advent/internal/puzzle"
)

// Result is the outcome of solving one day
type Result struct {
	Day      int
	Title    string
	Answer   puzzle.Answer
	Want     *puzzle.Answer // set when solving a sample
	Checksum string
	Duration time.Duration
	Err      error
}

// Failed reports whether the day errored or missed its expected answer
func (r Result) Failed() bool {
	return r.Err != nil || (r.Want != nil && *r.Want != r.Answer)
}

// Runner solves days using the inputs named by the configuration
type Runner struct {
	config    *config.Config
	logger    log.Logger
	logOutput io.Writer
	logMu     sync.Mutex // guards logOutput across days
}

// New creates a new runner
func New(cfg *config.Config) *Runner {
	return &Runner{
		config:    cfg,
		logger:    log.Default(),
		logOutput: os.Stderr,
	}
}

// SetLogOutput redirects the per-day log lines
func (r *Runner) SetLogOutput(w io.Writer) {
	r.logOutput = w
}

// job is one day to solve together with where its input comes from
type job struct {
	solver puzzle.Solver
	load   func() ([]byte, error)
	want   *puzzle.Answer
}

// Run solves each day against its configured input file.
// An empty days slice means every registered day.
func (r *Runner) Run(ctx context.Context, days []int) ([]Result, error) {
	solvers, err := resolve(days)
	if err != nil {
		return nil, err
	}

	jobs := make([]job, 0, len(solvers))
	for _, s := range solvers {
		path := r.config.InputPath(s.Day())
		jobs = append(jobs, job{
			solver: s,
			load:   func() ([]byte, error) { return readInput(path) },
		})
	}
	return r.execute(ctx, jobs)
}

// Check solves each day's embedded sample and records the expected answer
func (r *Runner) Check(ctx context.Context, days []int) ([]Result, error) {
	solvers, err := resolve(days)
	if err != nil {
		return nil, err
	}

	jobs := make([]job, 0, len(solvers))
	for _, s := range solvers {
		sample := s.Sample()
		jobs = append(jobs, job{
			solver: s,
			load:   func() ([]byte, error) { return []byte(sample.Input), nil },
			want:   &sample.Want,
		})
	}
	return r.execute(ctx, jobs)
}

// resolve maps day numbers to solvers, failing on the first unknown day
func resolve(days []int) ([]puzzle.Solver, error) {
	if len(days) == 0 {
		days = puzzle.Days()
	}

	solvers := make([]puzzle.Solver, 0, len(days))
	seen := make(map[int]bool, len(days))
	for _, d := range days {
		if seen[d] {
			continue
		}
		seen[d] = true

		s, ok := puzzle.Lookup(d)
		if !ok {
			return nil, fmt.Errorf("no solver registered for day %d", d)
		}
		solvers = append(solvers, s)
	}
	return solvers, nil
}

func readInput(path string) ([]byte, error) {
	f, err := input.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", input.ErrParse, err)
	}
	return data, nil
}

// execute solves all jobs with bounded concurrency. A failing day is
// recorded in its Result and does not stop the others.
func (r *Runner) execute(ctx context.Context, jobs []job) ([]Result, error) {
	var mu sync.Mutex
	results := make([]Result, 0, len(jobs))

	var g errgroup.Group
	g.SetLimit(max(1, r.config.Workers))

	for _, j := range jobs {
		g.Go(func() error {
			// Stop scheduling days once the caller gives up
			if err := ctx.Err(); err != nil {
				return err
			}
			res := r.solveOne(ctx, j)

			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b Result) int { return a.Day - b.Day })

	failed := 0
	for _, res := range results {
		if res.Failed() {
			failed++
		}
	}
	r.logger.Debug("run finished", "days", len(results), "failed", failed)

	return results, nil
}

func (r *Runner) solveOne(ctx context.Context, j job) Result {
	start := time.Now()
	s := j.solver
	logger := log.ForDay(s.Day(), r.logOutput, &r.logMu)

	res := Result{Day: s.Day(), Title: s.Title(), Want: j.want}

	data, err := j.load()
	if err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		logger.Error("failed to read input", "error", err)
		return res
	}
	res.Checksum = checksum.Calculate(data)
	if log.IsDebugEnabled() {
		logger.Debug("solving", "bytes", len(data), "checksum", res.Checksum)
	}

	res.Answer, res.Err = s.Solve(ctx, bytes.NewReader(data), puzzle.Options{Workers: r.config.Workers})
	res.Duration = time.Since(start).Round(time.Microsecond)

	switch {
	case res.Err != nil:
		logger.Error("failed to solve", "error", res.Err)
	case res.Failed():
		logger.Warn("answer does not match sample", "got", res.Answer, "want", *res.Want)
	default:
		logger.Debug("solved", "answer", res.Answer, "duration", res.Duration)
	}
	return res
}
