// Package puzzle holds the registry of daily puzzle solvers.
package puzzle

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync"
)

// Answer is the result of both parts of a puzzle
type Answer struct {
	Part1 int64 `json:"part1"`
	Part2 int64 `json:"part2"`
}

func (a Answer) String() string {
	return fmt.Sprintf("part1=%d part2=%d", a.Part1, a.Part2)
}

// Options tunes how solvers run
type Options struct {
	// Workers bounds per-solver parallelism; values below 1 mean sequential
	Workers int
}

// Sample is the worked example from a puzzle description
type Sample struct {
	Input string
	Want  Answer
}

// Solver solves one day's puzzle
type Solver interface {
	Day() int
	Title() string
	Sample() Sample
	Solve(ctx context.Context, r io.Reader, opts Options) (Answer, error)
}

var (
	mu      sync.RWMutex
	solvers = map[int]Solver{}
)

// Register makes a solver available by its day number.
// Registering the same day twice panics.
func Register(s Solver) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := solvers[s.Day()]; dup {
		panic(fmt.Sprintf("puzzle: day %d registered twice", s.Day()))
	}
	solvers[s.Day()] = s
}

// Lookup returns the solver registered for day
func Lookup(day int) (Solver, bool) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := solvers[day]
	return s, ok
}

// Days returns all registered day numbers in ascending order
func Days() []int {
	mu.RLock()
	defer mu.RUnlock()

	days := make([]int, 0, len(solvers))
	for d := range solvers {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}
