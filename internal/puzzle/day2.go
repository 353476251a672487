package puzzle

import (
	"context"
	_ "embed"
	"fmt"
	"io"

	"github.com/rail44/advent/internal/input"
	"github.com/rail44/advent/internal/report"
)

//go:embed samples/day2.txt
var day2Sample string

func init() {
	Register(day2{})
}

type day2 struct{}

func (day2) Day() int      { return 2 }
func (day2) Title() string { return "Red-Nosed Reports" }

func (day2) Sample() Sample {
	return Sample{Input: day2Sample, Want: Answer{Part1: 2, Part2: 4}}
}

func (day2) Solve(ctx context.Context, r io.Reader, opts Options) (Answer, error) {
	levels, err := input.ReadReports(r)
	if err != nil {
		return Answer{}, err
	}

	strict, err := report.CountSafeParallel(ctx, levels, report.IsSafeStrict, opts.Workers)
	if err != nil {
		return Answer{}, fmt.Errorf("strict check: %w", err)
	}
	tolerant, err := report.CountSafeParallel(ctx, levels, report.IsSafeWithOneRemoval, opts.Workers)
	if err != nil {
		return Answer{}, fmt.Errorf("tolerant check: %w", err)
	}

	return Answer{Part1: int64(strict), Part2: int64(tolerant)}, nil
}
