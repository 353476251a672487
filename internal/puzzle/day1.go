package puzzle

import (
	"context"
	_ "embed"
	"io"

	"github.com/rail44/advent/internal/input"
	"github.com/rail44/advent/internal/location"
)

//go:embed samples/day1.txt
var day1Sample string

func init() {
	Register(day1{})
}

type day1 struct{}

func (day1) Day() int      { return 1 }
func (day1) Title() string { return "Historian Hysteria" }

func (day1) Sample() Sample {
	return Sample{Input: day1Sample, Want: Answer{Part1: 11, Part2: 31}}
}

func (day1) Solve(ctx context.Context, r io.Reader, _ Options) (Answer, error) {
	lists, err := input.ReadColumns(r)
	if err != nil {
		return Answer{}, err
	}
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}
	return Answer{
		Part1: location.Distance(lists),
		Part2: location.Similarity(lists),
	}, nil
}
