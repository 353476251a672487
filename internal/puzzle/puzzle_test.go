package puzzle

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rail44/advent/internal/input"
)

func TestDays(t *testing.T) {
	assert.Equal(t, []int{1, 2}, Days())

	s, ok := Lookup(2)
	require.True(t, ok)
	assert.Equal(t, "Red-Nosed Reports", s.Title())

	_, ok = Lookup(25)
	assert.False(t, ok)
}

func TestSamples(t *testing.T) {
	for _, day := range Days() {
		s, _ := Lookup(day)
		sample := s.Sample()

		for _, workers := range []int{0, 4} {
			got, err := s.Solve(context.Background(), strings.NewReader(sample.Input), Options{Workers: workers})
			require.NoError(t, err, "day %d", day)
			assert.Equal(t, sample.Want, got, "day %d workers=%d", day, workers)
		}
	}
}

func TestSolveParseError(t *testing.T) {
	for _, day := range Days() {
		s, _ := Lookup(day)
		_, err := s.Solve(context.Background(), strings.NewReader("1 two\n"), Options{})
		assert.ErrorIs(t, err, input.ErrParse, "day %d", day)
	}
}

func TestSolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, _ := Lookup(2)
	_, err := s.Solve(ctx, strings.NewReader("1 2 3\n"), Options{Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

type fakeSolver struct{ day int }

func (f fakeSolver) Day() int       { return f.day }
func (f fakeSolver) Title() string  { return "fake" }
func (f fakeSolver) Sample() Sample { return Sample{} }
func (f fakeSolver) Solve(context.Context, io.Reader, Options) (Answer, error) {
	return Answer{}, nil
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() { Register(fakeSolver{day: 1}) })
}

func TestAnswerString(t *testing.T) {
	assert.Equal(t, "part1=2 part2=4", Answer{Part1: 2, Part2: 4}.String())
}
