package report

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleLevels(t *testing.T) {
	tests := []struct {
		level   Level
		strict  bool
		lenient bool
	}{
		{Level{7, 6, 4, 2, 1}, true, true},
		{Level{1, 2, 7, 8, 9}, false, false},
		{Level{9, 7, 6, 2, 1}, false, false},
		{Level{1, 3, 2, 4, 5}, false, true},
		{Level{8, 6, 4, 4, 1}, false, true},
		{Level{1, 3, 6, 7, 9}, true, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.strict, IsSafeStrict(tt.level), "IsSafeStrict(%v)", tt.level)
		assert.Equal(t, tt.lenient, IsSafeWithOneRemoval(tt.level), "IsSafeWithOneRemoval(%v)", tt.level)
	}
}

func TestIsSafeStrict(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		want  bool
	}{
		{"empty", Level{}, true},
		{"single value", Level{42}, true},
		{"equal first pair", Level{5, 5, 6, 7}, false},
		{"equal later pair", Level{1, 2, 2, 3}, false},
		{"step of three", Level{1, 4, 7, 10}, true},
		{"step of four", Level{1, 5}, false},
		{"direction flips", Level{1, 2, 3, 2}, false},
		{"decreasing to zero", Level{3, 2, 1, 0}, true},
		{"large values", Level{4294967295, 4294967292}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSafeStrict(tt.level))
		})
	}
}

func TestIsSafeWithOneRemoval(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		want  bool
	}{
		{"single value", Level{1}, true},
		{"two equal values", Level{3, 3}, true},
		{"removing first fixes direction", Level{5, 1, 2, 3, 4}, true},
		{"removing last", Level{1, 2, 3, 4, 9}, true},
		{"two bad steps", Level{1, 2, 9, 10, 20}, false},
		{"two equal pairs", Level{1, 1, 2, 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSafeWithOneRemoval(tt.level))
		})
	}
}

func TestIsSafeWithOneRemovalDoesNotMutate(t *testing.T) {
	level := Level{1, 3, 2, 4, 5}
	original := append(Level(nil), level...)

	require.True(t, IsSafeWithOneRemoval(level))
	assert.Equal(t, original, level)
}

func randomLevel(rng *rand.Rand) Level {
	level := make(Level, 1+rng.Intn(8))
	for i := range level {
		level[i] = uint32(rng.Intn(12))
	}
	return level
}

func TestProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 2000; i++ {
		level := randomLevel(rng)

		strict := IsSafeStrict(level)
		lenient := IsSafeWithOneRemoval(level)

		if strict {
			assert.True(t, lenient, "strict-safe level must stay safe with tolerance: %v", level)
		}
		assert.Equal(t, strict, IsSafeStrict(level), "idempotent strict: %v", level)
		assert.Equal(t, lenient, IsSafeWithOneRemoval(level), "idempotent lenient: %v", level)

		for j := 1; j < len(level); j++ {
			if level[j] == level[j-1] {
				assert.False(t, strict, "equal adjacent values must be unsafe: %v", level)
			}
		}
	}
}

func TestMonotonicLevelsAreSafe(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		n := 2 + rng.Intn(10)
		up := make(Level, n)
		down := make(Level, n)
		up[0] = uint32(rng.Intn(10))
		down[0] = 100
		for j := 1; j < n; j++ {
			up[j] = up[j-1] + uint32(1+rng.Intn(3))
			down[j] = down[j-1] - uint32(1+rng.Intn(3))
		}
		assert.True(t, IsSafeStrict(up), "%v", up)
		assert.True(t, IsSafeStrict(down), "%v", down)
	}
}

func TestDirectionOf(t *testing.T) {
	d, ok := DirectionOf(1, 2)
	require.True(t, ok)
	assert.Equal(t, Increasing, d)

	d, ok = DirectionOf(2, 1)
	require.True(t, ok)
	assert.Equal(t, Decreasing, d)

	_, ok = DirectionOf(2, 2)
	assert.False(t, ok)

	assert.Equal(t, "increasing", Increasing.String())
	assert.Equal(t, "decreasing", Decreasing.String())
}

func sampleLevels() []Level {
	return []Level{
		{7, 6, 4, 2, 1},
		{1, 2, 7, 8, 9},
		{9, 7, 6, 2, 1},
		{1, 3, 2, 4, 5},
		{8, 6, 4, 4, 1},
		{1, 3, 6, 7, 9},
	}
}

func TestCountSafe(t *testing.T) {
	levels := sampleLevels()

	assert.Equal(t, 2, CountSafe(levels, IsSafeStrict))
	assert.Equal(t, 4, CountSafe(levels, IsSafeWithOneRemoval))
	assert.Equal(t, 0, CountSafe(nil, IsSafeStrict))
}

func TestCountSafeParallel(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	levels := make([]Level, 300)
	for i := range levels {
		levels[i] = randomLevel(rng)
	}

	for _, workers := range []int{0, 1, 3, 16, 1000} {
		for _, pred := range []Predicate{IsSafeStrict, IsSafeWithOneRemoval} {
			got, err := CountSafeParallel(context.Background(), levels, pred, workers)
			require.NoError(t, err)
			assert.Equal(t, CountSafe(levels, pred), got, "workers=%d", workers)
		}
	}
}

func TestCountSafeParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := CountSafeParallel(ctx, sampleLevels(), IsSafeStrict, 2)
	assert.ErrorIs(t, err, context.Canceled)
}
