// Package report classifies reactor reports (levels) as safe or unsafe.
package report

import "fmt"

const (
	// MinStep is the smallest allowed difference between adjacent values
	MinStep = 1
	// MaxStep is the largest allowed difference between adjacent values
	MaxStep = 3
)

// Level is one report: an ordered sequence of readings from a single input line
type Level []uint32

// Direction is the trend fixed by the first adjacent pair of a level
type Direction int

const (
	Increasing Direction = iota
	Decreasing
)

func (d Direction) String() string {
	switch d {
	case Increasing:
		return "increasing"
	case Decreasing:
		return "decreasing"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// DirectionOf returns the direction of the step from a to b.
// ok is false when a == b, since equal values establish no direction.
func DirectionOf(a, b uint32) (d Direction, ok bool) {
	switch {
	case a < b:
		return Increasing, true
	case a > b:
		return Decreasing, true
	}
	return 0, false
}

// Predicate decides whether a single level is safe
type Predicate func(Level) bool

// IsSafeStrict reports whether every adjacent pair of level moves in the
// direction of the first pair by a step in [MinStep, MaxStep].
// Levels shorter than two values are safe.
func IsSafeStrict(level Level) bool {
	if len(level) < 2 {
		return true
	}

	dir, ok := DirectionOf(level[0], level[1])
	if !ok {
		return false
	}

	for i := 1; i < len(level); i++ {
		prev, next := level[i-1], level[i]

		var step uint32
		switch dir {
		case Increasing:
			if next <= prev {
				return false
			}
			step = next - prev
		case Decreasing:
			if next >= prev {
				return false
			}
			step = prev - next
		}

		if step < MinStep || step > MaxStep {
			return false
		}
	}

	return true
}

// IsSafeWithOneRemoval reports whether level is safe, or becomes safe
// after removing exactly one value. Every candidate is rechecked in full
// by IsSafeStrict, so a removal at the front re-derives the direction.
func IsSafeWithOneRemoval(level Level) bool {
	if IsSafeStrict(level) {
		return true
	}

	candidate := make(Level, 0, len(level))
	for i := range level {
		candidate = append(candidate[:0], level[:i]...)
		candidate = append(candidate, level[i+1:]...)
		if IsSafeStrict(candidate) {
			return true
		}
	}

	return false
}

// CountSafe returns how many levels satisfy predicate
func CountSafe(levels []Level, predicate Predicate) int {
	count := 0
	for _, level := range levels {
		if predicate(level) {
			count++
		}
	}
	return count
}
