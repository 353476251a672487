// Package location compares the two location ID lists of day 1.
package location

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Lists holds the left and right columns of the puzzle input
type Lists struct {
	Left  []int64
	Right []int64
}

// Len returns the number of complete pairs
func (l Lists) Len() int {
	return min(len(l.Left), len(l.Right))
}

// AbsDiff returns |a - b|
func AbsDiff[T constraints.Signed](a, b T) T {
	v := a - b
	if v < 0 {
		v = -v
	}
	return v
}

// Distance pairs the smallest left value with the smallest right value,
// the second smallest with the second smallest and so on, and sums the
// distances between the pairs. The input slices are left untouched.
func Distance(l Lists) int64 {
	left := slices.Clone(l.Left)
	right := slices.Clone(l.Right)
	slices.Sort(left)
	slices.Sort(right)

	var total int64
	for i := range l.Len() {
		total += AbsDiff(left[i], right[i])
	}
	return total
}

// Similarity sums each left value multiplied by the number of times it
// appears in the right list.
func Similarity(l Lists) int64 {
	counts := make(map[int64]int64, len(l.Right))
	for _, v := range l.Right {
		counts[v]++
	}

	var score int64
	for _, v := range l.Left {
		score += v * counts[v]
	}
	return score
}
