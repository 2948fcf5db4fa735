package search

import "math"

const sqrt2 = math.Sqrt2

// Octile returns the octile-distance heuristic between two coordinates:
// chebyshev distance with a sqrt(2) correction for the diagonal portion
// of the move. Admissible for 8-connected grids with unit cardinal cost
// and sqrt(2) diagonal cost.
func Octile(a, b Coord) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	lo, hi := dx, dy
	if lo > hi {
		lo, hi = hi, lo
	}
	return (hi - lo) + lo*sqrt2
}
