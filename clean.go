package wgpath

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// DefaultStdMultiplier is the default sensitivity of
// [FilterPointsByStdDistance]. Despite the name, the multiplier scales the
// median gap, not a standard deviation; see [FilterPointsByStdDistance].
const DefaultStdMultiplier = 3.0

// FilterPointsByStdDistance removes interior outlier points from an ordered
// sequence based on the statistics of the gaps between consecutive points.
//
// A point is an outlier when the gap from its predecessor deviates from the
// median gap by more than stdMultiplier median-gap units. The median serves
// as both center and scale because the mean and standard deviation are
// dominated by the outlier itself: over n gaps no deviation can exceed
// √(n−1) standard deviations, so a σ-scaled threshold at the usual
// multiplier of 3 passes every bad vertex through.
//
// The first and last points anchor ports and are never removed, however
// anomalous their gaps. Removing a point bridges its neighbors directly; the
// remaining points are not re-routed. Sequences of two points or fewer are
// returned unchanged. Larger multipliers are stricter (in the limit nothing
// is removed); smaller multipliers remove more aggressively.
func FilterPointsByStdDistance(points []Point, stdMultiplier float64) []Point {
	if len(points) <= 2 {
		return points
	}

	gaps := make([]float64, len(points)-1)
	for i := 1; i < len(points); i++ {
		gaps[i-1] = points[i-1].Distance(points[i])
	}
	sorted := slices.Clone(gaps)
	slices.Sort(sorted)
	median := stat.Quantile(0.5, stat.Empirical, sorted, nil)

	out := make([]Point, 0, len(points))
	out = append(out, points[0])
	for i := 1; i < len(points)-1; i++ {
		if math.Abs(gaps[i-1]-median) > stdMultiplier*median {
			continue
		}
		out = append(out, points[i])
	}
	out = append(out, points[len(points)-1])
	return out
}

// SortPointsNearestNeighbor linearizes an unordered point set into a
// traversable sequence: starting from points[startIdx], it repeatedly appends
// the unused point closest to the last appended one, breaking distance ties
// by lowest original index. The result is a permutation of the input.
//
// Inputs with fewer than two points are returned unchanged. The function
// panics if startIdx is out of range. It is O(n²) in the number of points;
// for large intersection clouds, simplify first.
func SortPointsNearestNeighbor(points []Point, startIdx int) []Point {
	if len(points) <= 1 {
		return points
	}
	if startIdx < 0 || startIdx >= len(points) {
		panic("wgpath: start index out of range")
	}

	out := make([]Point, 0, len(points))
	used := make([]bool, len(points))
	out = append(out, points[startIdx])
	used[startIdx] = true
	last := points[startIdx]
	for n := 0; n < len(points)-1; n++ {
		best := -1
		bestDist := math.Inf(1)
		for j, pt := range points {
			if used[j] {
				continue
			}
			if d := last.DistanceSquared(pt); d < bestDist {
				best, bestDist = j, d
			}
		}
		used[best] = true
		last = points[best]
		out = append(out, last)
	}
	return out
}
