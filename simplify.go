package wgpath

// SimplifyPoints reduces a point sequence with Ramer-Douglas-Peucker: every
// removed point lies within tolerance of the segment between the retained
// points around it. The endpoints are always retained, so a simplified
// centerline still pins its ports. Boolean operations and discretization tend
// to leave long collinear vertex runs on waveguide outlines; simplifying them
// away keeps the later O(n²) cleaning steps cheap.
//
// Sequences with fewer than three points are returned unchanged. The function
// panics if tolerance is negative.
func SimplifyPoints(points []Point, tolerance float64) []Point {
	if tolerance < 0 {
		panic("wgpath: tolerance must not be negative")
	}
	if len(points) < 3 {
		return points
	}
	keep := make([]bool, len(points))
	keep[0] = true
	keep[len(points)-1] = true
	rdp(points, 0, len(points)-1, tolerance, keep)

	out := make([]Point, 0, len(points))
	for i, pt := range points {
		if keep[i] {
			out = append(out, pt)
		}
	}
	return out
}

func rdp(points []Point, lo, hi int, tolerance float64, keep []bool) {
	if hi-lo < 2 {
		return
	}
	far, farDist := lo, 0.0
	for i := lo + 1; i < hi; i++ {
		if d := segmentDistance(points[i], points[lo], points[hi]); d > farDist {
			far, farDist = i, d
		}
	}
	if farDist <= tolerance {
		return
	}
	keep[far] = true
	rdp(points, lo, far, tolerance, keep)
	rdp(points, far, hi, tolerance, keep)
}

// segmentDistance returns the distance from pt to the segment ab.
func segmentDistance(pt, a, b Point) float64 {
	ab := b.Sub(a)
	denom := ab.Hypot2()
	if denom == 0 {
		return pt.Distance(a)
	}
	t := pt.Sub(a).Dot(ab) / denom
	t = min(max(t, 0), 1)
	return pt.Distance(a.Lerp(b, t))
}
