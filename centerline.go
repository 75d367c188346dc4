package wgpath

// PointFilter transforms a point sequence into another point sequence. It is
// the hook applied to a raw centerline before it becomes a path; beyond
// preserving coordinate dimensionality the engine assumes nothing about it.
// [StdDistanceFilter], [SavGolFilter], and [SimplifyFilter] adapt the
// package's own cleaners to this shape.
type PointFilter func([]Point) []Point

// StdDistanceFilter returns a filter applying [FilterPointsByStdDistance]
// with the given multiplier.
func StdDistanceFilter(stdMultiplier float64) PointFilter {
	return func(points []Point) []Point {
		return FilterPointsByStdDistance(points, stdMultiplier)
	}
}

// SavGolFilter returns a filter applying [SmoothSavGol] with the given
// options.
func SavGolFilter(opts SavGolOpts) PointFilter {
	return func(points []Point) []Point {
		return SmoothSavGol(points, opts)
	}
}

// SimplifyFilter returns a filter applying [SimplifyPoints] with the given
// tolerance.
func SimplifyFilter(tolerance float64) PointFilter {
	return func(points []Point) []Point {
		return SimplifyPoints(points, tolerance)
	}
}

// CenterlineOpts describes options for [Centerline].
type CenterlineOpts struct {
	// UnderSampling keeps every Nth point of both rails before pairing,
	// trading fidelity for point count. Values below 1 mean 1 (keep all).
	UnderSampling int
	// Filter, if non-nil, is applied to the raw centerline.
	Filter PointFilter
}

// Rails with arc lengths differing by more than this factor cannot have come
// from a midpoint-split two-rail ribbon.
const railLengthRatioMax = 4.0

// Centerline computes the midline of a ribbon-shaped waveguide outline.
//
// The ordered boundary is split at its midpoint index: the first half is the
// outer rail, kept in traversal order, and the second half is the inner rail,
// reversed so that outer[i] and inner[i] are cross-ribbon pairs. This relies
// on the vertex winding the upstream outline generator produces (one rail out,
// the other rail back); the split is verified by checking that the two rails
// have comparable arc length and a nonzero mean separation, and a
// *GeometryError is returned when the boundary cannot be a two-rail ribbon.
// The centerline point i is the midpoint of the pair i.
//
// When under-sampling leaves the rails with different point counts, the
// longer rail is truncated to the shorter.
func Centerline(boundary Polygon, opts CenterlineOpts) ([]Point, error) {
	if len(boundary) < 4 {
		return nil, geometryErrorf("boundary has %d points, need at least 4 for a two-rail ribbon", len(boundary))
	}
	step := opts.UnderSampling
	if step < 1 {
		step = 1
	}

	mid := len(boundary) / 2
	outer := stride(boundary[:mid], step)
	inner := stride(reversed(boundary[mid:]), step)
	if len(inner) < len(outer) {
		outer = outer[:len(inner)]
	} else {
		inner = inner[:len(outer)]
	}
	if len(outer) < 2 {
		return nil, geometryErrorf("under-sampling by %d leaves %d rail points, need at least 2", step, len(outer))
	}

	lo, li := PathLength(outer), PathLength(inner)
	if max(lo, li) > railLengthRatioMax*min(lo, li) {
		return nil, geometryErrorf("rail lengths %g and %g are too different for a midpoint-split ribbon", lo, li)
	}

	center := make([]Point, len(outer))
	var sep float64
	for i := range outer {
		center[i] = outer[i].Midpoint(inner[i])
		sep += outer[i].Distance(inner[i])
	}
	if sep/float64(len(outer)) < 1e-12 {
		return nil, geometryErrorf("ribbon has zero width")
	}

	if opts.Filter != nil {
		center = opts.Filter(center)
	}
	return center, nil
}

// stride returns every step-th point, starting at the first.
func stride(points []Point, step int) []Point {
	if step <= 1 {
		out := make([]Point, len(points))
		copy(out, points)
		return out
	}
	out := make([]Point, 0, (len(points)+step-1)/step)
	for i := 0; i < len(points); i += step {
		out = append(out, points[i])
	}
	return out
}

func reversed(points []Point) []Point {
	out := make([]Point, len(points))
	for i, pt := range points {
		out[len(points)-1-i] = pt
	}
	return out
}
