package wgpath

import "math"

// Below this |K| a sample counts as straight and its radius saturates to ±Inf
// instead of dividing by zero. Never surfaced as an error.
const curvatureEps = 1e-12

// CurvatureProfile is the discrete curvature of a path at its interior
// samples, as parallel slices indexed together. The two endpoints are
// omitted: they lack the two-sided neighborhood the estimate needs.
type CurvatureProfile struct {
	// S is the arc length from the path start at each interior sample.
	S []float64
	// K is the signed discrete curvature: the turning angle between the
	// segments meeting at the sample, divided by their mean length.
	// Positive K turns counter-clockwise.
	K []float64
	// R is the signed radius of curvature 1/K, saturated to ±Inf where the
	// path is locally straight.
	R []float64
}

// DiscreteCurvature estimates signed curvature along an ordered point
// sequence from the turning rate of consecutive tangent vectors with respect
// to arc length. Consecutive duplicate points are collapsed first. Sequences
// with fewer than three distinct points have no interior samples and yield an
// empty profile.
func DiscreteCurvature(points []Point) CurvatureProfile {
	points = dedupePoints(points)
	if len(points) < 3 {
		return CurvatureProfile{}
	}

	cum := CumulativeLengths(points)
	n := len(points) - 2
	prof := CurvatureProfile{
		S: make([]float64, n),
		K: make([]float64, n),
		R: make([]float64, n),
	}
	for i := 1; i < len(points)-1; i++ {
		t0 := points[i].Sub(points[i-1])
		t1 := points[i+1].Sub(points[i])
		dtheta := math.Atan2(t0.Cross(t1), t0.Dot(t1))
		ds := 0.5 * (t0.Hypot() + t1.Hypot())
		k := dtheta / ds

		prof.S[i-1] = cum[i]
		prof.K[i-1] = k
		prof.R[i-1] = radiusOf(k)
	}
	return prof
}

// radiusOf inverts a curvature, saturating near-zero values to a signed
// infinity.
func radiusOf(k float64) float64 {
	if math.Abs(k) < curvatureEps {
		return math.Inf(sign(k))
	}
	return 1 / k
}

func sign(x float64) int {
	if x < 0 {
		return -1
	}
	return 1
}

// Curvature returns the path's discrete curvature profile. See
// [DiscreteCurvature].
func (p *Path) Curvature() CurvatureProfile {
	return DiscreteCurvature(p.Points)
}

// MinBendRadius returns the smallest absolute radius of curvature over the
// path's interior samples: the critical manufacturability constraint. A path
// with no interior samples, or one that is straight everywhere, has an
// unbounded minimum radius, +Inf.
func (p *Path) MinBendRadius() float64 {
	minR := math.Inf(1)
	for _, r := range p.Curvature().R {
		if abs := math.Abs(r); abs < minR {
			minR = abs
		}
	}
	return minR
}

// ClampRadii returns a copy of rs with every radius whose magnitude exceeds
// rmax clamped to ±rmax. This is for display only (near-straight samples
// have radii of enormous magnitude that make plots unreadable) and must
// never feed back into [Path.MinBendRadius], which always sees the unclamped
// values.
func ClampRadii(rs []float64, rmax float64) []float64 {
	out := make([]float64, len(rs))
	for i, r := range rs {
		switch {
		case r > rmax:
			out[i] = rmax
		case r < -rmax:
			out[i] = -rmax
		default:
			out[i] = r
		}
	}
	return out
}

// dedupePoints collapses runs of identical consecutive points.
func dedupePoints(points []Point) []Point {
	if len(points) < 2 {
		return points
	}
	out := make([]Point, 0, len(points))
	out = append(out, points[0])
	for _, pt := range points[1:] {
		if pt != out[len(out)-1] {
			out = append(out, pt)
		}
	}
	return out
}
