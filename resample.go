package wgpath

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// Resample redistributes a point sequence at equal arc-length spacing.
//
// The cumulative euclidean distance from the first point is the curve
// parameter. Each coordinate is fitted independently with a shape-preserving
// monotone cubic (Fritsch-Butland), which cannot overshoot or ring between
// the input samples, and evaluated at round(max(len(points), 5)·nSamplesCoeff)
// equally spaced arc-length positions spanning [0, total] inclusive. The
// first and last output points equal the first and last input points.
// Coefficients below 1 downsample, above 1 upsample; 1 (also the meaning of
// 0) preserves the point count up to the 5-point floor.
//
// Sequences with fewer than two points are returned unchanged. Consecutive
// duplicate points are collapsed before fitting (the interpolant needs
// strictly increasing arc lengths); a sequence whose total length is zero
// fails with a *GeometryError. The function panics if nSamplesCoeff is
// negative.
func Resample(points []Point, nSamplesCoeff float64) ([]Point, error) {
	if nSamplesCoeff < 0 {
		panic("wgpath: sample coefficient must not be negative")
	}
	if nSamplesCoeff == 0 {
		nSamplesCoeff = 1
	}
	if len(points) < 2 {
		out := make([]Point, len(points))
		copy(out, points)
		return out, nil
	}

	// Arc-length parameter, with zero-length segments collapsed.
	ss := make([]float64, 0, len(points))
	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	ss = append(ss, 0)
	xs = append(xs, points[0].X)
	ys = append(ys, points[0].Y)
	for i := 1; i < len(points); i++ {
		d := points[i-1].Distance(points[i])
		if d == 0 {
			continue
		}
		ss = append(ss, ss[len(ss)-1]+d)
		xs = append(xs, points[i].X)
		ys = append(ys, points[i].Y)
	}
	if len(ss) < 2 {
		return nil, geometryErrorf("cannot resample a zero-length path")
	}
	total := ss[len(ss)-1]

	var fx, fy interp.FritschButland
	if err := fx.Fit(ss, xs); err != nil {
		return nil, err
	}
	if err := fy.Fit(ss, ys); err != nil {
		return nil, err
	}

	n := int(math.Round(float64(max(len(points), 5)) * nSamplesCoeff))
	if n < 2 {
		n = 2
	}
	samples := make([]float64, n)
	floats.Span(samples, 0, total)

	out := make([]Point, n)
	for i, s := range samples {
		out[i] = Pt(fx.Predict(s), fy.Predict(s))
	}
	out[0] = points[0]
	out[n-1] = points[len(points)-1]
	return out, nil
}
