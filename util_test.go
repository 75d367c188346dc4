package wgpath

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approxEqual(x, y, tol float64) bool {
	return math.Abs(x-y) < tol
}

// straightRibbon returns the boundary of a straight ribbon of the given
// length and width along the x axis, centered on y=0, with n points per rail:
// the outer rail in traversal order followed by the inner rail walked back.
func straightRibbon(length, width float64, n int) Polygon {
	boundary := make(Polygon, 0, 2*n)
	for i := 0; i < n; i++ {
		x := length * float64(i) / float64(n-1)
		boundary = append(boundary, Pt(x, width/2))
	}
	for i := n - 1; i >= 0; i-- {
		x := length * float64(i) / float64(n-1)
		boundary = append(boundary, Pt(x, -width/2))
	}
	return boundary
}

// arcRibbon returns the boundary of a quarter-circle ribbon bend of the given
// centerline radius and width, centered on the origin, sweeping from angle 0
// to π/2 with n points per rail.
func arcRibbon(radius, width float64, n int) Polygon {
	boundary := make(Polygon, 0, 2*n)
	for i := 0; i < n; i++ {
		th := math.Pi / 2 * float64(i) / float64(n-1)
		y, x := math.Sincos(th)
		boundary = append(boundary, Pt((radius+width/2)*x, (radius+width/2)*y))
	}
	for i := n - 1; i >= 0; i-- {
		th := math.Pi / 2 * float64(i) / float64(n-1)
		y, x := math.Sincos(th)
		boundary = append(boundary, Pt((radius-width/2)*x, (radius-width/2)*y))
	}
	return boundary
}

// arcPoints returns n points on a circular arc of the given radius around the
// origin, from angle 0 to sweep.
func arcPoints(radius, sweep float64, n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		th := sweep * float64(i) / float64(n-1)
		y, x := math.Sincos(th)
		pts[i] = Pt(radius*x, radius*y)
	}
	return pts
}

// linePoints returns n evenly spaced points from a to b.
func linePoints(a, b Point, n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = a.Lerp(b, float64(i)/float64(n-1))
	}
	return pts
}
