package wgpath

import (
	"math"
	"testing"
)

func TestSmoothSavGolPreservesCount(t *testing.T) {
	for _, n := range []int{2, 3, 5, 10, 11, 50} {
		pts := linePoints(Pt(0, 0), Pt(10, 3), n)
		got := SmoothSavGol(pts, SavGolOpts{})
		if len(got) != n {
			t.Errorf("n=%d: got %d points, smoothing must preserve the count", n, len(got))
		}
	}
}

func TestSmoothSavGolLineInvariance(t *testing.T) {
	// A local polynomial of order ≥ 1 reproduces linear data exactly
	// wherever the window does not touch the replicated edges.
	pts := linePoints(Pt(0, 0), Pt(30, 10), 31)
	got := SmoothSavGol(pts, SavGolOpts{WindowLength: 11, PolyOrder: 3})
	for i := 5; i < len(got)-5; i++ {
		if !approxEqual(got[i].X, pts[i].X, 1e-9) || !approxEqual(got[i].Y, pts[i].Y, 1e-9) {
			t.Errorf("interior point %d moved from %v to %v on linear data", i, pts[i], got[i])
		}
	}
}

func TestSmoothSavGolDampsNoise(t *testing.T) {
	// A zigzag superimposed on a straight line; smoothing must shrink the
	// interior deviation from the line.
	n := 51
	pts := make([]Point, n)
	for i := range pts {
		jitter := 0.1
		if i%2 == 0 {
			jitter = -0.1
		}
		pts[i] = Pt(float64(i), jitter)
	}
	got := SmoothSavGol(pts, SavGolOpts{})

	var before, after float64
	for i := 5; i < n-5; i++ {
		before = math.Max(before, math.Abs(pts[i].Y))
		after = math.Max(after, math.Abs(got[i].Y))
	}
	if after >= before/2 {
		t.Errorf("interior deviation only went from %v to %v", before, after)
	}
}

func TestSmoothSavGolShortInput(t *testing.T) {
	// Shorter than the default window: the window shrinks, the count stays.
	pts := []Point{Pt(0, 0), Pt(1, 0.2), Pt(2, -0.2), Pt(3, 0.1), Pt(4, 0)}
	got := SmoothSavGol(pts, SavGolOpts{})
	if len(got) != len(pts) {
		t.Errorf("got %d points, expected %d", len(got), len(pts))
	}

	pair := []Point{Pt(0, 0), Pt(1, 1)}
	if got := SmoothSavGol(pair, SavGolOpts{}); len(got) != 2 {
		t.Errorf("got %d points for a 2-point input, expected 2", len(got))
	}
}

func TestSavGolWeights(t *testing.T) {
	// The weights of any valid window reproduce a constant: they sum to 1.
	for _, tc := range []struct{ window, order int }{
		{3, 1}, {5, 2}, {7, 3}, {11, 3}, {21, 4},
	} {
		var sum float64
		for _, w := range savGolWeights(tc.window, tc.order) {
			sum += w
		}
		if !approxEqual(sum, 1, 1e-9) {
			t.Errorf("window %d order %d: weights sum to %v, expected 1", tc.window, tc.order, sum)
		}
	}
}
