package wgpath

import "gonum.org/v1/gonum/mat"

// SavGolOpts describes options for [SmoothSavGol]. The zero value selects the
// defaults: a window of 11 samples and a cubic local polynomial.
type SavGolOpts struct {
	// WindowLength is the odd number of samples in the local fit window;
	// even values are bumped to the next odd number. Values below 1 mean 11.
	WindowLength int
	// PolyOrder is the degree of the local polynomial and must stay below
	// WindowLength. Values below 1 mean 3.
	PolyOrder int
}

// SmoothSavGol applies Savitzky-Golay smoothing to each coordinate dimension
// independently: every output point is the value at the window center of a
// least-squares local polynomial over its neighborhood. Output point count
// equals input point count.
//
// When the input is shorter than the window, the window shrinks to the
// largest odd number ≤ the input length (floor 3) and the polynomial order to
// at most window−2. The boundary replicates edge samples rather than
// extrapolating, so path endpoints are not dragged by fictitious data.
//
// Sequences with fewer than two points are returned unchanged.
func SmoothSavGol(points []Point, opts SavGolOpts) []Point {
	if len(points) < 2 {
		out := make([]Point, len(points))
		copy(out, points)
		return out
	}

	window := opts.WindowLength
	if window < 1 {
		window = 11
	}
	if window%2 == 0 {
		window++
	}
	if window > len(points) {
		window = len(points)
		if window%2 == 0 {
			window--
		}
		if window < 3 {
			window = 3
		}
	}
	order := opts.PolyOrder
	if order < 1 {
		order = 3
	}
	if order > window-2 {
		order = window - 2
	}

	weights := savGolWeights(window, order)
	half := window / 2
	out := make([]Point, len(points))
	for i := range points {
		var x, y float64
		for j := -half; j <= half; j++ {
			k := min(max(i+j, 0), len(points)-1) // "nearest" edge padding
			w := weights[j+half]
			x += w * points[k].X
			y += w * points[k].Y
		}
		out[i] = Pt(x, y)
	}
	return out
}

// savGolWeights returns the convolution weights evaluating the local
// least-squares polynomial at the window center: the center row of the hat
// matrix A(AᵀA)⁻¹Aᵀ for the Vandermonde design A over positions
// −half…half. Because the center position is 0, that row reduces to A·z with
// (AᵀA)z = e₀.
func savGolWeights(window, order int) []float64 {
	a := mat.NewDense(window, order+1, nil)
	half := window / 2
	for j := 0; j < window; j++ {
		t := float64(j - half)
		v := 1.0
		for k := 0; k <= order; k++ {
			a.Set(j, k, v)
			v *= t
		}
	}

	var ata mat.Dense
	ata.Mul(a.T(), a)
	e0 := mat.NewVecDense(order+1, nil)
	e0.SetVec(0, 1)
	var z mat.VecDense
	if err := z.SolveVec(&ata, e0); err != nil {
		// The normal matrix for the small windows used here is always
		// invertible when order < window.
		panic("wgpath: singular Savitzky-Golay design: " + err.Error())
	}
	var w mat.VecDense
	w.MulVec(a, &z)

	out := make([]float64, window)
	for j := range out {
		out[j] = w.AtVec(j)
	}
	return out
}
