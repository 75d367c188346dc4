package wgpath

// Layer identifies a layout layer by its (number, datatype) pair. The engine
// treats it as an opaque key into a component's shape map.
type Layer struct {
	Number   int32
	Datatype int32
}

// Polygon is the closed outline of one shape on one layer, as a flat ordered
// vertex list. It is owned by the caller and read-only to this package.
type Polygon []Point

// Port is a named anchor on a component: the fixed boundary condition a
// computed path must reproduce exactly at its two ends. Orientation is in
// degrees, width in the same unit as positions.
type Port struct {
	Name        string
	Position    Point
	Orientation float64
	Width       float64
}

// Component is the slice of a layout cell this engine consumes: its ports and
// its per-layer polygon shapes.
type Component struct {
	Name   string
	Ports  []Port
	Shapes map[Layer][]Polygon
}

// PolygonsOn returns the component's polygons on the given layer, or nil.
func (c *Component) PolygonsOn(l Layer) []Polygon {
	if c.Shapes == nil {
		return nil
	}
	return c.Shapes[l]
}

// PairKey returns the canonical collection key for a pair of port names: the
// names sorted and joined with ";". The pair is unordered, so
// PairKey(a, b) == PairKey(b, a).
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + ";" + b
}

// Path is a traversal-ordered point sequence between two ports. Its first and
// last points always equal the two port positions it was built for; the
// transforms that replace the point sequence ([Path.Resample], [Path.Smooth])
// re-pin the endpoints.
type Path struct {
	Points []Point
	PortA  Port
	PortB  Port
}

// NewPath returns a path from a to b through the given points, with the
// endpoints snapped exactly onto the port positions.
func NewPath(points []Point, a, b Port) *Path {
	p := &Path{Points: points, PortA: a, PortB: b}
	p.pin()
	return p
}

// Key returns the path's collection key, PairKey of its two port names.
func (p *Path) Key() string {
	return PairKey(p.PortA.Name, p.PortB.Name)
}

// pin snaps the first and last points onto the port positions. PortA
// corresponds to the start of the traversal, PortB to the end.
func (p *Path) pin() {
	if len(p.Points) == 0 {
		return
	}
	p.Points[0] = p.PortA.Position
	p.Points[len(p.Points)-1] = p.PortB.Position
}

// ArcLengths returns the cumulative euclidean distance from the first point
// to every point; element 0 is 0 and the last element is the total length.
func (p *Path) ArcLengths() []float64 {
	return CumulativeLengths(p.Points)
}

// Length returns the total arc length of the path.
func (p *Path) Length() float64 {
	return PathLength(p.Points)
}

// Resample replaces the point sequence with an arc-length resampled one (see
// [Resample]) and re-pins the endpoints.
func (p *Path) Resample(nSamplesCoeff float64) error {
	pts, err := Resample(p.Points, nSamplesCoeff)
	if err != nil {
		return err
	}
	p.Points = pts
	p.pin()
	return nil
}

// Smooth replaces the point sequence with a Savitzky-Golay smoothed one (see
// [SmoothSavGol]) and re-pins the endpoints.
func (p *Path) Smooth(opts SavGolOpts) {
	p.Points = SmoothSavGol(p.Points, opts)
	p.pin()
}

// PathCollection maps sorted port-pair keys (see [PairKey]) to paths.
type PathCollection map[string]*Path

// CumulativeLengths returns the running arc length along a point sequence.
// The result has the same length as the input; it is nil for empty input.
func CumulativeLengths(points []Point) []float64 {
	if len(points) == 0 {
		return nil
	}
	cum := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		cum[i] = cum[i-1] + points[i-1].Distance(points[i])
	}
	return cum
}

// PathLength returns the total arc length of a point sequence.
func PathLength(points []Point) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += points[i-1].Distance(points[i])
	}
	return total
}
