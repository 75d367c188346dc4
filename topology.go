package wgpath

import (
	"fmt"
	"math"
)

// ExtractOpts describes options for [ExtractPaths].
type ExtractOpts struct {
	// Layer selects the waveguide layer whose polygons are extracted.
	Layer Layer
	// PortPositions, when non-empty, substitutes for the component's ports:
	// ports named "p0", "p1", … are synthesized at these positions in input
	// order.
	PortPositions []Point
	// UnderSampling and Filter are forwarded to [Centerline].
	UnderSampling int
	Filter        PointFilter
}

// ExtractPaths extracts one centerline path per polygon on the selected layer
// and resolves which pair of ports each path belongs to.
//
// Each centerline's two endpoints are matched to the nearest ports by
// euclidean distance and snapped exactly onto the matched port positions; the
// path is stored under the sorted pair key (see [PairKey]). When a second
// ribbon resolves to an already-claimed pair (two runs travelling in
// parallel close enough to couple, as in a directional coupler), the later
// path goes into the secondary (evanescent) collection under the same key.
// The secondary collection is nil for components with no such parallel runs
// and holds at most one coupled run per pair: a third ribbon resolving to the
// same pair fails with a *GeometryError.
//
// A component exposing no ports and no override positions fails with a
// *PreconditionError. A polygon whose outline cannot be a two-rail ribbon
// fails with a *GeometryError; callers batching several components may treat
// either as fatal for this component only.
func ExtractPaths(c *Component, opts ExtractOpts) (PathCollection, PathCollection, error) {
	ports := c.Ports
	if len(opts.PortPositions) > 0 {
		ports = make([]Port, len(opts.PortPositions))
		for i, pos := range opts.PortPositions {
			ports[i] = Port{Name: fmt.Sprintf("p%d", i), Position: pos}
		}
	}
	if len(ports) == 0 {
		return nil, nil, &PreconditionError{Component: c.Name, Reason: "does not have ports"}
	}

	clOpts := CenterlineOpts{UnderSampling: opts.UnderSampling, Filter: opts.Filter}
	primary := make(PathCollection)
	var secondary PathCollection
	for _, poly := range c.PolygonsOn(opts.Layer) {
		center, err := Centerline(poly, clOpts)
		if err != nil {
			return nil, nil, err
		}
		a := nearestPort(ports, center[0], -1)
		b := nearestPort(ports, center[len(center)-1], -1)
		if a == b && len(ports) > 1 {
			b = nearestPort(ports, center[len(center)-1], a)
		}
		path := NewPath(center, ports[a], ports[b])
		if _, taken := primary[path.Key()]; taken {
			if secondary == nil {
				secondary = make(PathCollection)
			}
			if _, taken := secondary[path.Key()]; taken {
				return nil, nil, geometryErrorf("more than two ribbons resolve to port pair %q", path.Key())
			}
			secondary[path.Key()] = path
		} else {
			primary[path.Key()] = path
		}
	}
	return primary, secondary, nil
}

// nearestPort returns the index of the port closest to pt, skipping the
// excluded index (pass -1 to consider all ports). Ties go to the lowest
// index.
func nearestPort(ports []Port, pt Point, exclude int) int {
	best := -1
	bestDist := math.Inf(1)
	for i, port := range ports {
		if i == exclude {
			continue
		}
		if d := pt.DistanceSquared(port.Position); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
