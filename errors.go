package wgpath

import "fmt"

// PreconditionError reports an input that cannot be processed at all, such as
// a component exposing no ports and no override positions. Retrying with the
// same input cannot succeed.
type PreconditionError struct {
	// Component is the name of the offending component, if known.
	Component string
	Reason    string
}

func (e *PreconditionError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("wgpath: component %q %s", e.Component, e.Reason)
	}
	return "wgpath: component " + e.Reason
}

// GeometryError reports degenerate input geometry: a boundary with too few
// points, a zero-width ribbon, or rails that cannot be paired.
type GeometryError struct {
	Reason string
}

func (e *GeometryError) Error() string {
	return "wgpath: " + e.Reason
}

func geometryErrorf(format string, args ...any) *GeometryError {
	return &GeometryError{Reason: fmt.Sprintf(format, args...)}
}
