package geometry

import "strings"

// InvalidGeometryError carries every violation found in a coordinate list so
// callers get a complete diagnostic instead of the first failure.
type InvalidGeometryError struct {
	Violations []string
}

func (e *InvalidGeometryError) Error() string {
	return "invalid geometry: " + strings.Join(e.Violations, "; ")
}

// ProjectionError indicates geometry that cannot be measured after
// projection (zero area or self-intersecting).
type ProjectionError struct {
	Reason string
}

func (e *ProjectionError) Error() string {
	return "projection failed: " + e.Reason
}
