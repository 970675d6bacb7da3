package geometry

import (
	"fmt"

	"github.com/paulmach/orb"
)

// LatLng is a coordinate pair in decimal degrees, geographic CRS (EPSG:4326).
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BuildRing converts an ordered list of lat/lng points into a closed ring in
// (lng, lat) order. The ring is closed by appending a copy of the first point
// when the input is open; an already-closed input stays untouched.
func BuildRing(points []LatLng) (orb.Ring, error) {
	ring := make(orb.Ring, 0, len(points)+1)
	for _, p := range points {
		ring = append(ring, orb.Point{p.Lng, p.Lat})
	}
	ring = CloseRing(ring)

	if err := ValidateRing(ring); err != nil {
		return nil, err
	}
	return ring, nil
}

// CloseRing appends the first point when first != last. Idempotent.
func CloseRing(r orb.Ring) orb.Ring {
	if len(r) == 0 {
		return r
	}
	if r[0] != r[len(r)-1] {
		r = append(r, r[0])
	}
	return r
}

// ValidateRing checks a closed ring: at least 4 entries (3 distinct plus the
// closing repeat), no consecutive duplicate points beyond the closure pair,
// and coordinates within geographic bounds. All violations are collected into
// a single InvalidGeometryError.
func ValidateRing(r orb.Ring) error {
	var violations []string

	if len(r) < 4 {
		violations = append(violations,
			fmt.Sprintf("insufficient points: need at least 3 distinct, got %d entries after closure", len(r)))
	}

	for i := 1; i < len(r); i++ {
		if r[i] == r[i-1] {
			violations = append(violations,
				fmt.Sprintf("duplicate consecutive point at index %d", i))
		}
	}

	for i, p := range r {
		lng, lat := p[0], p[1]
		if lat < -90 || lat > 90 {
			violations = append(violations,
				fmt.Sprintf("latitude %g out of range [-90,90] at index %d", lat, i))
		}
		if lng < -180 || lng > 180 {
			violations = append(violations,
				fmt.Sprintf("longitude %g out of range [-180,180] at index %d", lng, i))
		}
	}

	if len(violations) > 0 {
		return &InvalidGeometryError{Violations: violations}
	}
	return nil
}
