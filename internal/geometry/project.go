package geometry

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/project"
)

// ProjectedAreaM2 reprojects a geographic polygon to Web Mercator
// (EPSG:3857) and returns its planar area in square meters, rounded to two
// decimals (half away from zero). Web Mercator is the fixed projection for
// the whole deployment; its latitude-dependent distortion matches the
// upstream data this service was built against.
func ProjectedAreaM2(poly orb.Polygon) (float64, error) {
	if len(poly) == 0 || len(poly[0]) < 4 {
		return 0, &ProjectionError{Reason: "degenerate geometry: empty or open ring"}
	}
	if selfIntersects(poly[0]) {
		return 0, &ProjectionError{Reason: "geometry is self-intersecting"}
	}

	projected := project.Polygon(poly.Clone(), project.WGS84.ToMercator)
	area := math.Abs(planar.Area(projected))
	if area == 0 {
		return 0, &ProjectionError{Reason: "degenerate geometry: zero area"}
	}

	return roundTo(area, 2), nil
}

// Centroid returns the planar centroid of a geographic polygon as a lat/lng
// pair. Good enough as a lookup point for distance queries.
func Centroid(poly orb.Polygon) LatLng {
	point, _ := planar.CentroidArea(poly)
	return LatLng{Lat: point[1], Lng: point[0]}
}

// roundTo rounds half away from zero to the given number of decimals.
func roundTo(v float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Round(v*shift) / shift
}

// selfIntersects reports whether any two non-adjacent edges of a closed ring
// cross. Quadratic scan; best-effort, touching vertices are not flagged.
func selfIntersects(r orb.Ring) bool {
	n := len(r) - 1 // closed ring, last point repeats the first
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			// Skip adjacent edges, including the first/last pair which
			// share the closing vertex.
			if i == 0 && j == n-1 {
				continue
			}
			if segmentsCross(r[i], r[i+1], r[j], r[j+1]) {
				return true
			}
		}
	}
	return false
}

func segmentsCross(a, b, c, d orb.Point) bool {
	d1 := cross(c, d, a)
	d2 := cross(c, d, b)
	d3 := cross(a, b, c)
	d4 := cross(a, b, d)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func cross(a, b, p orb.Point) float64 {
	return (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
}
