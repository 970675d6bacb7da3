package geometry

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func approxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// squareAt builds a closed axis-aligned square of the given side length in
// degrees, with its lower-left corner at (lng, lat).
func squareAt(lng, lat, side float64) orb.Polygon {
	return orb.Polygon{orb.Ring{
		{lng, lat},
		{lng + side, lat},
		{lng + side, lat + side},
		{lng, lat + side},
		{lng, lat},
	}}
}

func TestProjectedAreaM2EquatorSquare(t *testing.T) {
	// At the equator Web Mercator preserves scale, so a degree square maps
	// to (circumference/360 * side)² square meters.
	side := 0.001
	poly := squareAt(13.0, 0.0, side)

	area, err := ProjectedAreaM2(poly)
	if err != nil {
		t.Fatalf("ProjectedAreaM2 returned error: %v", err)
	}

	metersPerDegree := 2 * math.Pi * 6378137 / 360
	expected := math.Pow(side*metersPerDegree, 2)
	if !approxEqual(area, expected, expected*0.001) {
		t.Errorf("expected area ~%.2f, got %.2f", expected, area)
	}
}

func TestProjectedAreaM2ScalesQuadratically(t *testing.T) {
	small, err := ProjectedAreaM2(squareAt(13.0, 52.0, 0.001))
	if err != nil {
		t.Fatalf("small square: %v", err)
	}
	large, err := ProjectedAreaM2(squareAt(13.0, 52.0, 0.002))
	if err != nil {
		t.Fatalf("large square: %v", err)
	}

	ratio := large / small
	if !approxEqual(ratio, 4.0, 0.01) {
		t.Errorf("doubling the side should quadruple the area, ratio = %.4f", ratio)
	}
}

func TestProjectedAreaM2RoundsToTwoDecimals(t *testing.T) {
	area, err := ProjectedAreaM2(squareAt(13.0, 52.0, 0.0013))
	if err != nil {
		t.Fatalf("ProjectedAreaM2 returned error: %v", err)
	}

	scaled := area * 100
	if !approxEqual(scaled, math.Round(scaled), 1e-6) {
		t.Errorf("area %v not rounded to two decimals", area)
	}
}

func TestProjectedAreaM2RejectsDegenerate(t *testing.T) {
	// All points collinear: zero area after projection.
	line := orb.Polygon{orb.Ring{
		{13.0, 52.0},
		{13.1, 52.0},
		{13.2, 52.0},
		{13.0, 52.0},
	}}

	_, err := ProjectedAreaM2(line)
	if err == nil {
		t.Fatal("expected error for zero-area geometry")
	}
	if _, ok := err.(*ProjectionError); !ok {
		t.Errorf("expected ProjectionError, got %T", err)
	}
}

func TestProjectedAreaM2RejectsSelfIntersection(t *testing.T) {
	// Bowtie: edges cross in the middle.
	bowtie := orb.Polygon{orb.Ring{
		{13.0, 52.0},
		{13.1, 52.1},
		{13.1, 52.0},
		{13.0, 52.1},
		{13.0, 52.0},
	}}

	_, err := ProjectedAreaM2(bowtie)
	if err == nil {
		t.Fatal("expected error for self-intersecting geometry")
	}
	if _, ok := err.(*ProjectionError); !ok {
		t.Errorf("expected ProjectionError, got %T", err)
	}
}

func TestProjectedAreaM2RejectsOpenRing(t *testing.T) {
	open := orb.Polygon{orb.Ring{
		{13.0, 52.0},
		{13.1, 52.0},
		{13.1, 52.1},
	}}

	if _, err := ProjectedAreaM2(open); err == nil {
		t.Error("expected error for open ring")
	}
}

func TestCentroidOfSquare(t *testing.T) {
	centroid := Centroid(squareAt(13.0, 52.0, 0.2))

	if !approxEqual(centroid.Lng, 13.1, 1e-9) || !approxEqual(centroid.Lat, 52.1, 1e-9) {
		t.Errorf("expected centroid (52.1, 13.1), got (%v, %v)", centroid.Lat, centroid.Lng)
	}
}
