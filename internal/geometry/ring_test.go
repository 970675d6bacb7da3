package geometry

import (
	"errors"
	"strings"
	"testing"

	"github.com/paulmach/orb"
)

func TestBuildRingClosesOpenInput(t *testing.T) {
	points := []LatLng{
		{Lat: 52.0, Lng: 13.0},
		{Lat: 52.0, Lng: 13.1},
		{Lat: 52.1, Lng: 13.1},
	}

	ring, err := BuildRing(points)
	if err != nil {
		t.Fatalf("BuildRing returned error: %v", err)
	}

	if len(ring) != len(points)+1 {
		t.Errorf("expected %d entries after closure, got %d", len(points)+1, len(ring))
	}
	if ring[0] != ring[len(ring)-1] {
		t.Errorf("ring not closed: first %v != last %v", ring[0], ring[len(ring)-1])
	}
	// Coordinates come back in (lng, lat) order.
	if ring[0][0] != 13.0 || ring[0][1] != 52.0 {
		t.Errorf("expected (13, 52), got %v", ring[0])
	}
}

func TestBuildRingKeepsClosedInput(t *testing.T) {
	points := []LatLng{
		{Lat: 52.0, Lng: 13.0},
		{Lat: 52.0, Lng: 13.1},
		{Lat: 52.1, Lng: 13.1},
		{Lat: 52.0, Lng: 13.0},
	}

	ring, err := BuildRing(points)
	if err != nil {
		t.Fatalf("BuildRing returned error: %v", err)
	}
	if len(ring) != 4 {
		t.Errorf("already closed input should stay at 4 entries, got %d", len(ring))
	}
}

func TestCloseRingIdempotent(t *testing.T) {
	ring := orb.Ring{{13.0, 52.0}, {13.1, 52.0}, {13.1, 52.1}}

	closed := CloseRing(ring)
	if len(closed) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(closed))
	}

	again := CloseRing(closed)
	if len(again) != 4 {
		t.Errorf("CloseRing on a closed ring grew it to %d entries", len(again))
	}
}

func TestBuildRingCollectsAllViolations(t *testing.T) {
	// Two points, one with both coordinates out of range. Every violation
	// must show up in a single error.
	points := []LatLng{
		{Lat: 52.0, Lng: 13.0},
		{Lat: 95.0, Lng: 200.0},
	}

	_, err := BuildRing(points)
	if err == nil {
		t.Fatal("expected error for 2-point input")
	}

	var invalid *InvalidGeometryError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidGeometryError, got %T", err)
	}

	msg := err.Error()
	for _, want := range []string{"insufficient points", "latitude", "longitude"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q missing violation %q", msg, want)
		}
	}
	if len(invalid.Violations) < 3 {
		t.Errorf("expected at least 3 violations, got %d: %v", len(invalid.Violations), invalid.Violations)
	}
}

func TestValidateRingRejectsDuplicateConsecutivePoints(t *testing.T) {
	ring := orb.Ring{
		{13.0, 52.0},
		{13.1, 52.0},
		{13.1, 52.0},
		{13.1, 52.1},
		{13.0, 52.0},
	}

	err := ValidateRing(ring)
	if err == nil {
		t.Fatal("expected error for duplicate consecutive points")
	}
	if !strings.Contains(err.Error(), "duplicate consecutive point") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateRingAcceptsValidTriangle(t *testing.T) {
	ring := orb.Ring{
		{13.0, 52.0},
		{13.1, 52.0},
		{13.1, 52.1},
		{13.0, 52.0},
	}

	if err := ValidateRing(ring); err != nil {
		t.Errorf("valid ring rejected: %v", err)
	}
}
