package geometry

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// EncodePolygon serializes a polygon as a GeoJSON geometry string for
// storage.
func EncodePolygon(poly orb.Polygon) (string, error) {
	raw, err := geojson.NewGeometry(poly).MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DecodePolygon parses a stored GeoJSON geometry. MultiPolygons collapse to
// their first polygon; parcels model a single exterior ring.
func DecodePolygon(data string) (orb.Polygon, error) {
	g, err := geojson.UnmarshalGeometry([]byte(data))
	if err != nil {
		return nil, err
	}

	switch geom := g.Geometry().(type) {
	case orb.Polygon:
		return geom, nil
	case orb.MultiPolygon:
		if len(geom) == 0 {
			return nil, fmt.Errorf("empty multipolygon")
		}
		return geom[0], nil
	default:
		return nil, fmt.Errorf("unsupported geometry type %q", g.Type)
	}
}
