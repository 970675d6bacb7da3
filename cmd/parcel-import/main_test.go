package main

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func sampleFeature() *geojson.Feature {
	feature := geojson.NewFeature(orb.Polygon{orb.Ring{
		{13.0, 52.0},
		{13.001, 52.0},
		{13.001, 52.001},
		{13.0, 52.0},
	}})
	feature.Properties = geojson.Properties{
		"id":        "DEBB123456",
		"land":      "Brandenburg",
		"kreis":     "Potsdam-Mittelmark",
		"gemarkung": "Werder",
		"gemeinde":  "Werder (Havel)",
		"flur":      "007",
		"flstnrzae": "123",
		"flstnrnen": "4a",
	}
	return feature
}

func TestFeatureToParcel(t *testing.T) {
	parcel, err := featureToParcel(sampleFeature())
	if err != nil {
		t.Fatalf("featureToParcel returned error: %v", err)
	}

	if parcel.AlkisFeatureID == nil || *parcel.AlkisFeatureID != "DEBB123456" {
		t.Errorf("feature id not carried over: %v", parcel.AlkisFeatureID)
	}
	if parcel.StateName == nil || *parcel.StateName != "Brandenburg" {
		t.Errorf("state name not carried over: %v", parcel.StateName)
	}
	if parcel.CadastralParcel == nil || *parcel.CadastralParcel != "123/4A" {
		t.Errorf("cadastral parcel not normalized: %v", parcel.CadastralParcel)
	}
	if parcel.AreaSquareMeters <= 0 {
		t.Errorf("area = %v, want > 0", parcel.AreaSquareMeters)
	}
	if parcel.Polygon == "" {
		t.Error("polygon not encoded")
	}
}

func TestFeatureToParcelMissingID(t *testing.T) {
	feature := sampleFeature()
	delete(feature.Properties, "id")

	if _, err := featureToParcel(feature); err == nil {
		t.Error("expected error for feature without id")
	}
}

func TestFeatureToParcelFallsBackToFeatureID(t *testing.T) {
	feature := sampleFeature()
	delete(feature.Properties, "id")
	feature.ID = "DEBB654321"

	parcel, err := featureToParcel(feature)
	if err != nil {
		t.Fatalf("featureToParcel returned error: %v", err)
	}
	if parcel.AlkisFeatureID == nil || *parcel.AlkisFeatureID != "DEBB654321" {
		t.Errorf("top-level feature id not used: %v", parcel.AlkisFeatureID)
	}
}

func TestFeatureToParcelRejectsUnsupportedGeometry(t *testing.T) {
	feature := geojson.NewFeature(orb.Point{13.0, 52.0})
	feature.Properties = geojson.Properties{"id": "DEBB000001"}

	if _, err := featureToParcel(feature); err == nil {
		t.Error("expected error for point geometry")
	}
}
