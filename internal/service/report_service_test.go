package service

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"

	"parcel-service/internal/client"
	"parcel-service/internal/energy"
	"parcel-service/internal/geometry"
	"parcel-service/internal/model"
)

func approxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func referenceMetrics() energy.Metrics {
	return energy.Estimate(energy.Input{
		TotalAreaM2:     1000,
		SolarIrradiance: 4.5,
		WindSpeed:       7.0,
		GridDistance:    1000,
	})
}

func TestAssembleReportDerivedAreas(t *testing.T) {
	metrics := referenceMetrics()
	report := assembleReport(metrics, 1000, defaultRoadDistances)

	if !approxEqual(report.AreaM2, 1000, 1e-9) {
		t.Errorf("area = %v, want 1000", report.AreaM2)
	}
	if !approxEqual(report.UsableAreaM2, 600, 1e-9) {
		t.Errorf("usable area = %v, want solar+wind = 600", report.UsableAreaM2)
	}
	if !approxEqual(report.EegAreaM2, 400, 1e-9) {
		t.Errorf("eeg area = %v, want 0.8 * solar = 400", report.EegAreaM2)
	}
	if !approxEqual(report.BaugbAreaM2, 50, 1e-9) {
		t.Errorf("baugb area = %v, want 0.5 * wind = 50", report.BaugbAreaM2)
	}
	if !report.IsAreaInPrivilegeArea {
		t.Error("privilege area flag should default to true")
	}
}

func TestAssembleReportDistances(t *testing.T) {
	report := assembleReport(referenceMetrics(), 1000, defaultRoadDistances)

	for name, got := range map[string]int{
		"midhigh":       report.EnergyDistanceMidhighM,
		"highhigh":      report.EnergyDistanceHighhighM,
		"tower highest": report.EnergyDistanceTowerHighestM,
		"tower high":    report.EnergyDistanceTowerHighM,
		"tower mid":     report.EnergyDistanceTowerMidM,
	} {
		if got != 1000 {
			t.Errorf("energy distance %s = %d, want grid distance 1000", name, got)
		}
	}

	if report.DistanceMotorwayRampM != 1000 || report.DistanceMotorwayM != 2000 ||
		report.DistanceTrunkprimaryM != 3000 || report.DistanceSecondaryM != 1500 ||
		report.DistanceTraintracksM != 2500 || report.DistanceSettlementM != 500 {
		t.Errorf("unexpected road distances: %+v", report)
	}
}

func TestAssembleReportUsesMeasuredDistances(t *testing.T) {
	measured := client.RoadDistances{
		MotorwayRampM: 120,
		MotorwayM:     340,
		TrunkprimaryM: 80,
		SecondaryM:    45,
		TraintracksM:  900,
		SettlementM:   60,
	}

	report := assembleReport(referenceMetrics(), 1000, measured)
	if report.DistanceMotorwayRampM != 120 || report.DistanceSettlementM != 60 {
		t.Errorf("measured distances not carried into report: %+v", report)
	}
}

func TestAssembleReportDataSnapshot(t *testing.T) {
	metrics := referenceMetrics()
	report := assembleReport(metrics, 1000, defaultRoadDistances)

	if report.VisibleFor != model.ReportVisibilityUser {
		t.Errorf("visibility = %v, want %v", report.VisibleFor, model.ReportVisibilityUser)
	}
	if report.Data.Version != model.ReportDataVersion {
		t.Errorf("data version = %d, want %d", report.Data.Version, model.ReportDataVersion)
	}
	if got := report.Data.Metrics["solar_energy_potential_kwh_per_year"]; got != metrics.SolarPotentialKWhYear {
		t.Errorf("snapshot solar potential = %v, want %v", got, metrics.SolarPotentialKWhYear)
	}
	if got := report.Data.Metrics["total_area_m2"]; got != 1000 {
		t.Errorf("snapshot total area = %v, want 1000", got)
	}
}

func TestVisibleScopes(t *testing.T) {
	cases := []struct {
		role model.Role
		want []model.ReportVisibility
	}{
		{model.RoleAdmin, nil},
		{model.RoleSupport, nil},
		{model.RoleLandowner, []model.ReportVisibility{model.ReportVisibilityUser, model.ReportVisibilityPublic}},
		{model.RoleDeveloper, []model.ReportVisibility{model.ReportVisibilityPublic}},
	}

	for _, tc := range cases {
		got := visibleScopes(model.Principal{Role: tc.role})
		if len(got) != len(tc.want) {
			t.Errorf("role %s: scopes = %v, want %v", tc.role, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("role %s: scopes = %v, want %v", tc.role, got, tc.want)
			}
		}
	}
}

func TestCanSeeReport(t *testing.T) {
	cases := []struct {
		role       model.Role
		visibility model.ReportVisibility
		want       bool
	}{
		{model.RoleAdmin, model.ReportVisibilityAdmin, true},
		{model.RoleSupport, model.ReportVisibilityAdmin, true},
		{model.RoleLandowner, model.ReportVisibilityAdmin, false},
		{model.RoleLandowner, model.ReportVisibilityUser, true},
		{model.RoleLandowner, model.ReportVisibilityPublic, true},
		{model.RoleDeveloper, model.ReportVisibilityUser, false},
		{model.RoleDeveloper, model.ReportVisibilityPublic, true},
	}

	for _, tc := range cases {
		got := canSeeReport(model.Principal{Role: tc.role}, tc.visibility)
		if got != tc.want {
			t.Errorf("role %s, visibility %s: canSeeReport = %v, want %v", tc.role, tc.visibility, got, tc.want)
		}
	}
}

func TestFirstGeometrySkipsEmptyPolygons(t *testing.T) {
	poly := orb.Polygon{orb.Ring{
		{13.0, 52.0},
		{13.1, 52.0},
		{13.1, 52.1},
		{13.0, 52.0},
	}}
	encoded, err := geometry.EncodePolygon(poly)
	if err != nil {
		t.Fatalf("EncodePolygon: %v", err)
	}

	parcels := []model.Parcel{
		{Polygon: ""},
		{Polygon: encoded},
	}

	got, err := firstGeometry(parcels)
	if err != nil {
		t.Fatalf("firstGeometry: %v", err)
	}
	if len(got) != 1 || len(got[0]) != 4 {
		t.Errorf("unexpected polygon: %v", got)
	}
}

func TestFirstGeometryNoUsableParcel(t *testing.T) {
	_, err := firstGeometry([]model.Parcel{{Polygon: ""}, {Polygon: ""}})
	if !errors.Is(err, ErrNoGeometry) {
		t.Errorf("expected ErrNoGeometry, got %v", err)
	}
}
