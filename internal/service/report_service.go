package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"parcel-service/internal/client"
	"parcel-service/internal/energy"
	"parcel-service/internal/geometry"
	"parcel-service/internal/model"
	"parcel-service/internal/repository"
)

// Request defaults for ambient parameters.
const (
	DefaultSolarIrradiance = 4.5  // kWh/m²/day
	DefaultWindSpeed       = 7.0  // m/s
	DefaultGridDistance    = 1000 // meters
)

// Policy defaults used when no real infrastructure data is available.
// TODO: replace with measured distances once the geodata service covers all
// deployment regions.
var defaultRoadDistances = client.RoadDistances{
	MotorwayRampM: 1000,
	MotorwayM:     2000,
	TrunkprimaryM: 3000,
	SecondaryM:    1500,
	TraintracksM:  2500,
	SettlementM:   500,
}

// Policy multipliers for regulation-relevant sub-areas.
const (
	eegAreaFactor   = 0.8
	baugbAreaFactor = 0.5
)

type ReportService struct {
	reportRepo *repository.ReportRepository
	parcelRepo *repository.ParcelRepository
	infra      *client.InfrastructureClient
	log        zerolog.Logger
}

func NewReportService(
	reportRepo *repository.ReportRepository,
	parcelRepo *repository.ParcelRepository,
	infra *client.InfrastructureClient,
	log zerolog.Logger,
) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		parcelRepo: parcelRepo,
		infra:      infra,
		log:        log,
	}
}

type CreateReportInput struct {
	ParcelIDs       []string
	SolarIrradiance *float64
	WindSpeed       *float64
	GridDistance    *float64
}

func (s *ReportService) Create(ctx context.Context, principal model.Principal, input CreateReportInput) (*model.Report, error) {
	if len(input.ParcelIDs) == 0 {
		return nil, ErrInvalidInput
	}

	ids := make([]uuid.UUID, 0, len(input.ParcelIDs))
	for _, raw := range input.ParcelIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, ErrInvalidInput
		}
		ids = append(ids, id)
	}

	solarIrradiance := DefaultSolarIrradiance
	if input.SolarIrradiance != nil {
		solarIrradiance = *input.SolarIrradiance
	}
	windSpeed := DefaultWindSpeed
	if input.WindSpeed != nil {
		windSpeed = *input.WindSpeed
	}
	gridDistance := float64(DefaultGridDistance)
	if input.GridDistance != nil {
		gridDistance = *input.GridDistance
	}
	if solarIrradiance <= 0 || windSpeed < 0 || gridDistance < 0 {
		return nil, ErrInvalidInput
	}

	parcels, err := s.parcelRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	polygon, err := firstGeometry(parcels)
	if err != nil {
		return nil, err
	}

	area, err := geometry.ProjectedAreaM2(polygon)
	if err != nil {
		return nil, err
	}

	metrics := energy.Estimate(energy.Input{
		TotalAreaM2:     area,
		SolarIrradiance: solarIrradiance,
		WindSpeed:       windSpeed,
		GridDistance:    gridDistance,
	})

	roads := s.roadDistances(ctx, polygon)

	report := assembleReport(metrics, gridDistance, roads)
	report.Parcels = parcels

	if err := s.reportRepo.Create(ctx, &report); err != nil {
		return nil, err
	}

	return &report, nil
}

// firstGeometry returns the polygon of the first parcel carrying geometry.
func firstGeometry(parcels []model.Parcel) (orb.Polygon, error) {
	for _, p := range parcels {
		if p.Polygon == "" {
			continue
		}
		polygon, err := geometry.DecodePolygon(p.Polygon)
		if err != nil {
			return nil, err
		}
		return polygon, nil
	}
	return nil, ErrNoGeometry
}

// roadDistances asks the geodata service when configured, otherwise keeps the
// documented placeholder defaults.
func (s *ReportService) roadDistances(ctx context.Context, polygon orb.Polygon) client.RoadDistances {
	if s.infra == nil || !s.infra.Configured() {
		return defaultRoadDistances
	}

	centroid := geometry.Centroid(polygon)
	distances, err := s.infra.GetRoadDistances(ctx, centroid.Lat, centroid.Lng)
	if err != nil {
		s.log.Warn().Err(err).Msg("infrastructure lookup failed, using default distances")
		return defaultRoadDistances
	}
	return *distances
}

// assembleReport builds the persisted report record from computed metrics.
// Pure; everything derived here is either copied from the estimator or a
// documented policy value.
func assembleReport(metrics energy.Metrics, gridDistance float64, roads client.RoadDistances) model.Report {
	grid := int(gridDistance)

	return model.Report{
		AreaM2:            metrics.TotalAreaM2,
		UsableAreaM2:      metrics.UsableAreaSolarM2 + metrics.UsableAreaWindM2,
		UsableAreaSolarM2: metrics.UsableAreaSolarM2,
		UsableAreaWindM2:  metrics.UsableAreaWindM2,
		UsableAreaBattery: metrics.BatterySuitabilityScore,

		EnergyDistanceMidhighM:      grid,
		EnergyDistanceHighhighM:     grid,
		EnergyDistanceTowerHighestM: grid,
		EnergyDistanceTowerHighM:    grid,
		EnergyDistanceTowerMidM:     grid,

		DistanceMotorwayRampM: roads.MotorwayRampM,
		DistanceMotorwayM:     roads.MotorwayM,
		DistanceTrunkprimaryM: roads.TrunkprimaryM,
		DistanceSecondaryM:    roads.SecondaryM,
		DistanceTraintracksM:  roads.TraintracksM,
		DistanceSettlementM:   roads.SettlementM,

		EegAreaM2:             metrics.UsableAreaSolarM2 * eegAreaFactor,
		BaugbAreaM2:           metrics.UsableAreaWindM2 * baugbAreaFactor,
		IsAreaInPrivilegeArea: true,

		VisibleFor: model.ReportVisibilityUser,
		Data: model.ReportData{
			Version: model.ReportDataVersion,
			Metrics: metrics.Map(),
		},
	}
}

func (s *ReportService) Get(ctx context.Context, principal model.Principal, id string) (*model.Report, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !canSeeReport(principal, report.VisibleFor) {
		return nil, ErrPermissionDenied
	}

	return report, nil
}

func (s *ReportService) List(ctx context.Context, principal model.Principal) ([]model.Report, error) {
	return s.reportRepo.List(ctx, repository.ReportListFilter{
		VisibleFor: visibleScopes(principal),
	})
}

// visibleScopes mirrors the report visibility ladder: admins and support see
// everything, landowners see user and public reports, everyone else only
// public ones.
func visibleScopes(principal model.Principal) []model.ReportVisibility {
	switch {
	case principal.IsAdmin() || principal.IsSupport():
		return nil
	case principal.IsLandowner():
		return []model.ReportVisibility{model.ReportVisibilityUser, model.ReportVisibilityPublic}
	default:
		return []model.ReportVisibility{model.ReportVisibilityPublic}
	}
}

func canSeeReport(principal model.Principal, visibility model.ReportVisibility) bool {
	scopes := visibleScopes(principal)
	if scopes == nil {
		return true
	}
	for _, scope := range scopes {
		if scope == visibility {
			return true
		}
	}
	return false
}
