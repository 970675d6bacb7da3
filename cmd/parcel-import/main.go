package main

import (
	"context"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"parcel-service/internal/config"
	"parcel-service/internal/db"
	"parcel-service/internal/geometry"
	"parcel-service/internal/logger"
	"parcel-service/internal/model"
	"parcel-service/internal/repository"
	"parcel-service/internal/utils"
)

// parcel-import loads a GeoJSON FeatureCollection of cadastral parcels and
// upserts them by ALKIS feature id.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: parcel-import <file.geojson>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to read input file")
	}

	collection, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to parse feature collection")
	}

	parcelRepo := repository.NewParcelRepository(database)
	ctx := context.Background()

	imported := 0
	for _, feature := range collection.Features {
		parcel, err := featureToParcel(feature)
		if err != nil {
			appLogger.Warn().Err(err).Msg("skipping feature")
			continue
		}

		if err := parcelRepo.UpsertByFeatureID(ctx, parcel); err != nil {
			appLogger.Fatal().Err(err).Str("feature_id", *parcel.AlkisFeatureID).Msg("upsert failed")
		}
		imported++
	}

	appLogger.Info().Int("count", imported).Msg("parcels imported")
}

func featureToParcel(feature *geojson.Feature) (*model.Parcel, error) {
	featureID := feature.Properties.MustString("id", "")
	if featureID == "" {
		if s, ok := feature.ID.(string); ok {
			featureID = s
		}
	}
	if featureID == "" {
		return nil, fmt.Errorf("feature has no id")
	}

	var polygon orb.Polygon
	switch geom := feature.Geometry.(type) {
	case orb.Polygon:
		polygon = geom
	case orb.MultiPolygon:
		if len(geom) == 0 {
			return nil, fmt.Errorf("feature %s has empty multipolygon", featureID)
		}
		polygon = geom[0]
	default:
		return nil, fmt.Errorf("feature %s has unsupported geometry", featureID)
	}

	if len(polygon) == 0 {
		return nil, fmt.Errorf("feature %s has no rings", featureID)
	}
	polygon[0] = geometry.CloseRing(polygon[0])
	if err := geometry.ValidateRing(polygon[0]); err != nil {
		return nil, fmt.Errorf("feature %s: %w", featureID, err)
	}

	area, err := geometry.ProjectedAreaM2(polygon)
	if err != nil {
		return nil, fmt.Errorf("feature %s: %w", featureID, err)
	}

	encoded, err := geometry.EncodePolygon(polygon)
	if err != nil {
		return nil, err
	}

	cadastralParcel := feature.Properties.MustString("flstnrzae", "")
	if nen := feature.Properties.MustString("flstnrnen", ""); nen != "" {
		cadastralParcel = cadastralParcel + "/" + nen
	}
	cadastralParcel = utils.NormalizeCadastralRef(cadastralParcel)

	parcel := &model.Parcel{
		AlkisFeatureID:   &featureID,
		Polygon:          encoded,
		AreaSquareMeters: area,
	}

	setIfPresent(&parcel.StateName, feature, "land")
	setIfPresent(&parcel.DistrictName, feature, "kreis")
	setIfPresent(&parcel.CommunalDistrict, feature, "gemarkung")
	setIfPresent(&parcel.MunicipalityName, feature, "gemeinde")
	setIfPresent(&parcel.CadastralArea, feature, "flur")
	if cadastralParcel != "" {
		parcel.CadastralParcel = &cadastralParcel
	}

	return parcel, nil
}

func setIfPresent(target **string, feature *geojson.Feature, key string) {
	if value := feature.Properties.MustString(key, ""); value != "" {
		*target = &value
	}
}
