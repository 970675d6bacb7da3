package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'report_visibility') THEN
			CREATE TYPE report_visibility AS ENUM ('A', 'U', 'P');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS landuses (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(100) NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS parcels (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		owner_id UUID,
		landuse_id UUID REFERENCES landuses(id) ON DELETE SET NULL,
		alkis_feature_id VARCHAR(64),
		state_name VARCHAR(100),
		district_name VARCHAR(100),
		communal_district VARCHAR(100),
		municipality_name VARCHAR(100),
		cadastral_area VARCHAR(50),
		cadastral_parcel VARCHAR(50),
		zipcode VARCHAR(10),
		polygon TEXT NOT NULL,
		area_square_meters DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_parcels_alkis_feature_id ON parcels (alkis_feature_id) WHERE alkis_feature_id IS NOT NULL;`,
	`CREATE INDEX IF NOT EXISTS idx_parcels_owner_id ON parcels (owner_id);`,
	`CREATE INDEX IF NOT EXISTS idx_parcels_landuse_id ON parcels (landuse_id);`,
	`CREATE TABLE IF NOT EXISTS reports (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		area_m2 DOUBLE PRECISION NOT NULL,
		usable_area_m2 DOUBLE PRECISION NOT NULL,
		usable_area_solar_m2 DOUBLE PRECISION NOT NULL,
		usable_area_wind_m2 DOUBLE PRECISION NOT NULL,
		usable_area_battery_m2 DOUBLE PRECISION NOT NULL,
		energy_distance_midhigh_m INTEGER NOT NULL,
		energy_distance_highhigh_m INTEGER NOT NULL,
		energy_distance_tower_highest_m INTEGER NOT NULL,
		energy_distance_tower_high_m INTEGER NOT NULL,
		energy_distance_tower_mid_m INTEGER NOT NULL,
		distance_motorway_ramp_m INTEGER NOT NULL,
		distance_motorway_m INTEGER NOT NULL,
		distance_trunkprimary_m INTEGER NOT NULL,
		distance_secondary_m INTEGER NOT NULL,
		distance_traintracks_m INTEGER NOT NULL,
		distance_settlement_m INTEGER NOT NULL,
		eeg_area_m2 DOUBLE PRECISION NOT NULL,
		baugb_area_m2 DOUBLE PRECISION NOT NULL,
		is_area_in_privilege_area BOOLEAN NOT NULL DEFAULT TRUE,
		visible_for VARCHAR(1) NOT NULL DEFAULT 'U',
		data JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_reports_visible_for ON reports (visible_for);`,
	`CREATE TABLE IF NOT EXISTS report_parcels (
		report_id UUID NOT NULL REFERENCES reports(id) ON DELETE CASCADE,
		parcel_id UUID NOT NULL REFERENCES parcels(id) ON DELETE CASCADE,
		PRIMARY KEY (report_id, parcel_id)
	);`,
	`CREATE TABLE IF NOT EXISTS area_offers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		parcel_id UUID NOT NULL REFERENCES parcels(id) ON DELETE CASCADE,
		price NUMERIC(10,2) NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_area_offers_parcel_id ON area_offers (parcel_id);`,
	`CREATE TABLE IF NOT EXISTS offer_confirmations (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		offer_id UUID NOT NULL UNIQUE REFERENCES area_offers(id) ON DELETE CASCADE,
		confirmed_by_id UUID NOT NULL,
		confirmed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS basket_items (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL,
		parcel_id UUID NOT NULL REFERENCES parcels(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT idx_basket_user_parcel UNIQUE (user_id, parcel_id)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_basket_items_user_id ON basket_items (user_id);`,
	`CREATE OR REPLACE FUNCTION set_updated_at()
	RETURNS TRIGGER AS $$
	BEGIN
		NEW.updated_at = NOW();
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_parcels_updated_at') THEN
			CREATE TRIGGER trg_parcels_updated_at
				BEFORE UPDATE ON parcels
				FOR EACH ROW
				EXECUTE PROCEDURE set_updated_at();
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_area_offers_updated_at') THEN
			CREATE TRIGGER trg_area_offers_updated_at
				BEFORE UPDATE ON area_offers
				FOR EACH ROW
				EXECUTE PROCEDURE set_updated_at();
		END IF;
	END
	$$;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
