package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportVisibility string

const (
	ReportVisibilityAdmin  ReportVisibility = "A"
	ReportVisibilityUser   ReportVisibility = "U"
	ReportVisibilityPublic ReportVisibility = "P"
)

// ReportDataVersion tags the data snapshot schema so old rows stay readable
// when the metric set changes.
const ReportDataVersion = 1

// ReportData is the typed metric snapshot embedded in a report.
type ReportData struct {
	Version int                `json:"version"`
	Metrics map[string]float64 `json:"metrics"`
}

// Report is an immutable energy-suitability snapshot linked to one or more
// parcels. Parcels are shared references; deleting a report never deletes
// parcels.
type Report struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Parcels []Parcel  `gorm:"many2many:report_parcels;constraint:OnDelete:CASCADE" json:"parcels,omitempty"`

	AreaM2            float64 `gorm:"not null" json:"area_m2"`
	UsableAreaM2      float64 `gorm:"not null" json:"usable_area_m2"`
	UsableAreaSolarM2 float64 `gorm:"not null" json:"usable_area_solar_m2"`
	UsableAreaWindM2  float64 `gorm:"not null" json:"usable_area_wind_m2"`
	UsableAreaBattery float64 `gorm:"column:usable_area_battery_m2;not null" json:"usable_area_battery_m2"`

	EnergyDistanceMidhighM      int `gorm:"not null" json:"energy_distance_midhigh_m"`
	EnergyDistanceHighhighM     int `gorm:"not null" json:"energy_distance_highhigh_m"`
	EnergyDistanceTowerHighestM int `gorm:"not null" json:"energy_distance_tower_highest_m"`
	EnergyDistanceTowerHighM    int `gorm:"not null" json:"energy_distance_tower_high_m"`
	EnergyDistanceTowerMidM     int `gorm:"not null" json:"energy_distance_tower_mid_m"`

	DistanceMotorwayRampM int `gorm:"not null" json:"distance_motorway_ramp_m"`
	DistanceMotorwayM     int `gorm:"not null" json:"distance_motorway_m"`
	DistanceTrunkprimaryM int `gorm:"not null" json:"distance_trunkprimary_m"`
	DistanceSecondaryM    int `gorm:"not null" json:"distance_secondary_m"`
	DistanceTraintracksM  int `gorm:"not null" json:"distance_traintracks_m"`

	DistanceSettlementM   int     `gorm:"not null" json:"distance_settlement_m"`
	EegAreaM2             float64 `gorm:"not null" json:"eeg_area_m2"`
	BaugbAreaM2           float64 `gorm:"not null" json:"baugb_area_m2"`
	IsAreaInPrivilegeArea bool    `gorm:"not null;default:true" json:"is_area_in_privilege_area"`

	VisibleFor ReportVisibility `gorm:"type:varchar(1);not null;default:U" json:"visible_for"`
	Data       ReportData       `gorm:"type:jsonb;serializer:json" json:"data"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Report) TableName() string {
	return "reports"
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
