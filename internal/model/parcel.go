package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Parcel is a discrete piece of land with a polygon boundary in geographic
// coordinates. AreaSquareMeters is always derived from the polygon via
// projection; it is never written independently.
type Parcel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	OwnerID          *uuid.UUID `gorm:"type:uuid;index" json:"owner_id"`
	LanduseID        *uuid.UUID `gorm:"type:uuid;index" json:"landuse_id"`
	AlkisFeatureID   *string    `gorm:"type:varchar(64);uniqueIndex" json:"alkis_feature_id"`
	StateName        *string    `gorm:"type:varchar(100)" json:"state_name"`
	DistrictName     *string    `gorm:"type:varchar(100)" json:"district_name"`
	CommunalDistrict *string    `gorm:"type:varchar(100)" json:"communal_district"`
	MunicipalityName *string    `gorm:"type:varchar(100)" json:"municipality_name"`
	CadastralArea    *string    `gorm:"type:varchar(50)" json:"cadastral_area"`
	CadastralParcel  *string    `gorm:"type:varchar(50)" json:"cadastral_parcel"`
	Zipcode          *string    `gorm:"type:varchar(10)" json:"zipcode"`
	Polygon          string     `gorm:"type:text;not null" json:"polygon"`
	AreaSquareMeters float64    `gorm:"not null" json:"area_square_meters"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Parcel) TableName() string {
	return "parcels"
}

func (p *Parcel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type Landuse struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Landuse) TableName() string {
	return "landuses"
}

func (l *Landuse) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
