package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AreaOffer is a sale offer on a parcel.
type AreaOffer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	ParcelID  uuid.UUID `gorm:"type:uuid;not null;index" json:"parcel_id"`
	Price     float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AreaOffer) TableName() string {
	return "area_offers"
}

func (o *AreaOffer) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OfferConfirmation records the one-time confirmation of an offer.
type OfferConfirmation struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	OfferID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"offer_id"`
	ConfirmedByID uuid.UUID `gorm:"type:uuid;not null" json:"confirmed_by_id"`
	ConfirmedAt   time.Time `gorm:"autoCreateTime" json:"confirmed_at"`
}

func (OfferConfirmation) TableName() string {
	return "offer_confirmations"
}

func (c *OfferConfirmation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
