package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BasketItem marks a parcel in a user's analyse-plus basket. One row per
// (user, parcel).
type BasketItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_basket_user_parcel" json:"user_id"`
	ParcelID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_basket_user_parcel" json:"parcel_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (BasketItem) TableName() string {
	return "basket_items"
}

func (b *BasketItem) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
