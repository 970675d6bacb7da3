package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"parcel-service/internal/model"
)

type OfferRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) Create(ctx context.Context, offer *model.AreaOffer) error {
	return r.db.WithContext(ctx).Create(offer).Error
}

func (r *OfferRepository) GetByID(ctx context.Context, id string) (*model.AreaOffer, error) {
	var offer model.AreaOffer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&offer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &offer, nil
}

func (r *OfferRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AreaOffer{}).Error
}

type OfferListFilter struct {
	ParcelID *string
	IsActive *bool
}

func (r *OfferRepository) List(ctx context.Context, filter OfferListFilter) ([]model.AreaOffer, error) {
	var offers []model.AreaOffer
	query := r.db.WithContext(ctx).Model(&model.AreaOffer{})

	if filter.ParcelID != nil {
		query = query.Where("parcel_id = ?", *filter.ParcelID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	if err := query.Order("created_at DESC").Find(&offers).Error; err != nil {
		return nil, err
	}

	return offers, nil
}

func (r *OfferRepository) CreateConfirmation(ctx context.Context, confirmation *model.OfferConfirmation) error {
	return r.db.WithContext(ctx).Create(confirmation).Error
}

func (r *OfferRepository) GetConfirmation(ctx context.Context, offerID string) (*model.OfferConfirmation, error) {
	var confirmation model.OfferConfirmation
	err := r.db.WithContext(ctx).Where("offer_id = ?", offerID).First(&confirmation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &confirmation, nil
}
