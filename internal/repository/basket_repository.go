package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parcel-service/internal/model"
)

type BasketRepository struct {
	db *gorm.DB
}

func NewBasketRepository(db *gorm.DB) *BasketRepository {
	return &BasketRepository{db: db}
}

func (r *BasketRepository) Create(ctx context.Context, item *model.BasketItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *BasketRepository) GetByID(ctx context.Context, id string) (*model.BasketItem, error) {
	var item model.BasketItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *BasketRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BasketItem{}).Error
}

func (r *BasketRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.BasketItem, error) {
	var items []model.BasketItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *BasketRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.BasketItem{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
