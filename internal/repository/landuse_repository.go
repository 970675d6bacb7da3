package repository

import (
	"context"

	"gorm.io/gorm"

	"parcel-service/internal/model"
)

type LanduseRepository struct {
	db *gorm.DB
}

func NewLanduseRepository(db *gorm.DB) *LanduseRepository {
	return &LanduseRepository{db: db}
}

func (r *LanduseRepository) Create(ctx context.Context, landuse *model.Landuse) error {
	return r.db.WithContext(ctx).Create(landuse).Error
}

func (r *LanduseRepository) GetByID(ctx context.Context, id string) (*model.Landuse, error) {
	var landuse model.Landuse
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&landuse).Error; err != nil {
		return nil, err
	}
	return &landuse, nil
}

func (r *LanduseRepository) List(ctx context.Context) ([]model.Landuse, error) {
	var landuses []model.Landuse
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&landuses).Error; err != nil {
		return nil, err
	}
	return landuses, nil
}
