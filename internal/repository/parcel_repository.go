package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"parcel-service/internal/model"
)

type ParcelRepository struct {
	db *gorm.DB
}

func NewParcelRepository(db *gorm.DB) *ParcelRepository {
	return &ParcelRepository{db: db}
}

func (r *ParcelRepository) Create(ctx context.Context, parcel *model.Parcel) error {
	return r.db.WithContext(ctx).Create(parcel).Error
}

func (r *ParcelRepository) GetByID(ctx context.Context, id string) (*model.Parcel, error) {
	var parcel model.Parcel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&parcel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &parcel, nil
}

func (r *ParcelRepository) Update(ctx context.Context, parcel *model.Parcel) error {
	return r.db.WithContext(ctx).Save(parcel).Error
}

func (r *ParcelRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Parcel{}).Error
}

type ParcelListFilter struct {
	OwnerID   *string
	LanduseID *string
	Zipcode   *string
	StateName *string
}

func (r *ParcelRepository) List(ctx context.Context, filter ParcelListFilter) ([]model.Parcel, error) {
	var parcels []model.Parcel
	query := r.db.WithContext(ctx).Model(&model.Parcel{})

	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.LanduseID != nil {
		query = query.Where("landuse_id = ?", *filter.LanduseID)
	}
	if filter.Zipcode != nil {
		query = query.Where("zipcode = ?", *filter.Zipcode)
	}
	if filter.StateName != nil {
		query = query.Where("state_name = ?", *filter.StateName)
	}

	if err := query.Order("created_at DESC").Find(&parcels).Error; err != nil {
		return nil, err
	}

	return parcels, nil
}

func (r *ParcelRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Parcel, error) {
	var parcels []model.Parcel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&parcels).Error; err != nil {
		return nil, err
	}
	return parcels, nil
}

// UpsertByFeatureID inserts or refreshes a parcel keyed on its cadastral
// (ALKIS) feature id. Used by the bulk importer.
func (r *ParcelRepository) UpsertByFeatureID(ctx context.Context, parcel *model.Parcel) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "alkis_feature_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"state_name", "district_name", "communal_district", "municipality_name",
			"cadastral_area", "cadastral_parcel", "zipcode", "polygon",
			"area_square_meters", "updated_at",
		}),
	}).Create(parcel).Error
}
