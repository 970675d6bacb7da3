package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"parcel-service/internal/model"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create persists the report and its parcel links in one transaction.
func (r *ReportRepository) Create(ctx context.Context, report *model.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *ReportRepository) GetByID(ctx context.Context, id string) (*model.Report, error) {
	var report model.Report
	err := r.db.WithContext(ctx).Preload("Parcels").Where("id = ?", id).First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &report, nil
}

type ReportListFilter struct {
	VisibleFor []model.ReportVisibility
}

func (r *ReportRepository) List(ctx context.Context, filter ReportListFilter) ([]model.Report, error) {
	var reports []model.Report
	query := r.db.WithContext(ctx).Model(&model.Report{})

	if len(filter.VisibleFor) > 0 {
		query = query.Where("visible_for IN ?", filter.VisibleFor)
	}

	if err := query.Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}

	return reports, nil
}
