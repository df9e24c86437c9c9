package repository

import (
	"context"

	"kitchenops/entity"
	"kitchenops/mapper"
	"kitchenops/model"

	"gorm.io/gorm"
)

// SummaryRepository reads the daily ingredient requirement view. The view
// is aggregated by the database; nothing here ever writes it.
type SummaryRepository struct {
	DB *gorm.DB
}

// NewSummaryRepository creates and returns a new SummaryRepository.
func NewSummaryRepository(db *gorm.DB) *SummaryRepository {
	return &SummaryRepository{
		DB: db,
	}
}

// ListSummaryByRange fetches summary rows with order_date in [from, to],
// ordered by date then ingredient. Empty bounds are skipped.
func (r *SummaryRepository) ListSummaryByRange(ctx context.Context, from, to string) ([]entity.SummaryRow, error) {
	query := r.DB.WithContext(ctx).Model(&model.DailySummaryRow{})
	if from != "" {
		query = query.Where("order_date >= ?", from)
	}
	if to != "" {
		query = query.Where("order_date <= ?", to)
	}

	var rowModels []model.DailySummaryRow
	if err := query.Order("order_date").Order("ingredient").Find(&rowModels).Error; err != nil {
		return nil, err
	}

	rows := make([]entity.SummaryRow, 0, len(rowModels))
	for i := range rowModels {
		rows = append(rows, *mapper.SummaryRowModelToEntity(&rowModels[i]))
	}
	return rows, nil
}
