package repository

import (
	"context"
	"errors"

	"smarthaus/internal/domain/entities"
	"smarthaus/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// QuoteGormRepository reads selected quotes (with line items) for planning.

type QuoteGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IQuoteRepository = (*QuoteGormRepository)(nil)

func NewQuoteGormRepository(db *gorm.DB) *QuoteGormRepository {
	return &QuoteGormRepository{db: db}
}

func (r *QuoteGormRepository) GetSelectedByProjectID(ctx context.Context, projectID string) (entities.Quote, error) {
	var q entities.Quote
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("project_id = ? AND is_selected = ?", projectID, true).
		First(&q).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Quote{}, nil
	}
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}
