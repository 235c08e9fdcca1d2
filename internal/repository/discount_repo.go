package repository

import (
	"context"
	"errors"

	"hotelier/internal/domain"

	"gorm.io/gorm"
)

type DiscountRepository struct {
	db *gorm.DB
}

func NewDiscountRepository(db *gorm.DB) *DiscountRepository {
	return &DiscountRepository{db: db}
}

func (r *DiscountRepository) GetByCode(ctx context.Context, code string) (*domain.Discount, error) {
	var d domain.Discount
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}
