package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"arta-api/internal/model"
)

type PromoCodeRepository interface {
	GetByCode(ctx context.Context, code string) (*model.PromoCode, error)
}

type promoCodeRepoImpl struct {
	db *gorm.DB
}

func NewPromoCodeRepository(db *gorm.DB) PromoCodeRepository {
	return &promoCodeRepoImpl{
		db: db,
	}
}

func (r *promoCodeRepoImpl) GetByCode(ctx context.Context, code string) (*model.PromoCode, error) {
	var promo model.PromoCode
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&promo).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &promo, nil
}
