package repository

import (
	"context"

	"gorm.io/gorm"

	"arta-api/internal/model"
)

type ProductMappingRepository interface {
	FindFirstByCode(ctx context.Context, code string) (*model.ProductMapping, error)
	FindAll(ctx context.Context) ([]model.ProductMapping, error)
}

type productMappingRepoImpl struct {
	db *gorm.DB
}

func NewProductMappingRepository(db *gorm.DB) ProductMappingRepository {
	return &productMappingRepoImpl{
		db: db,
	}
}

// FindFirstByCode returns the first mapping for a code, or nil when there is
// none. Limit-1 rather than First: the lookup mirrors an index query and an
// empty result is a domain outcome, not an error.
func (r *productMappingRepoImpl) FindFirstByCode(ctx context.Context, code string) (*model.ProductMapping, error) {
	var products []model.ProductMapping
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		Limit(1).
		Find(&products).Error

	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, nil
	}

	return &products[0], nil
}

func (r *productMappingRepoImpl) FindAll(ctx context.Context) ([]model.ProductMapping, error) {
	var products []model.ProductMapping
	err := r.db.WithContext(ctx).Find(&products).Error

	if err != nil {
		return nil, err
	}

	return products, nil
}
