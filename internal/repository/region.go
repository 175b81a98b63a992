package repository

import (
	"context"

	"gorm.io/gorm"

	"arta-api/internal/model"
)

type RegionRepository interface {
	FindAll(ctx context.Context) ([]model.Region, error)
}

type regionRepoImpl struct {
	db *gorm.DB
}

func NewRegionRepository(db *gorm.DB) RegionRepository {
	return &regionRepoImpl{
		db: db,
	}
}

func (r *regionRepoImpl) FindAll(ctx context.Context) ([]model.Region, error) {
	var regions []model.Region
	err := r.db.WithContext(ctx).Find(&regions).Error

	if err != nil {
		return nil, err
	}

	return regions, nil
}
