package service

import (
	"context"
	"fmt"

	"arta-api/internal/dto"
	"arta-api/internal/model"
	"arta-api/internal/repository"
)

const (
	productMappingTableName = "ProductMapping"
	regionTableName         = "Region"
)

type FindProductMappingsResult struct {
	TableName string
	Count     int
	Items     []dto.ProductMappingItem
}

type FindRegionsResult struct {
	TableName string
	Count     int
	Items     []model.Region
}

type CatalogService interface {
	FindProductMappings(ctx context.Context) (*FindProductMappingsResult, error)
	FindRegions(ctx context.Context) (*FindRegionsResult, error)
}

type catalogServiceImpl struct {
	productRepo repository.ProductMappingRepository
	regionRepo  repository.RegionRepository
}

func NewCatalogService(productRepo repository.ProductMappingRepository, regionRepo repository.RegionRepository) CatalogService {
	return &catalogServiceImpl{
		productRepo: productRepo,
		regionRepo:  regionRepo,
	}
}

// FindProductMappings lists the catalog with provider routing fields
// stripped from every record.
func (s *catalogServiceImpl) FindProductMappings(ctx context.Context) (*FindProductMappingsResult, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan product mappings: %w", err)
	}

	items := make([]dto.ProductMappingItem, len(products))
	for i, p := range products {
		items[i] = dto.ProductMappingItem{
			Code:         p.Code,
			Name:         p.Name,
			Price:        p.Price,
			RegionCode:   p.RegionCode,
			DataAmount:   p.DataAmount,
			ValidityDays: p.ValidityDays,
		}
	}

	return &FindProductMappingsResult{
		TableName: productMappingTableName,
		Count:     len(items),
		Items:     items,
	}, nil
}

func (s *catalogServiceImpl) FindRegions(ctx context.Context) (*FindRegionsResult, error) {
	regions, err := s.regionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan regions: %w", err)
	}

	return &FindRegionsResult{
		TableName: regionTableName,
		Count:     len(regions),
		Items:     regions,
	}, nil
}
