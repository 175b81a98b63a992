package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"arta-api/internal/model"
	"arta-api/internal/repository"
)

const (
	ReasonProductPriceInvalid = "PRODUCT_PRICE_INVALID"
	ReasonPromoNotFound       = "PROMO_NOT_FOUND"
	ReasonPromoInvalid        = "PROMO_INVALID"
)

type ValidatePromoResult struct {
	Success bool
	Reason  string
	Product *model.ProductMapping
	Promo   *model.PromoCode
	// Price, PriceCut and FinalPrice are scaled x1000 into the store's
	// smallest currency unit.
	Price      float64
	PriceCut   float64
	FinalPrice float64
}

type PromotionService interface {
	ValidatePromo(ctx context.Context, productCode, promoCode string) (*ValidatePromoResult, error)
}

type promotionServiceImpl struct {
	productRepo repository.ProductMappingRepository
	promoRepo   repository.PromoCodeRepository
}

func NewPromotionService(productRepo repository.ProductMappingRepository, promoRepo repository.PromoCodeRepository) PromotionService {
	return &promotionServiceImpl{
		productRepo: productRepo,
		promoRepo:   promoRepo,
	}
}

var unitScale = decimal.NewFromInt(1000)

func (s *promotionServiceImpl) ValidatePromo(ctx context.Context, productCode, promoCode string) (*ValidatePromoResult, error) {
	product, err := s.productRepo.FindFirstByCode(ctx, productCode)
	if err != nil {
		return nil, fmt.Errorf("find product %s: %w", productCode, err)
	}
	if product == nil {
		return &ValidatePromoResult{Reason: ReasonProductNotFound}, nil
	}

	price, err := decimal.NewFromString(strings.TrimSpace(product.Price))
	if err != nil || price.Sign() <= 0 {
		return &ValidatePromoResult{Reason: ReasonProductPriceInvalid}, nil
	}

	promo, err := s.promoRepo.GetByCode(ctx, promoCode)
	if err != nil {
		return nil, fmt.Errorf("get promo %s: %w", promoCode, err)
	}
	if promo == nil {
		return &ValidatePromoResult{Reason: ReasonPromoNotFound}, nil
	}

	discountPercentage, err := decimal.NewFromString(strings.TrimSpace(promo.DiscountPercentage))
	if err != nil || discountPercentage.IsNegative() {
		return &ValidatePromoResult{Reason: ReasonPromoInvalid}, nil
	}
	maxPriceCut, err := decimal.NewFromString(strings.TrimSpace(promo.MaxPriceCut))
	if err != nil || maxPriceCut.IsNegative() {
		return &ValidatePromoResult{Reason: ReasonPromoInvalid}, nil
	}

	priceCut := price.Mul(discountPercentage).Div(decimal.NewFromInt(100))
	if priceCut.GreaterThan(maxPriceCut) {
		priceCut = maxPriceCut
	}

	finalPrice := price.Sub(priceCut)

	return &ValidatePromoResult{
		Success:    true,
		Product:    product,
		Promo:      promo,
		Price:      price.Mul(unitScale).InexactFloat64(),
		PriceCut:   priceCut.Mul(unitScale).InexactFloat64(),
		FinalPrice: finalPrice.Mul(unitScale).InexactFloat64(),
	}, nil
}
