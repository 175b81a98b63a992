package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"arta-api/internal/dto"
	"arta-api/internal/service"
)

type PromotionHandler struct {
	promotionService service.PromotionService
}

func NewPromotionHandler(promotionService service.PromotionService) *PromotionHandler {
	return &PromotionHandler{
		promotionService: promotionService,
	}
}

func (h *PromotionHandler) ValidatePromotion(c echo.Context) error {
	ctx := c.Request().Context()

	productCode := strings.TrimSpace(c.Param("productCode"))
	promoCode := strings.TrimSpace(c.Param("promoCode"))

	if productCode == "" || promoCode == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "path params productCode and promoCode are required",
		})
	}

	result, err := h.promotionService.ValidatePromo(ctx, productCode, promoCode)
	if err != nil {
		return internalError(c, "failed to validate promo code", err)
	}

	if !result.Success {
		switch result.Reason {
		case service.ReasonProductNotFound:
			return c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Message: "productCode not found in ProductMapping table",
			})
		case service.ReasonPromoNotFound:
			return c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Message: "promoCode not found in PromoCode table",
			})
		case service.ReasonProductPriceInvalid:
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Message: "product price is invalid",
			})
		default: // PROMO_INVALID
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Message: "promo code data is invalid",
			})
		}
	}

	return c.JSON(http.StatusOK, dto.ValidatePromoResponse{
		Success:     true,
		ProductCode: productCode,
		PromoCode:   promoCode,
		Price:       result.Price,
		PriceCut:    result.PriceCut,
		FinalPrice:  result.FinalPrice,
	})
}
