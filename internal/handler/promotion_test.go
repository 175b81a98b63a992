package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arta-api/internal/service"
)

type fakePromotionService struct {
	result *service.ValidatePromoResult
	err    error
}

func (f *fakePromotionService) ValidatePromo(ctx context.Context, productCode, promoCode string) (*service.ValidatePromoResult, error) {
	return f.result, f.err
}

func promoRequest(productCode, promoCode string) (*http.Request, func(e *echo.Echo, rec *httptest.ResponseRecorder) echo.Context) {
	req := httptest.NewRequest(http.MethodGet, "/v2/promo/validate/"+url.PathEscape(productCode)+"/"+url.PathEscape(promoCode), nil)
	return req, func(e *echo.Echo, rec *httptest.ResponseRecorder) echo.Context {
		c := e.NewContext(req, rec)
		c.SetParamNames("productCode", "promoCode")
		c.SetParamValues(productCode, promoCode)
		return c
	}
}

func TestPromotionHandler_ValidatePromotion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		result     *service.ValidatePromoResult
		wantStatus int
	}{
		{
			name:       "product not found",
			result:     &service.ValidatePromoResult{Reason: service.ReasonProductNotFound},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "promo not found",
			result:     &service.ValidatePromoResult{Reason: service.ReasonPromoNotFound},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "product price invalid",
			result:     &service.ValidatePromoResult{Reason: service.ReasonProductPriceInvalid},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "promo invalid",
			result:     &service.ValidatePromoResult{Reason: service.ReasonPromoInvalid},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPromotionHandler(&fakePromotionService{result: tt.result})

			e := echo.New()
			rec := httptest.NewRecorder()
			_, makeCtx := promoRequest("P1", "HALF")
			require.NoError(t, h.ValidatePromotion(makeCtx(e, rec)))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	t.Run("success carries scaled prices", func(t *testing.T) {
		h := NewPromotionHandler(&fakePromotionService{result: &service.ValidatePromoResult{
			Success:    true,
			Price:      100000,
			PriceCut:   10000,
			FinalPrice: 90000,
		}})

		e := echo.New()
		rec := httptest.NewRecorder()
		_, makeCtx := promoRequest("P1", "HALF")
		require.NoError(t, h.ValidatePromotion(makeCtx(e, rec)))
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "P1", body["productCode"])
		assert.Equal(t, "HALF", body["promoCode"])
		assert.Equal(t, 100000.0, body["price"])
		assert.Equal(t, 10000.0, body["priceCut"])
		assert.Equal(t, 90000.0, body["finalPrice"])
	})

	t.Run("blank params rejected", func(t *testing.T) {
		h := NewPromotionHandler(&fakePromotionService{})

		e := echo.New()
		rec := httptest.NewRecorder()
		_, makeCtx := promoRequest("  ", "HALF")
		require.NoError(t, h.ValidatePromotion(makeCtx(e, rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
