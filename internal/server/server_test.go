package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"arta-api/internal/config"
	"arta-api/internal/handler"
	"arta-api/internal/service"
)

type stubOrderService struct{}

func (stubOrderService) RecoverOrder(ctx context.Context, orderID string) (*service.RecoveryResult, error) {
	return &service.RecoveryResult{Success: true, Action: service.ActionNoAction}, nil
}

func (stubOrderService) ForceRefund(ctx context.Context, orderID string, amount float64) (*service.ForceRefundResult, error) {
	return &service.ForceRefundResult{Success: true}, nil
}

func (stubOrderService) FindPartnerOrders(ctx context.Context, startDate, endDate string) (*service.FindOrdersResult, error) {
	return &service.FindOrdersResult{TableName: "Order"}, nil
}

func (stubOrderService) FindInProgressOrders(ctx context.Context, startDate, endDate string) (*service.FindOrdersResult, error) {
	return &service.FindOrdersResult{TableName: "Order"}, nil
}

type stubPromotionService struct{}

func (stubPromotionService) ValidatePromo(ctx context.Context, productCode, promoCode string) (*service.ValidatePromoResult, error) {
	return &service.ValidatePromoResult{Success: true}, nil
}

type stubCatalogService struct{}

func (stubCatalogService) FindProductMappings(ctx context.Context) (*service.FindProductMappingsResult, error) {
	return &service.FindProductMappingsResult{TableName: "ProductMapping"}, nil
}

func (stubCatalogService) FindRegions(ctx context.Context) (*service.FindRegionsResult, error) {
	return &service.FindRegionsResult{TableName: "Region"}, nil
}

func newTestServer(authCfg config.Auth) *Server {
	return NewServer(
		authCfg,
		handler.NewOrderHandler(stubOrderService{}),
		handler.NewPromotionHandler(stubPromotionService{}),
		handler.NewCatalogHandler(stubCatalogService{}),
	)
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	srv := newTestServer(config.Auth{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("health response is not JSON: %v", err)
	}
	if body["success"] != true || body["message"] != "API is healthy" {
		t.Fatalf("unexpected health body: %s", rec.Body)
	}
	if body["timestamp"] == "" {
		t.Fatalf("expected a timestamp")
	}
}

func TestServer_Routes(t *testing.T) {
	t.Parallel()

	srv := newTestServer(config.Auth{})

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodGet, "/v2/partner/orders?startDate=2025-06-01&endDate=2025-06-30"},
		{http.MethodGet, "/v2/in-progress/orders?startDate=2025-06-01&endDate=2025-06-30"},
		{http.MethodGet, "/v2/products"},
		{http.MethodGet, "/v2/promo/validate/P1/HALF"},
		{http.MethodGet, "/v2/regions"},
	}

	for _, r := range routes {
		req := httptest.NewRequest(r.method, r.path, nil)
		rec := httptest.NewRecorder()
		srv.echo.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("%s %s: expected 200, got %d: %s", r.method, r.path, rec.Code, rec.Body)
		}
	}
}

func TestServer_AuthGuardsMutatingRoutes(t *testing.T) {
	t.Parallel()

	srv := newTestServer(config.Auth{Enabled: true, JWTSecret: "secret"})

	for _, path := range []string{"/v2/refund/force", "/v2/order/recovery"} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		rec := httptest.NewRecorder()
		srv.echo.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 without a token, got %d", path, rec.Code)
		}
	}

	// Read routes stay open.
	req := httptest.NewRequest(http.MethodGet, "/v2/regions", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected read routes to stay open, got %d", rec.Code)
	}
}
