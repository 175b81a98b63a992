package dto

import "arta-api/internal/model"

type ForceRefundRequest struct {
	OrderID string  `json:"orderId"`
	Amount  float64 `json:"amount"`
}

type RecoveryRequest struct {
	OrderID string `json:"orderId"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type HealthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type ListOrdersResponse struct {
	Success   bool          `json:"success"`
	TableName string        `json:"tableName"`
	Count     int           `json:"count"`
	Items     []model.Order `json:"items"`
}

type ForceRefundResponse struct {
	Success bool         `json:"success"`
	Item    *model.Order `json:"item"`
}

type RecoveryResponse struct {
	Success         bool         `json:"success"`
	Action          string       `json:"action"`
	Order           *model.Order `json:"order"`
	GatewayResponse interface{}  `json:"gatewayResponse,omitempty"`
	InvokedTask     string       `json:"invokedTask,omitempty"`
}

// ProductMappingItem is the public shape of a product mapping. Provider
// routing fields (provider, mayaProductId, esimAccessProductId) are
// deliberately absent: internal routing must not leak to API consumers.
type ProductMappingItem struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Price        string `json:"price"`
	RegionCode   string `json:"regionCode"`
	DataAmount   string `json:"dataAmount"`
	ValidityDays int    `json:"validityDays"`
}

type ListProductMappingsResponse struct {
	Success   bool                 `json:"success"`
	TableName string               `json:"tableName"`
	Count     int                  `json:"count"`
	Items     []ProductMappingItem `json:"items"`
}

type ListRegionsResponse struct {
	Success   bool           `json:"success"`
	TableName string         `json:"tableName"`
	Count     int            `json:"count"`
	Items     []model.Region `json:"items"`
}

type ValidatePromoResponse struct {
	Success     bool    `json:"success"`
	ProductCode string  `json:"productCode"`
	PromoCode   string  `json:"promoCode"`
	Price       float64 `json:"price"`
	PriceCut    float64 `json:"priceCut"`
	FinalPrice  float64 `json:"finalPrice"`
}
