package model

import "strings"

type OrderStatus string

const (
	StatusCreated        OrderStatus = "CREATED"
	StatusPaid           OrderStatus = "PAID"
	StatusEsimOrdered    OrderStatus = "ESIM_ORDERED"
	StatusEsimFulfilled  OrderStatus = "ESIM_FULFILLED"
	StatusPaymentExpired OrderStatus = "PAYMENT_EXPIRED"
	StatusTopUpCompleted OrderStatus = "TOP_UP_COMPLETED"
	StatusEsimPublished  OrderStatus = "ESIM_PUBLISHED"
)

// ParseOrderStatus normalizes a raw status attribute. Records written by
// older flows carry mixed casing, so comparisons go through here instead of
// against the raw column value.
func ParseOrderStatus(raw string) OrderStatus {
	return OrderStatus(strings.ToUpper(strings.TrimSpace(raw)))
}

const OrderTypeTopup = "topup"

// IsTopupOrderType reports whether a raw orderType attribute means top-up.
func IsTopupOrderType(raw string) bool {
	return strings.ToLower(strings.TrimSpace(raw)) == OrderTypeTopup
}

// Order mirrors the Order table. Price is stored as a string: the table the
// original API fronted was schemaless and a share of records carry the price
// as a string attribute, which is why force refund re-parses it on every
// read.
type Order struct {
	OrderID     string   `gorm:"primaryKey;column:order_id" json:"orderId"`
	Status      string   `gorm:"index:idx_orders_status_created_at,priority:1" json:"status"`
	Price       string   `json:"price"`
	ProductCode string   `json:"productCode"`
	OrderType   string   `json:"orderType"`
	CreatedAt   string   `gorm:"index:idx_orders_status_created_at,priority:2" json:"createdAt"`
	Partner     *string  `json:"partner,omitempty"`
	Refund      *float64 `json:"refund,omitempty"`
	ForceRefund *bool    `json:"forceRefund,omitempty"`
}

func (Order) TableName() string { return "orders" }
