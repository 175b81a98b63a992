package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"arta-api/internal/client"
	"arta-api/internal/model"
	"arta-api/internal/repository"
)

// Failure reasons surfaced to callers as tagged results, never as errors.
const (
	ReasonOrderNotFound     = "ORDER_NOT_FOUND"
	ReasonStatusNotCreated  = "STATUS_NOT_CREATED"
	ReasonMidtransFailed    = "MIDTRANS_FAILED"
	ReasonProductNotFound   = "PRODUCT_NOT_FOUND"
	ReasonOrderPriceInvalid = "ORDER_PRICE_INVALID"
	ReasonAmountExceeds     = "AMOUNT_EXCEEDS_PRICE"
)

// Recovery actions.
const (
	ActionNoAction      = "NO_ACTION"
	ActionStatusUpdated = "STATUS_UPDATED_AND_LAMBDA_INVOKED"
)

// Fulfillment task names, selected by (orderType, provider).
const (
	TaskEsimAccessTopup         = "esimAccessTopup"
	TaskMayaEsimTopup           = "mayaEsimTopup"
	TaskEsimAccessCreateProfile = "esimAccessCreateOrderProfile"
	TaskMayaEsimIssuance        = "mayaEsimIssuance"
)

const settlementStatus = "settlement"

type RecoveryResult struct {
	Success bool
	Reason  string
	// ReasonDetail carries the upstream error text for MIDTRANS_FAILED.
	ReasonDetail    string
	Action          string
	Order           *model.Order
	GatewayResponse json.RawMessage
	InvokedTask     string
}

type ForceRefundResult struct {
	Success bool
	Reason  string
	Order   *model.Order
}

type FindOrdersResult struct {
	TableName string
	Count     int
	Items     []model.Order
}

type OrderService interface {
	RecoverOrder(ctx context.Context, orderID string) (*RecoveryResult, error)
	ForceRefund(ctx context.Context, orderID string, amount float64) (*ForceRefundResult, error)
	FindPartnerOrders(ctx context.Context, startDate, endDate string) (*FindOrdersResult, error)
	FindInProgressOrders(ctx context.Context, startDate, endDate string) (*FindOrdersResult, error)
}

type orderServiceImpl struct {
	orderRepo          repository.OrderRepository
	productRepo        repository.ProductMappingRepository
	paymentClient      client.PaymentStatusClient
	taskInvoker        client.TaskInvoker
	logger             *slog.Logger
	inProgressStatuses []model.OrderStatus
	pageSize           int
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductMappingRepository,
	paymentClient client.PaymentStatusClient,
	taskInvoker client.TaskInvoker,
	logger *slog.Logger,
	inProgressStatuses []string,
	pageSize int,
) OrderService {
	statuses := make([]model.OrderStatus, len(inProgressStatuses))
	for i, s := range inProgressStatuses {
		statuses[i] = model.ParseOrderStatus(s)
	}

	return &orderServiceImpl{
		orderRepo:          orderRepo,
		productRepo:        productRepo,
		paymentClient:      paymentClient,
		taskInvoker:        taskInvoker,
		logger:             logger,
		inProgressStatuses: statuses,
		pageSize:           pageSize,
	}
}

// RecoverOrder reconciles a stuck CREATED order against the payment gateway.
// Only a settled payment moves the order forward; every other gateway state
// is "not yet confirmed" and leaves the record alone.
func (s *orderServiceImpl) RecoverOrder(ctx context.Context, orderID string) (*RecoveryResult, error) {
	order, err := s.orderRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}
	if order == nil {
		return &RecoveryResult{Reason: ReasonOrderNotFound}, nil
	}

	// Recovery is defined only for unconfirmed orders. Anything past
	// CREATED has already been processed once; touching it again risks
	// double fulfillment.
	if model.ParseOrderStatus(order.Status) != model.StatusCreated {
		return &RecoveryResult{Reason: ReasonStatusNotCreated, Order: order}, nil
	}

	status, err := s.paymentClient.GetTransactionStatus(ctx, orderID)
	if err != nil {
		return &RecoveryResult{
			Reason:       ReasonMidtransFailed,
			ReasonDetail: err.Error(),
			Order:        order,
		}, nil
	}

	if strings.ToLower(strings.TrimSpace(status.TransactionStatus)) != settlementStatus {
		return &RecoveryResult{
			Success:         true,
			Action:          ActionNoAction,
			Order:           order,
			GatewayResponse: status.Raw,
		}, nil
	}

	updated, matched, err := s.orderRepo.UpdateStatusIfCreated(ctx, orderID, model.StatusPaid)
	if err != nil {
		return nil, fmt.Errorf("update order %s status: %w", orderID, err)
	}
	if !matched {
		// The order moved under us between the read and the update.
		return &RecoveryResult{Reason: ReasonStatusNotCreated, Order: updated}, nil
	}

	product, err := s.productRepo.FindFirstByCode(ctx, updated.ProductCode)
	if err != nil {
		return nil, fmt.Errorf("find product %s: %w", updated.ProductCode, err)
	}
	var provider string
	if product != nil {
		provider = strings.TrimSpace(product.Provider)
	}
	if provider == "" {
		// The order stays PAID; there is no rollback for a missing
		// mapping. Fulfillment has to be re-driven once the mapping
		// exists.
		return &RecoveryResult{
			Reason:          ReasonProductNotFound,
			Order:           updated,
			GatewayResponse: status.Raw,
		}, nil
	}

	taskName := selectFulfillmentTask(updated.OrderType, provider)

	// Best-effort dispatch: a failed push must not fail the recovery
	// response, the status transition already happened.
	if err := s.taskInvoker.Invoke(ctx, taskName, client.TaskPayload{OrderID: orderID}); err != nil {
		s.logger.Error("fulfillment task dispatch failed",
			"orderId", orderID,
			"task", taskName,
			"error", err,
		)
	}

	return &RecoveryResult{
		Success:         true,
		Action:          ActionStatusUpdated,
		Order:           updated,
		GatewayResponse: status.Raw,
		InvokedTask:     taskName,
	}, nil
}

func selectFulfillmentTask(orderType, provider string) string {
	topup := model.IsTopupOrderType(orderType)
	esimAccess := model.ParseProvider(provider) == model.ProviderEsimAccess

	switch {
	case topup && esimAccess:
		return TaskEsimAccessTopup
	case topup:
		return TaskMayaEsimTopup
	case esimAccess:
		return TaskEsimAccessCreateProfile
	default:
		return TaskMayaEsimIssuance
	}
}

// ForceRefund records an administrative refund on the order, bounded by the
// order price at the time of the write.
func (s *orderServiceImpl) ForceRefund(ctx context.Context, orderID string, amount float64) (*ForceRefundResult, error) {
	order, err := s.orderRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}
	if order == nil {
		return &ForceRefundResult{Reason: ReasonOrderNotFound}, nil
	}

	price, err := decimal.NewFromString(strings.TrimSpace(order.Price))
	if err != nil {
		return &ForceRefundResult{Reason: ReasonOrderPriceInvalid}, nil
	}

	if decimal.NewFromFloat(amount).GreaterThan(price) {
		return &ForceRefundResult{Reason: ReasonAmountExceeds}, nil
	}

	updated, err := s.orderRepo.UpdateForceRefund(ctx, orderID, amount)
	if err != nil {
		return nil, fmt.Errorf("update order %s refund: %w", orderID, err)
	}

	return &ForceRefundResult{Success: true, Order: updated}, nil
}

const ordersTableName = "Order"

func (s *orderServiceImpl) FindPartnerOrders(ctx context.Context, startDate, endDate string) (*FindOrdersResult, error) {
	items, err := s.orderRepo.FindPartnerOrders(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("scan partner orders: %w", err)
	}

	return &FindOrdersResult{
		TableName: ordersTableName,
		Count:     len(items),
		Items:     items,
	}, nil
}

// FindInProgressOrders walks each in-progress status in a fixed order,
// following page cursors until each one is exhausted.
func (s *orderServiceImpl) FindInProgressOrders(ctx context.Context, startDate, endDate string) (*FindOrdersResult, error) {
	items := []model.Order{}

	for _, status := range s.inProgressStatuses {
		cursor := ""
		for {
			page, nextCursor, err := s.orderRepo.QueryByStatusAndDateRange(
				ctx, status, startDate, endDate, cursor, s.pageSize,
			)
			if err != nil {
				return nil, fmt.Errorf("query %s orders: %w", status, err)
			}

			items = append(items, page...)
			if nextCursor == "" {
				break
			}
			cursor = nextCursor
		}
	}

	return &FindOrdersResult{
		TableName: ordersTableName,
		Count:     len(items),
		Items:     items,
	}, nil
}
