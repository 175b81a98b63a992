package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"arta-api/internal/dto"
	"arta-api/internal/service"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

var acceptedDateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dateRangeFromQuery validates startDate/endDate and normalizes both to UTC
// RFC3339 so they compare the same way the stored createdAt strings do.
func dateRangeFromQuery(c echo.Context) (string, string, *dto.ErrorResponse) {
	startDate := strings.TrimSpace(c.QueryParam("startDate"))
	endDate := strings.TrimSpace(c.QueryParam("endDate"))

	if startDate == "" || endDate == "" {
		return "", "", &dto.ErrorResponse{
			Message: "query params startDate and endDate are required",
		}
	}

	start, okStart := parseDate(startDate)
	end, okEnd := parseDate(endDate)
	if !okStart || !okEnd {
		return "", "", &dto.ErrorResponse{
			Message: "startDate and endDate must be valid date strings",
		}
	}

	if start.After(end) {
		return "", "", &dto.ErrorResponse{
			Message: "startDate must be less than or equal to endDate",
		}
	}

	return start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339), nil
}

func (h *OrderHandler) GetPartnerOrders(c echo.Context) error {
	ctx := c.Request().Context()

	start, end, errResp := dateRangeFromQuery(c)
	if errResp != nil {
		return c.JSON(http.StatusBadRequest, errResp)
	}

	result, err := h.orderService.FindPartnerOrders(ctx, start, end)
	if err != nil {
		return internalError(c, "failed to read orders from the store", err)
	}

	return c.JSON(http.StatusOK, dto.ListOrdersResponse{
		Success:   true,
		TableName: result.TableName,
		Count:     result.Count,
		Items:     result.Items,
	})
}

func (h *OrderHandler) GetInProgressOrders(c echo.Context) error {
	ctx := c.Request().Context()

	start, end, errResp := dateRangeFromQuery(c)
	if errResp != nil {
		return c.JSON(http.StatusBadRequest, errResp)
	}

	result, err := h.orderService.FindInProgressOrders(ctx, start, end)
	if err != nil {
		return internalError(c, "failed to read orders from the store", err)
	}

	return c.JSON(http.StatusOK, dto.ListOrdersResponse{
		Success:   true,
		TableName: result.TableName,
		Count:     result.Count,
		Items:     result.Items,
	})
}

func (h *OrderHandler) ForceRefund(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ForceRefundRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "invalid request body",
		})
	}

	req.OrderID = strings.TrimSpace(req.OrderID)
	if req.OrderID == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "orderId is required",
		})
	}
	if req.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "amount must be a positive number",
		})
	}

	result, err := h.orderService.ForceRefund(ctx, req.OrderID, req.Amount)
	if err != nil {
		return internalError(c, "failed to force refund order", err)
	}

	if !result.Success {
		switch result.Reason {
		case service.ReasonOrderNotFound:
			return c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Message: "order not found",
			})
		case service.ReasonOrderPriceInvalid:
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Message: "order price is invalid",
			})
		default: // AMOUNT_EXCEEDS_PRICE
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Message: "amount exceeds order price",
			})
		}
	}

	return c.JSON(http.StatusOK, dto.ForceRefundResponse{
		Success: true,
		Item:    result.Order,
	})
}

func (h *OrderHandler) RecoverOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RecoveryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "invalid request body",
		})
	}

	req.OrderID = strings.TrimSpace(req.OrderID)
	if req.OrderID == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "orderId is required",
		})
	}

	result, err := h.orderService.RecoverOrder(ctx, req.OrderID)
	if err != nil {
		return internalError(c, "failed to recover order", err)
	}

	if !result.Success {
		switch result.Reason {
		case service.ReasonOrderNotFound:
			return c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Message: "order not found",
			})
		case service.ReasonStatusNotCreated:
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Message: "order status is not CREATED",
			})
		case service.ReasonMidtransFailed:
			return c.JSON(http.StatusBadGateway, dto.ErrorResponse{
				Message: "failed to fetch transaction status from Midtrans",
				Error:   result.ReasonDetail,
			})
		default: // PRODUCT_NOT_FOUND
			return c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Message: "productCode not found in ProductMapping table",
			})
		}
	}

	return c.JSON(http.StatusOK, dto.RecoveryResponse{
		Success:         true,
		Action:          result.Action,
		Order:           result.Order,
		GatewayResponse: result.GatewayResponse,
		InvokedTask:     result.InvokedTask,
	})
}
