package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"arta-api/internal/model"
)

type OrderRepository interface {
	GetByOrderID(ctx context.Context, orderID string) (*model.Order, error)
	FindPartnerOrders(ctx context.Context, startDate, endDate string) ([]model.Order, error)
	QueryByStatusAndDateRange(ctx context.Context, status model.OrderStatus, startDate, endDate, cursor string, limit int) ([]model.Order, string, error)
	UpdateStatusIfCreated(ctx context.Context, orderID string, newStatus model.OrderStatus) (*model.Order, bool, error)
	UpdateForceRefund(ctx context.Context, orderID string, amount float64) (*model.Order, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) GetByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&order).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// FindPartnerOrders is the filtered scan behind the partner listing: orders
// created inside the range that carry a partner marker.
func (r *orderRepoImpl) FindPartnerOrders(ctx context.Context, startDate, endDate string) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Where("partner IS NOT NULL AND partner <> ''").
		Order("created_at, order_id").
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

// QueryByStatusAndDateRange reads one page of the status index. A full page
// comes back with a cursor for the next one; the last page's cursor is
// empty. Callers loop until the cursor runs out, exactly like the document
// store this query shape comes from.
func (r *orderRepoImpl) QueryByStatusAndDateRange(ctx context.Context, status model.OrderStatus, startDate, endDate, cursor string, limit int) ([]model.Order, string, error) {
	q := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Where("created_at BETWEEN ? AND ?", startDate, endDate)

	if cursor != "" {
		key, err := decodeCursor(cursor)
		if err != nil {
			return nil, "", err
		}
		q = q.Where(
			"created_at > ? OR (created_at = ? AND order_id > ?)",
			key.CreatedAt, key.CreatedAt, key.OrderID,
		)
	}

	var orders []model.Order
	err := q.Order("created_at, order_id").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, "", err
	}

	nextCursor := ""
	if len(orders) == limit {
		last := orders[len(orders)-1]
		nextCursor = encodeCursor(pageKey{
			CreatedAt: last.CreatedAt,
			OrderID:   last.OrderID,
		})
	}

	return orders, nextCursor, nil
}

// UpdateStatusIfCreated performs the conditional status transition: the
// update only lands while the row is still CREATED. Returns the post-update
// row and whether the condition matched.
func (r *orderRepoImpl) UpdateStatusIfCreated(ctx context.Context, orderID string, newStatus model.OrderStatus) (*model.Order, bool, error) {
	var order model.Order
	matched := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Order{}).
			Where("order_id = ?", orderID).
			Where("status = ?", string(model.StatusCreated)).
			Update("status", string(newStatus))

		if result.Error != nil {
			return result.Error
		}
		matched = result.RowsAffected > 0

		return tx.Where("order_id = ?", orderID).First(&order).Error
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return &order, matched, nil
}

func (r *orderRepoImpl) UpdateForceRefund(ctx context.Context, orderID string, amount float64) (*model.Order, error) {
	var order model.Order

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Order{}).
			Where("order_id = ?", orderID).
			Updates(map[string]interface{}{
				"refund":       amount,
				"force_refund": true,
			})

		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Where("order_id = ?", orderID).First(&order).Error
	})

	if err != nil {
		return nil, err
	}

	return &order, nil
}
