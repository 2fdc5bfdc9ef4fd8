package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/grovemarket/marketplace-manager/internal/dependency"
	"github.com/grovemarket/marketplace-manager/internal/entity"
)

type ordersStore struct {
	*MYSQLStore
}

func (ms *MYSQLStore) Orders() dependency.Orders {
	return &ordersStore{MYSQLStore: ms}
}

// GetOrdersInRange returns the orders placed in [tr.From, tr.To). This is
// the single windowed query an analytics computation issues; per-metric
// filtering happens in memory.
func (ms *MYSQLStore) GetOrdersInRange(ctx context.Context, tr entity.TimeRange) ([]entity.Order, error) {
	query := `
		SELECT id, uuid, user_id, ordered_at, ordered_items, ordering_status, fulfillment_status
		FROM orders
		WHERE ordered_at >= :from AND ordered_at < :to
		ORDER BY ordered_at
	`
	orders, err := QueryListNamed[entity.Order](ctx, ms.DB(), query, map[string]any{
		"from": tr.From,
		"to":   tr.To,
	})
	if err != nil {
		return nil, fmt.Errorf("get orders in range: %w", err)
	}
	return orders, nil
}

// GetRecentOrders returns the most recent orders by ordered_at over the
// entire table, deliberately ignoring any resolved window.
func (ms *MYSQLStore) GetRecentOrders(ctx context.Context, limit int) ([]entity.Order, error) {
	query := `
		SELECT id, uuid, user_id, ordered_at, ordered_items, ordering_status, fulfillment_status
		FROM orders
		ORDER BY ordered_at DESC
		LIMIT :limit
	`
	orders, err := QueryListNamed[entity.Order](ctx, ms.DB(), query, map[string]any{
		"limit": limit,
	})
	if err != nil {
		return nil, fmt.Errorf("get recent orders: %w", err)
	}
	return orders, nil
}

func (ms *MYSQLStore) CountOrders(ctx context.Context, filter entity.OrderCountFilter) (int, error) {
	conditions := []string{"1 = 1"}
	params := map[string]any{}
	if filter.OrderingStatus != "" {
		conditions = append(conditions, "ordering_status = :orderingStatus")
		params["orderingStatus"] = filter.OrderingStatus
	}
	if filter.FulfillmentStatus != "" {
		conditions = append(conditions, "fulfillment_status = :fulfillmentStatus")
		params["fulfillmentStatus"] = filter.FulfillmentStatus
	}
	if !filter.Since.IsZero() {
		conditions = append(conditions, "ordered_at >= :since")
		params["since"] = filter.Since
	}

	query := fmt.Sprintf(`SELECT COUNT(*) FROM orders WHERE %s`, strings.Join(conditions, " AND "))
	count, err := QueryCountNamed(ctx, ms.DB(), query, params)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return count, nil
}
