package store

import (
	"context"
	"fmt"

	"github.com/grovemarket/marketplace-manager/internal/dependency"
	"github.com/grovemarket/marketplace-manager/internal/entity"
)

type productsStore struct {
	*MYSQLStore
}

func (ms *MYSQLStore) Products() dependency.Products {
	return &productsStore{MYSQLStore: ms}
}

// GetProductsByIds resolves the full id set in one batched query. Ids
// with no matching row are simply absent from the result; callers treat
// them as unknown products, not as an error.
func (ms *MYSQLStore) GetProductsByIds(ctx context.Context, ids []string) ([]entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, name, price, seller_id
		FROM products
		WHERE id IN (:ids)
	`
	products, err := QueryListNamed[entity.Product](ctx, ms.DB(), query, map[string]any{
		"ids": ids,
	})
	if err != nil {
		return nil, fmt.Errorf("get products by ids: %w", err)
	}
	return products, nil
}

func (ms *MYSQLStore) CountProducts(ctx context.Context, sellerID *int) (int, error) {
	query := `SELECT COUNT(*) FROM products`
	params := map[string]any{}
	if sellerID != nil {
		query += ` WHERE seller_id = :sellerId`
		params["sellerId"] = *sellerID
	}
	count, err := QueryCountNamed(ctx, ms.DB(), query, params)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}
