package analytics

import (
	"context"
	"fmt"

	"github.com/grovemarket/marketplace-manager/internal/dependency"
	"github.com/grovemarket/marketplace-manager/internal/entity"
	"github.com/shopspring/decimal"
)

// catalog is the joined product context for one computation: price and
// seller ownership for every product id referenced by orders in the
// window. Orders referencing ids absent from the catalog are silently
// excluded from sums instead of raising.
type catalog struct {
	products map[string]entity.Product
}

// buildCatalog resolves the full id set in exactly one batched lookup.
// Cost is O(distinct products), never O(orders × items per order).
func buildCatalog(ctx context.Context, products dependency.Products, ids []string) (*catalog, error) {
	c := &catalog{products: make(map[string]entity.Product, len(ids))}
	if len(ids) == 0 {
		return c, nil
	}
	list, err := products.GetProductsByIds(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get products by ids: %w", err)
	}
	for _, p := range list {
		c.products[p.ID] = p
	}
	return c, nil
}

// priceOf returns the product price and whether the id resolves at all.
func (c *catalog) priceOf(id string) (decimal.Decimal, bool) {
	p, ok := c.products[id]
	if !ok {
		return decimal.Zero, false
	}
	return p.Price, true
}

// belongsToSeller reports whether the id resolves to a product owned by
// the given seller. Unknown ids are nobody's.
func (c *catalog) belongsToSeller(id string, sellerID int) bool {
	p, ok := c.products[id]
	return ok && p.OwnedBySeller(sellerID)
}

// visible reports whether the id resolves within the given scope: any
// known product globally, or the seller's own products when scoped.
func (c *catalog) visible(id string, sellerID *int) bool {
	if sellerID == nil {
		_, ok := c.products[id]
		return ok
	}
	return c.belongsToSeller(id, *sellerID)
}

// collectProductIDs accumulates the distinct product ids referenced by
// the decoded items of every order in the window. The union must be
// complete before the catalog join starts; a partial join would silently
// under-price.
func collectProductIDs(orders []entity.Order) []string {
	seen := make(map[string]bool)
	ids := make([]string, 0)
	for i := range orders {
		for _, item := range extractOrderItems(orders[i].OrderedItems) {
			if !seen[item.ProductID] {
				seen[item.ProductID] = true
				ids = append(ids, item.ProductID)
			}
		}
	}
	return ids
}
