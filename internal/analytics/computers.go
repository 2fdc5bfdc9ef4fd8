package analytics

import (
	"github.com/grovemarket/marketplace-manager/internal/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// topProductsLimit is how many entries a top-N ranking returns at most.
const topProductsLimit = 5

var hundred = decimal.NewFromInt(100)

// scopedItems decodes an order's items and keeps those visible in the
// catalog scope: items resolving to any known product globally, or to
// the seller's own products when a seller scope is set. Filtering runs
// before any aggregation step.
func scopedItems(order *entity.Order, cat *catalog, sellerID *int) []entity.OrderedItem {
	all := extractOrderItems(order.OrderedItems)
	items := make([]entity.OrderedItem, 0, len(all))
	for _, item := range all {
		if cat.visible(item.ProductID, sellerID) {
			items = append(items, item)
		}
	}
	return items
}

// hasSellerItem reports whether any decoded line item carries the given
// seller id. This is the item-level ownership notion, distinct from
// catalog ownership; the two are deliberately not merged.
func hasSellerItem(order *entity.Order, sellerID int) bool {
	for _, item := range extractOrderItems(order.OrderedItems) {
		if item.SellerID != nil && *item.SellerID == sellerID {
			return true
		}
	}
	return false
}

// orderRevenue sums price × quantity over the order's scope-visible
// items. Items with no resolvable price contribute nothing.
func orderRevenue(order *entity.Order, cat *catalog, sellerID *int) decimal.Decimal {
	total := decimal.Zero
	for _, item := range scopedItems(order, cat, sellerID) {
		price, ok := cat.priceOf(item.ProductID)
		if !ok {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func computeTotalRevenue(orders []entity.Order, cat *catalog, sellerID *int) entity.TotalRevenueMetric {
	total := decimal.Zero
	for i := range orders {
		total = total.Add(orderRevenue(&orders[i], cat, sellerID))
	}
	return entity.TotalRevenueMetric{Total: total}
}

// computeMonthlyRevenue buckets revenue by the first-of-month of each
// order. Months with no orders are omitted rather than zero-filled, and
// so is a month whose orders all resolve to zero revenue (only unknown
// or zero-priced products): the series carries revenue-bearing months
// only.
func computeMonthlyRevenue(orders []entity.Order, cat *catalog, sellerID *int) entity.MonthlyRevenueMetric {
	buckets := make(map[int64]*entity.MonthlyRevenuePoint)
	for i := range orders {
		rev := orderRevenue(&orders[i], cat, sellerID)
		if rev.IsZero() {
			continue
		}
		month := firstOfMonth(orders[i].OrderedAt)
		key := month.Unix()
		if p, ok := buckets[key]; ok {
			p.Revenue = p.Revenue.Add(rev)
		} else {
			buckets[key] = &entity.MonthlyRevenuePoint{Month: month, Revenue: rev}
		}
	}
	points := make([]entity.MonthlyRevenuePoint, 0, len(buckets))
	for _, p := range buckets {
		points = append(points, *p)
	}
	slices.SortFunc(points, func(a, b entity.MonthlyRevenuePoint) int {
		return a.Month.Compare(b.Month)
	})
	return entity.MonthlyRevenueMetric{Points: points}
}

func computeAverageMonthlyRevenue(orders []entity.Order, cat *catalog, sellerID *int, tr entity.TimeRange) entity.AverageMonthlyRevenueMetric {
	total := computeTotalRevenue(orders, cat, sellerID).Total
	months := monthsBetween(tr.From, tr.To)
	return entity.AverageMonthlyRevenueMetric{
		Average: total.Div(decimal.NewFromInt(int64(months))).Round(2),
	}
}

// computeUniqueBuyers counts distinct user ids across orders that carry
// at least one scope-visible item. An order with only unknown or invalid
// items contributes no user.
func computeUniqueBuyers(orders []entity.Order, cat *catalog, sellerID *int) entity.UniqueBuyersMetric {
	users := make(map[int]bool)
	for i := range orders {
		if len(scopedItems(&orders[i], cat, sellerID)) > 0 {
			users[orders[i].UserID] = true
		}
	}
	return entity.UniqueBuyersMetric{Count: len(users)}
}

// countByOrderingStatus counts orders whose ordering_status exactly
// equals the literal and that carry at least one scope-visible item.
func countByOrderingStatus(orders []entity.Order, cat *catalog, sellerID *int, status string) entity.OrderCountMetric {
	n := 0
	for i := range orders {
		if orders[i].OrderingStatus != status {
			continue
		}
		if len(scopedItems(&orders[i], cat, sellerID)) > 0 {
			n++
		}
	}
	return entity.OrderCountMetric{Count: n}
}

func countByFulfillmentStatus(orders []entity.Order, cat *catalog, sellerID *int, status string) entity.OrderCountMetric {
	n := 0
	for i := range orders {
		if orders[i].FulfillmentStatus != status {
			continue
		}
		if len(scopedItems(&orders[i], cat, sellerID)) > 0 {
			n++
		}
	}
	return entity.OrderCountMetric{Count: n}
}

// accumulate is the shared top-N accumulator: productID → value, with
// encounter order retained so the stable sort breaks ties by it.
func accumulateTopProducts(orders []entity.Order, cat *catalog, sellerID *int, value func(item entity.OrderedItem) decimal.Decimal) entity.TopProductsMetric {
	totals := make(map[string]decimal.Decimal)
	encounter := make([]string, 0)
	for i := range orders {
		for _, item := range scopedItems(&orders[i], cat, sellerID) {
			v := value(item)
			if cur, ok := totals[item.ProductID]; ok {
				totals[item.ProductID] = cur.Add(v)
			} else {
				totals[item.ProductID] = v
				encounter = append(encounter, item.ProductID)
			}
		}
	}

	ranking := make([]entity.ProductRank, 0, len(encounter))
	for _, id := range encounter {
		ranking = append(ranking, entity.ProductRank{ProductID: id, Value: totals[id]})
	}
	slices.SortStableFunc(ranking, func(a, b entity.ProductRank) int {
		return b.Value.Cmp(a.Value)
	})
	if len(ranking) > topProductsLimit {
		ranking = ranking[:topProductsLimit]
	}
	return entity.TopProductsMetric{Ranking: ranking}
}

func computeTopProductsByRevenue(orders []entity.Order, cat *catalog, sellerID *int) entity.TopProductsMetric {
	return accumulateTopProducts(orders, cat, sellerID, func(item entity.OrderedItem) decimal.Decimal {
		price, _ := cat.priceOf(item.ProductID)
		return price.Mul(decimal.NewFromInt(int64(item.Quantity)))
	})
}

func computeTopProductsByQuantity(orders []entity.Order, cat *catalog, sellerID *int) entity.TopProductsMetric {
	return accumulateTopProducts(orders, cat, sellerID, func(item entity.OrderedItem) decimal.Decimal {
		return decimal.NewFromInt(int64(item.Quantity))
	})
}

// qualifyingStatusCount counts orders with the given ordering_status,
// scoped by the item-level seller id when a seller scope is set. The
// percentage-change metrics use this count without a catalog join.
func qualifyingStatusCount(orders []entity.Order, sellerID *int, status string) int {
	n := 0
	for i := range orders {
		if orders[i].OrderingStatus != status {
			continue
		}
		if sellerID != nil && !hasSellerItem(&orders[i], *sellerID) {
			continue
		}
		n++
	}
	return n
}

// percentageChange is ((current − previous) / previous) × 100 rounded to
// two decimal places. A zero previous period yields 100 when the current
// one has orders and 0 otherwise, signaling direction without dividing
// by zero.
func percentageChange(current, previous int) decimal.Decimal {
	if previous == 0 {
		if current > 0 {
			return hundred
		}
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(current - previous)).
		Div(decimal.NewFromInt(int64(previous))).
		Mul(hundred).
		Round(2)
}

// countWithSellerItem counts orders carrying at least one line item of
// the given seller.
func countWithSellerItem(orders []entity.Order, sellerID int) int {
	n := 0
	for i := range orders {
		if hasSellerItem(&orders[i], sellerID) {
			n++
		}
	}
	return n
}

// filterRecentOrders keeps, from an already most-recent-first listing,
// the orders with at least one scope-visible item. The listing may end
// up shorter than requested, or empty.
func filterRecentOrders(orders []entity.Order, cat *catalog, sellerID *int) entity.RecentOrdersMetric {
	recent := make([]entity.RecentOrder, 0, len(orders))
	for i := range orders {
		items := scopedItems(&orders[i], cat, sellerID)
		if len(items) == 0 {
			continue
		}
		o := &orders[i]
		recent = append(recent, entity.RecentOrder{
			ID:                o.ID,
			UUID:              o.UUID,
			UserID:            o.UserID,
			OrderedAt:         o.OrderedAt,
			OrderingStatus:    o.OrderingStatus,
			FulfillmentStatus: o.FulfillmentStatus,
			Items:             items,
		})
	}
	return entity.RecentOrdersMetric{Orders: recent}
}
