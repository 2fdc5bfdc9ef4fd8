// Package analytics is the seller/admin aggregation engine: it turns raw
// order and product records into time-windowed business metrics. It is
// request scoped and stateless; every computation re-reads orders and
// products so the numbers are always current.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/grovemarket/marketplace-manager/internal/dependency"
	"github.com/grovemarket/marketplace-manager/internal/entity"
	"github.com/zoobzio/clockz"
	"golang.org/x/sync/errgroup"
)

// recentOrdersLimit is how many orders the recent-orders listing starts
// from before the known-product filter runs.
const recentOrdersLimit = 10

// weeklyWindowDays is the trailing window of the weeklyOrders metric,
// anchored at the current moment rather than the resolved range.
const weeklyWindowDays = 7

// Service is the single entry point of the engine. One Compute call
// performs one metric computation against the data collaborator.
type Service struct {
	repo  dependency.Repository
	clock clockz.Clock
}

func New(repo dependency.Repository) *Service {
	return &Service{repo: repo}
}

// WithClock sets a custom clock for testing.
func (s *Service) WithClock(clock clockz.Clock) *Service {
	s.clock = clock
	return s
}

func (s *Service) getClock() clockz.Clock {
	if s.clock == nil {
		return clockz.RealClock
	}
	return s.clock
}

// Compute resolves the date window, dispatches the metric computer and
// returns its payload. It fails fast on an unrecognized metric type and
// on an unparseable month string; per-record malformed data never fails
// a computation. Collaborator errors propagate as-is, untried again.
func (s *Service) Compute(ctx context.Context, q entity.AnalyticsQuery) (entity.MetricPayload, error) {
	now := s.getClock().Now()

	tr, err := resolveTimeRange(q.StartMonthYear, q.EndMonthYear, now)
	if err != nil {
		return nil, err
	}

	if !entity.ValidMetricTypes[q.MetricType] {
		return nil, &UnknownMetricTypeError{Type: q.MetricType.String()}
	}

	switch q.MetricType {
	case entity.MetricTotalRevenue:
		orders, cat, err := s.windowWithCatalog(ctx, tr)
		if err != nil {
			return nil, err
		}
		return computeTotalRevenue(orders, cat, q.SellerID), nil

	case entity.MetricMonthlyRevenue:
		orders, cat, err := s.windowWithCatalog(ctx, tr)
		if err != nil {
			return nil, err
		}
		return computeMonthlyRevenue(orders, cat, q.SellerID), nil

	case entity.MetricAverageMonthlyRevenue:
		orders, cat, err := s.windowWithCatalog(ctx, tr)
		if err != nil {
			return nil, err
		}
		return computeAverageMonthlyRevenue(orders, cat, q.SellerID, tr), nil

	case entity.MetricTotalUsers:
		orders, cat, err := s.windowWithCatalog(ctx, tr)
		if err != nil {
			return nil, err
		}
		return computeUniqueBuyers(orders, cat, q.SellerID), nil

	case entity.MetricTotalOrdersFulfilled:
		orders, cat, err := s.windowWithCatalog(ctx, tr)
		if err != nil {
			return nil, err
		}
		return countByFulfillmentStatus(orders, cat, q.SellerID, entity.FulfillmentStatusFulfilled), nil

	case entity.MetricTotalOrdersCancelled:
		orders, cat, err := s.windowWithCatalog(ctx, tr)
		if err != nil {
			return nil, err
		}
		return countByOrderingStatus(orders, cat, q.SellerID, entity.OrderingStatusCancelled), nil

	case entity.MetricFulfilledOrders:
		orders, cat, err := s.windowWithCatalog(ctx, tr)
		if err != nil {
			return nil, err
		}
		return countByOrderingStatus(orders, cat, q.SellerID, entity.OrderingStatusCompleted), nil

	case entity.MetricTopRevenueGeneratingProduct:
		orders, cat, err := s.windowWithCatalog(ctx, tr)
		if err != nil {
			return nil, err
		}
		return computeTopProductsByRevenue(orders, cat, q.SellerID), nil

	case entity.MetricTopSellingProduct:
		orders, cat, err := s.windowWithCatalog(ctx, tr)
		if err != nil {
			return nil, err
		}
		return computeTopProductsByQuantity(orders, cat, q.SellerID), nil

	case entity.MetricTotalProducts:
		count, err := s.repo.Products().CountProducts(ctx, q.SellerID)
		if err != nil {
			return nil, fmt.Errorf("count products: %w", err)
		}
		return entity.ProductCountMetric{Count: count}, nil

	case entity.MetricWeeklyOrders:
		return s.computeWeeklyOrders(ctx, now, q.SellerID)

	case entity.MetricRecentOrders:
		return s.computeRecentOrders(ctx, q.SellerID)

	case entity.MetricPercentageOrdersLost:
		return s.computePercentageChange(ctx, tr, q.SellerID, entity.OrderingStatusCancelled)

	case entity.MetricPercentageOrdersGained:
		return s.computePercentageChange(ctx, tr, q.SellerID, entity.OrderingStatusCompleted)
	}

	return nil, &UnknownMetricTypeError{Type: q.MetricType.String()}
}

// windowWithCatalog performs the shared fetch-extract-join pipeline: one
// windowed order query, then one batched product lookup for the union of
// referenced ids. The catalog is only built once the full id set across
// the window is collected.
func (s *Service) windowWithCatalog(ctx context.Context, tr entity.TimeRange) ([]entity.Order, *catalog, error) {
	orders, err := s.repo.Orders().GetOrdersInRange(ctx, tr)
	if err != nil {
		return nil, nil, fmt.Errorf("get orders in range: %w", err)
	}
	cat, err := buildCatalog(ctx, s.repo.Products(), collectProductIDs(orders))
	if err != nil {
		return nil, nil, err
	}
	return orders, cat, nil
}

func (s *Service) computeWeeklyOrders(ctx context.Context, now time.Time, sellerID *int) (entity.MetricPayload, error) {
	since := now.AddDate(0, 0, -weeklyWindowDays)
	if sellerID == nil {
		count, err := s.repo.Orders().CountOrders(ctx, entity.OrderCountFilter{Since: since})
		if err != nil {
			return nil, fmt.Errorf("count orders: %w", err)
		}
		return entity.OrderCountMetric{Count: count}, nil
	}
	orders, err := s.repo.Orders().GetOrdersInRange(ctx, entity.TimeRange{From: since, To: now})
	if err != nil {
		return nil, fmt.Errorf("get orders in range: %w", err)
	}
	return entity.OrderCountMetric{Count: countWithSellerItem(orders, *sellerID)}, nil
}

// computeRecentOrders is deliberately unscoped by the resolved window:
// it always lists the most recent orders of the entire dataset.
func (s *Service) computeRecentOrders(ctx context.Context, sellerID *int) (entity.MetricPayload, error) {
	orders, err := s.repo.Orders().GetRecentOrders(ctx, recentOrdersLimit)
	if err != nil {
		return nil, fmt.Errorf("get recent orders: %w", err)
	}
	cat, err := buildCatalog(ctx, s.repo.Products(), collectProductIDs(orders))
	if err != nil {
		return nil, err
	}
	return filterRecentOrders(orders, cat, sellerID), nil
}

// computePercentageChange fetches the current window and the preceding
// window of identical month span concurrently; the two sub-queries are
// independent network round-trips and join only at the barrier below.
func (s *Service) computePercentageChange(ctx context.Context, tr entity.TimeRange, sellerID *int, status string) (entity.MetricPayload, error) {
	prev := shiftBackOneMonth(tr)

	var current, previous []entity.Order
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.repo.Orders().GetOrdersInRange(gctx, tr)
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = s.repo.Orders().GetOrdersInRange(gctx, prev)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("get orders in range: %w", err)
	}

	cur := qualifyingStatusCount(current, sellerID, status)
	prv := qualifyingStatusCount(previous, sellerID, status)
	return entity.PercentageChangeMetric{
		Current:   cur,
		Previous:  prv,
		ChangePct: percentageChange(cur, prv),
	}, nil
}
