package dto

import (
	"encoding/json"
	"time"

	"github.com/grovemarket/marketplace-manager/internal/entity"
)

// monthKeyFormat renders monthly bucket keys as ISO-8601 UTC instants
// with millisecond precision, e.g. "2024-03-01T00:00:00.000Z".
const monthKeyFormat = "2006-01-02T15:04:05.000Z"

// MetricResponse is the engine's output contract: a metric-specific
// payload under a single data key.
type MetricResponse struct {
	Data any `json:"data"`
}

// ProductPair marshals as a two-element array [productId, value], the
// shape the dashboard consumes for rankings.
type ProductPair struct {
	ProductID string
	Value     any
}

func (p ProductPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.ProductID, p.Value})
}

type MonthlyRevenuePoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type RecentOrder struct {
	ID                int                  `json:"id"`
	UUID              string               `json:"uuid"`
	UserID            int                  `json:"userId"`
	OrderedAt         time.Time            `json:"orderedAt"`
	OrderingStatus    string               `json:"orderingStatus"`
	FulfillmentStatus string               `json:"orderFulfillmentStatus"`
	Items             []entity.OrderedItem `json:"orderedItems"`
}

// ConvertMetricPayload shapes an engine payload into the fixed wire form
// of its metric type.
func ConvertMetricPayload(mt entity.MetricType, payload entity.MetricPayload) MetricResponse {
	switch p := payload.(type) {
	case entity.TotalRevenueMetric:
		return MetricResponse{Data: map[string]float64{"totalRevenue": p.Total.InexactFloat64()}}

	case entity.MonthlyRevenueMetric:
		points := make([]MonthlyRevenuePoint, 0, len(p.Points))
		for _, pt := range p.Points {
			points = append(points, MonthlyRevenuePoint{
				Month:   pt.Month.UTC().Format(monthKeyFormat),
				Revenue: pt.Revenue.InexactFloat64(),
			})
		}
		return MetricResponse{Data: points}

	case entity.AverageMonthlyRevenueMetric:
		return MetricResponse{Data: map[string]float64{"averageMonthlyRevenue": p.Average.InexactFloat64()}}

	case entity.OrderCountMetric:
		return MetricResponse{Data: map[string]int{countKey(mt): p.Count}}

	case entity.UniqueBuyersMetric:
		return MetricResponse{Data: map[string]int{"totalUsers": p.Count}}

	case entity.ProductCountMetric:
		return MetricResponse{Data: map[string]int{"totalProducts": p.Count}}

	case entity.TopProductsMetric:
		pairs := make([]ProductPair, 0, len(p.Ranking))
		for _, r := range p.Ranking {
			if mt == entity.MetricTopSellingProduct {
				pairs = append(pairs, ProductPair{ProductID: r.ProductID, Value: r.Value.IntPart()})
			} else {
				pairs = append(pairs, ProductPair{ProductID: r.ProductID, Value: r.Value.InexactFloat64()})
			}
		}
		key := "topRevenueGeneratingProducts"
		if mt == entity.MetricTopSellingProduct {
			key = "topSellingProducts"
		}
		return MetricResponse{Data: map[string][]ProductPair{key: pairs}}

	case entity.PercentageChangeMetric:
		return MetricResponse{Data: map[string]any{
			"percentage": p.ChangePct.InexactFloat64(),
			"current":    p.Current,
			"previous":   p.Previous,
		}}

	case entity.RecentOrdersMetric:
		orders := make([]RecentOrder, 0, len(p.Orders))
		for _, o := range p.Orders {
			orders = append(orders, RecentOrder{
				ID:                o.ID,
				UUID:              o.UUID,
				UserID:            o.UserID,
				OrderedAt:         o.OrderedAt,
				OrderingStatus:    o.OrderingStatus,
				FulfillmentStatus: o.FulfillmentStatus,
				Items:             o.Items,
			})
		}
		return MetricResponse{Data: orders}
	}

	return MetricResponse{}
}

func countKey(mt entity.MetricType) string {
	switch mt {
	case entity.MetricTotalOrdersFulfilled:
		return "totalOrdersFulfilled"
	case entity.MetricTotalOrdersCancelled:
		return "totalOrdersCancelled"
	case entity.MetricFulfilledOrders:
		return "fulfilledOrders"
	case entity.MetricWeeklyOrders:
		return "weeklyOrders"
	}
	return "count"
}
