package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MetricType is the closed set of report kinds the analytics engine can
// compute. Adding a metric means adding a constant here and a case to the
// facade's dispatch switch; the compiler keeps the two in sync.
type MetricType string

const (
	MetricMonthlyRevenue              MetricType = "monthlyRevenue"
	MetricAverageMonthlyRevenue       MetricType = "averageMonthlyRevenue"
	MetricTotalRevenue                MetricType = "totalRevenue"
	MetricTotalOrdersFulfilled        MetricType = "totalOrdersFulfilled"
	MetricTotalOrdersCancelled        MetricType = "totalOrdersCancelled"
	MetricTopRevenueGeneratingProduct MetricType = "topRevenueGeneratingProduct"
	MetricTopSellingProduct           MetricType = "topSellingProduct"
	MetricTotalUsers                  MetricType = "totalUsers"
	MetricTotalProducts               MetricType = "totalProducts"
	MetricWeeklyOrders                MetricType = "weeklyOrders"
	MetricFulfilledOrders             MetricType = "fulfilledOrders"
	MetricRecentOrders                MetricType = "recentOrders"
	MetricPercentageOrdersLost        MetricType = "percentageOrdersLost"
	MetricPercentageOrdersGained      MetricType = "percentageOrdersGained"
)

func (mt MetricType) String() string {
	return string(mt)
}

// ValidMetricTypes is the lookup set for request validation.
var ValidMetricTypes = map[MetricType]bool{
	MetricMonthlyRevenue:              true,
	MetricAverageMonthlyRevenue:       true,
	MetricTotalRevenue:                true,
	MetricTotalOrdersFulfilled:        true,
	MetricTotalOrdersCancelled:        true,
	MetricTopRevenueGeneratingProduct: true,
	MetricTopSellingProduct:           true,
	MetricTotalUsers:                  true,
	MetricTotalProducts:               true,
	MetricWeeklyOrders:                true,
	MetricFulfilledOrders:             true,
	MetricRecentOrders:                true,
	MetricPercentageOrdersLost:        true,
	MetricPercentageOrdersGained:      true,
}

// TimeRange is the window order-based metrics are computed over.
// From is inclusive, To exclusive.
type TimeRange struct {
	From time.Time
	To   time.Time
}

// AnalyticsQuery is the caller-supplied parameter bundle for one
// computation. StartMonthYear/EndMonthYear are "YYYY-MM" or empty.
// SellerID, when set, scopes the computation to one seller.
type AnalyticsQuery struct {
	MetricType     MetricType `valid:"required"`
	StartMonthYear string     `valid:"-"`
	EndMonthYear   string     `valid:"-"`
	SellerID       *int       `valid:"-"`
}

// MetricPayload is the tagged result union. Each computer produces
// exactly one of the concrete payload types below.
type MetricPayload interface {
	isMetricPayload()
}

// TotalRevenueMetric carries a single revenue sum.
type TotalRevenueMetric struct {
	Total decimal.Decimal
}

// MonthlyRevenuePoint is one first-of-month bucket of the revenue series.
// Buckets with zero orders are omitted from the series, not zero-filled.
type MonthlyRevenuePoint struct {
	Month   time.Time
	Revenue decimal.Decimal
}

type MonthlyRevenueMetric struct {
	Points []MonthlyRevenuePoint
}

// AverageMonthlyRevenueMetric is total revenue over the calendar-month
// span of the window.
type AverageMonthlyRevenueMetric struct {
	Average decimal.Decimal
}

// OrderCountMetric is a plain order count (fulfilled, cancelled,
// completed, weekly).
type OrderCountMetric struct {
	Count int
}

type UniqueBuyersMetric struct {
	Count int
}

type ProductCountMetric struct {
	Count int
}

// ProductRank is one entry of a top-N ranking, ordered descending by
// the accumulated value.
type ProductRank struct {
	ProductID string
	Value     decimal.Decimal
}

type TopProductsMetric struct {
	Ranking []ProductRank
}

// PercentageChangeMetric is the period-over-period change of a
// qualifying order count, rounded to two decimal places.
type PercentageChangeMetric struct {
	Current   int
	Previous  int
	ChangePct decimal.Decimal
}

// RecentOrder is one entry of the recent-orders listing.
type RecentOrder struct {
	ID                int
	UUID              string
	UserID            int
	OrderedAt         time.Time
	OrderingStatus    string
	FulfillmentStatus string
	Items             []OrderedItem
}

type RecentOrdersMetric struct {
	Orders []RecentOrder
}

func (TotalRevenueMetric) isMetricPayload()          {}
func (MonthlyRevenueMetric) isMetricPayload()        {}
func (AverageMonthlyRevenueMetric) isMetricPayload() {}
func (OrderCountMetric) isMetricPayload()            {}
func (UniqueBuyersMetric) isMetricPayload()          {}
func (ProductCountMetric) isMetricPayload()          {}
func (TopProductsMetric) isMetricPayload()           {}
func (PercentageChangeMetric) isMetricPayload()      {}
func (RecentOrdersMetric) isMetricPayload()          {}
