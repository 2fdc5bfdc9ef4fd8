package entity

import (
	"encoding/json"
	"time"
)

// Order represents the orders table. OrderedItems is kept as the raw
// blob the marketplace wrote; historical rows carry legacy shapes, so
// decoding is deferred to the analytics item extractor.
type Order struct {
	ID                int             `db:"id"`
	UUID              string          `db:"uuid"`
	UserID            int             `db:"user_id"`
	OrderedAt         time.Time       `db:"ordered_at"`
	OrderedItems      json.RawMessage `db:"ordered_items"`
	OrderingStatus    string          `db:"ordering_status"`
	FulfillmentStatus string          `db:"fulfillment_status"`
}

// OrderedItem is one decoded line item of an order. SellerID is only
// present on rows written after seller attribution was introduced.
type OrderedItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	SellerID  *int   `json:"sellerId,omitempty"`
}

// Observed ordering_status values. Comparison is case-sensitive.
const (
	OrderingStatusCompleted = "Completed"
	OrderingStatusCancelled = "Cancelled"
)

// Observed fulfillment_status values.
const (
	FulfillmentStatusFulfilled   = "Fulfilled"
	FulfillmentStatusUnfulfilled = "Unfulfilled"
)

// OrderCountFilter narrows CountOrders to a status literal and/or a
// trailing window. The zero value counts every order.
type OrderCountFilter struct {
	OrderingStatus    string
	FulfillmentStatus string
	Since             time.Time
}
