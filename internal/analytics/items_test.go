package analytics

import (
	"encoding/json"
	"testing"

	"github.com/grovemarket/marketplace-manager/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractOrderItems(t *testing.T) {
	seller := 7

	tests := []struct {
		name string
		raw  string
		want []entity.OrderedItem
	}{
		{
			name: "plain array",
			raw:  `[{"productId":"p1","quantity":2},{"productId":"p2","quantity":1,"sellerId":7}]`,
			want: []entity.OrderedItem{
				{ProductID: "p1", Quantity: 2},
				{ProductID: "p2", Quantity: 1, SellerID: &seller},
			},
		},
		{
			name: "double encoded legacy blob",
			raw:  `"[{\"productId\":\"p1\",\"quantity\":3}]"`,
			want: []entity.OrderedItem{{ProductID: "p1", Quantity: 3}},
		},
		{
			name: "empty array",
			raw:  `[]`,
			want: []entity.OrderedItem{},
		},
		{
			name: "zero quantity is valid",
			raw:  `[{"productId":"p1","quantity":0}]`,
			want: []entity.OrderedItem{{ProductID: "p1", Quantity: 0}},
		},
		{
			name: "malformed json",
			raw:  `{"productId":`,
			want: nil,
		},
		{
			name: "not an array",
			raw:  `{"productId":"p1","quantity":1}`,
			want: nil,
		},
		{
			name: "missing product id",
			raw:  `[{"quantity":2}]`,
			want: nil,
		},
		{
			name: "empty product id",
			raw:  `[{"productId":"","quantity":2}]`,
			want: nil,
		},
		{
			name: "missing quantity",
			raw:  `[{"productId":"p1"}]`,
			want: nil,
		},
		{
			name: "negative quantity",
			raw:  `[{"productId":"p1","quantity":-1}]`,
			want: nil,
		},
		{
			name: "fractional quantity",
			raw:  `[{"productId":"p1","quantity":1.5}]`,
			want: nil,
		},
		{
			name: "non numeric seller id",
			raw:  `[{"productId":"p1","quantity":1,"sellerId":"seven"}]`,
			want: nil,
		},
		{
			name: "one bad entry voids the whole list",
			raw:  `[{"productId":"p1","quantity":1},{"quantity":2},{"productId":"p3","quantity":3}]`,
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractOrderItems(json.RawMessage(tt.raw))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractOrderItemsEmptyBlob(t *testing.T) {
	assert.Nil(t, extractOrderItems(nil))
	assert.Nil(t, extractOrderItems(json.RawMessage{}))
}

func TestExtractOrderItemsDeterministic(t *testing.T) {
	raw := json.RawMessage(`[{"productId":"p1","quantity":2,"sellerId":4}]`)

	first := extractOrderItems(raw)
	second := extractOrderItems(raw)
	require.Len(t, first, 1)
	assert.Equal(t, first, second)
}
