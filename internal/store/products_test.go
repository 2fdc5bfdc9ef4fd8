package store

import (
	"context"
	"testing"

	"github.com/grovemarket/marketplace-manager/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertProduct(t *testing.T, db *MYSQLStore, id, name string, price decimal.Decimal, sellerID *int) {
	t.Helper()
	err := ExecNamed(context.Background(), db.DB(), `
		INSERT INTO products (id, name, price, seller_id)
		VALUES (:id, :name, :price, :sellerId)
	`, map[string]any{
		"id":       id,
		"name":     name,
		"price":    price,
		"sellerId": sellerID,
	})
	require.NoError(t, err)
}

func TestGetProductsByIds(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seller := 7
	insertProduct(t, db, "p1", "mug", decimal.RequireFromString("15.50"), &seller)
	insertProduct(t, db, "p2", "hat", decimal.NewFromInt(100), nil)

	products, err := db.Products().GetProductsByIds(ctx, []string{"p1", "p2", "ghost"})
	require.NoError(t, err)
	require.Len(t, products, 2)

	byID := map[string]entity.Product{}
	for _, p := range products {
		byID[p.ID] = p
	}

	p1 := byID["p1"]
	assert.Equal(t, "mug", p1.Name)
	assert.True(t, p1.Price.Equal(decimal.RequireFromString("15.50")))
	require.True(t, p1.SellerID.Valid)
	assert.EqualValues(t, 7, p1.SellerID.Int32)

	p2 := byID["p2"]
	assert.False(t, p2.SellerID.Valid)
}

func TestGetProductsByIdsEmpty(t *testing.T) {
	db := newTestDB(t)

	products, err := db.Products().GetProductsByIds(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, products)
}

func TestCountProducts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seller := 7
	other := 8
	insertProduct(t, db, "p1", "mug", decimal.NewFromInt(15), &seller)
	insertProduct(t, db, "p2", "hat", decimal.NewFromInt(100), &seller)
	insertProduct(t, db, "p3", "poster", decimal.NewFromInt(40), &other)
	insertProduct(t, db, "p4", "sticker", decimal.NewFromInt(3), nil)

	count, err := db.Products().CountProducts(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	count, err = db.Products().CountProducts(ctx, &seller)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
