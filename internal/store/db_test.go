package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/grovemarket/marketplace-manager/internal/dependency"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsErrRepeat(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "deadlock", err: &mysql.MySQLError{Number: 1213}, want: true},
		{name: "lock wait timeout", err: &mysql.MySQLError{Number: 1205}, want: true},
		{name: "wrapped deadlock", err: fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1213}), want: true},
		{name: "duplicate key", err: &mysql.MySQLError{Number: 1062}, want: false},
		{name: "plain error", err: fmt.Errorf("connection refused"), want: false},
		{name: "nil", err: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isErrRepeat(tt.err))
		})
	}
}

func TestTxCommit(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	err := db.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		assert.True(t, rep.InTx())
		// time is frozen for the duration of the transaction
		assert.True(t, rep.Now().Equal(rep.Now()))
		return ExecNamed(ctx, rep.DB(), `
			INSERT INTO products (id, name, price, seller_id)
			VALUES (:id, :name, :price, :sellerId)
		`, map[string]any{
			"id": "tx-p1", "name": "mug", "price": decimal.NewFromInt(15), "sellerId": nil,
		})
	})
	require.NoError(t, err)
	assert.False(t, db.InTx())

	count, err := db.Products().CountProducts(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestTxRollbackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	boom := fmt.Errorf("boom")
	err := db.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		if err := ExecNamed(ctx, rep.DB(), `
			INSERT INTO products (id, name, price, seller_id)
			VALUES (:id, :name, :price, :sellerId)
		`, map[string]any{
			"id": "tx-p1", "name": "mug", "price": decimal.NewFromInt(15), "sellerId": nil,
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	count, err := db.Products().CountProducts(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestTxRetriesOnSerializationError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	attempts := 0
	err := db.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		attempts++
		if attempts == 1 {
			return fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1213})
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestTxBeginRollback(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	tx, err := db.TxBegin(ctx)
	require.NoError(t, err)
	require.True(t, tx.InTx())

	err = ExecNamed(ctx, tx.DB(), `
		INSERT INTO products (id, name, price, seller_id)
		VALUES (:id, :name, :price, :sellerId)
	`, map[string]any{
		"id": "tx-p1", "name": "mug", "price": decimal.NewFromInt(15), "sellerId": nil,
	})
	require.NoError(t, err)

	require.NoError(t, tx.TxRollback(ctx))
	assert.Error(t, tx.TxCommit(ctx))

	count, err := db.Products().CountProducts(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestNestedTxBeginFails(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	tx, err := db.TxBegin(ctx)
	require.NoError(t, err)
	defer tx.TxRollback(ctx)

	_, err = tx.TxBegin(ctx)
	assert.Error(t, err)
}
