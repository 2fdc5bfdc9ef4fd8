package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/grovemarket/marketplace-manager/internal/entity"
	"github.com/jmoiron/sqlx"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	// Orders is the order-side data collaborator of the analytics engine.
	Orders interface {
		// GetOrdersInRange returns orders with ordered_at in [tr.From, tr.To),
		// one windowed query per invocation.
		GetOrdersInRange(ctx context.Context, tr entity.TimeRange) ([]entity.Order, error)
		// GetRecentOrders returns the most recent orders by ordered_at across
		// the entire dataset, not window-filtered.
		GetRecentOrders(ctx context.Context, limit int) ([]entity.Order, error)
		// CountOrders counts orders matching the filter.
		CountOrders(ctx context.Context, filter entity.OrderCountFilter) (int, error)
	}

	// Products is the product-side data collaborator.
	Products interface {
		// GetProductsByIds resolves the full id set in one batched lookup.
		// Absent ids are simply missing from the result, not an error.
		GetProductsByIds(ctx context.Context, ids []string) ([]entity.Product, error)
		// CountProducts counts products, optionally scoped to one seller.
		CountProducts(ctx context.Context, sellerID *int) (int, error)
	}

	Repository interface {
		Orders() Orders
		Products() Products
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Close()
		Ping(ctx context.Context) error
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		NamedQuery(query string, arg interface{}) (*sqlx.Rows, error)
		PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
		PreparexContext(ctx context.Context, query string) (*sqlx.Stmt, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}
)
