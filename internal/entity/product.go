package entity

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Product represents the products table. Products are immutable for the
// duration of a single analytics computation; the engine only reads them.
type Product struct {
	ID       string          `db:"id"`
	Name     string          `db:"name"`
	Price    decimal.Decimal `db:"price"`
	SellerID sql.NullInt32   `db:"seller_id"`
}

// OwnedBySeller reports whether the product belongs to the given seller.
func (p *Product) OwnedBySeller(sellerID int) bool {
	return p.SellerID.Valid && int(p.SellerID.Int32) == sellerID
}
