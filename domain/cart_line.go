package domain

import "github.com/shopspring/decimal"

// CartLine is one (book, quantity) pairing held by a cart or snapshotted
// into an order.
type CartLine struct {
	Book     Book
	Quantity int
}

// Subtotal returns quantity times unit price for this line.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Book.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
