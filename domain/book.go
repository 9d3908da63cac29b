package domain

import "github.com/shopspring/decimal"

// Book is a single purchasable catalog entry. The title doubles as the
// catalog key; books are never mutated after load.
type Book struct {
	Title     string
	Category  string
	UnitPrice decimal.Decimal
	ImageRef  string
}
