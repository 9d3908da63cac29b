package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShippingInfo is the contact and delivery payload collected at checkout.
type ShippingInfo struct {
	Name    string
	Address string
	City    string
	ZipCode string
}

// Order is the immutable record of a committed checkout. Items are deep
// copies of the cart lines taken at commit time; mutating the live cart
// afterwards cannot reach them.
type Order struct {
	OrderID     string
	UserEmail   string
	Items       []CartLine
	Shipping    ShippingInfo
	TotalAmount decimal.Decimal
	Payment     PaymentRecord
	CreatedAt   time.Time
}
