package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/t3chE/online-bookstore-final-assessment/domain"
)

// NewOrderID generates a fresh unique order id.
func NewOrderID() string {
	return fmt.Sprintf("ORD-%s", uuid.NewString())
}

// New builds an immutable Order from cart contents and a successful
// payment. Preconditions (non-empty lines, total matching the
// discounted subtotal, payment reflecting a successful charge) are the
// caller's responsibility; this factory only snapshots.
func New(orderID string, lines []domain.CartLine, userEmail string, shipping domain.ShippingInfo, total decimal.Decimal, payment domain.PaymentRecord) *domain.Order {
	items := make([]domain.CartLine, len(lines))
	copy(items, lines)

	return &domain.Order{
		OrderID:     orderID,
		UserEmail:   userEmail,
		Items:       items,
		Shipping:    shipping,
		TotalAmount: total,
		Payment:     payment,
		CreatedAt:   time.Now(),
	}
}
