package checkout

import (
	"github.com/shopspring/decimal"
	"github.com/t3chE/online-bookstore-final-assessment/domain"
	"github.com/t3chE/online-bookstore-final-assessment/internal/order"
)

// commit is the irreversible step: decrement inventory for every line
// (all or nothing, re-validated under the ledger lock), build the
// immutable order, append it to the global store, and append to the
// buyer's history when the email matches a registered user.
func (s *Service) commit(lines []domain.CartLine, req Request, total decimal.Decimal, payResult domain.PaymentResult) (*domain.Order, error) {
	if err := s.ledger.CommitDecrementLines(lines); err != nil {
		return nil, err
	}

	ord := order.New(
		order.NewOrderID(),
		lines,
		req.Email,
		req.Shipping,
		total,
		domain.PaymentRecord{
			Method:        req.Payment.Method,
			TransactionID: payResult.TransactionID,
		},
	)
	s.orders.Append(ord)

	if buyer, exists := s.users.Lookup(req.Email); exists {
		buyer.AppendOrder(ord)
	}
	return ord, nil
}
