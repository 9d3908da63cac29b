package checkout

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/t3chE/online-bookstore-final-assessment/domain"
)

// processPayment charges the discounted total. The ledger is never
// touched while this call is in flight: a slow or stalled processor
// must not block unrelated buyers.
func (s *Service) processPayment(ctx context.Context, info domain.PaymentInfo, total decimal.Decimal) (domain.PaymentResult, error) {
	info.Amount = total

	result, err := s.gateway.Charge(ctx, info)
	if err != nil {
		// Transport failure; all known refusals come back in result.
		return domain.PaymentResult{}, fmt.Errorf("%w: %v", ErrPaymentDeclined, err)
	}
	if !result.Success {
		return domain.PaymentResult{}, fmt.Errorf("%w: %s", ErrPaymentDeclined, result.Message)
	}
	return result, nil
}
