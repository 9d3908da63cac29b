package payment

import (
	"context"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/t3chE/online-bookstore-final-assessment/domain"
)

// BreakerGateway wraps a Gateway in a circuit breaker. The charge call
// models a blocking network round-trip to a processor; when the
// processor is down, the breaker fails fast instead of stacking up
// stalled checkouts. Business declines travel inside the result and do
// not count as failures.
type BreakerGateway struct {
	inner Gateway
	cb    *gobreaker.CircuitBreaker[domain.PaymentResult]
}

func NewBreakerGateway(inner Gateway) *BreakerGateway {
	cb := gobreaker.NewCircuitBreaker[domain.PaymentResult](gobreaker.Settings{
		Name:        "payment-gateway",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
	return &BreakerGateway{inner: inner, cb: cb}
}

func (g *BreakerGateway) Charge(ctx context.Context, info domain.PaymentInfo) (domain.PaymentResult, error) {
	return g.cb.Execute(func() (domain.PaymentResult, error) {
		return g.inner.Charge(ctx, info)
	})
}
