package payment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/t3chE/online-bookstore-final-assessment/domain"
)

// declineSuffix marks the reserved test card numbers: anything ending
// in it is a simulated decline.
const declineSuffix = "1111"

// Gateway charges a payment and reports the outcome. Business refusals
// (declines, invalid card data) come back inside the PaymentResult; the
// error return is reserved for transport-level failures.
type Gateway interface {
	Charge(ctx context.Context, info domain.PaymentInfo) (domain.PaymentResult, error)
}

// MockGateway simulates an external payment processor with a
// deterministic decision rule, so tests and demos can steer the outcome
// with the card number alone.
type MockGateway struct {
	log *slog.Logger
}

func NewMockGateway(log *slog.Logger) *MockGateway {
	return &MockGateway{log: log}
}

func (g *MockGateway) Charge(ctx context.Context, info domain.PaymentInfo) (domain.PaymentResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.PaymentResult{}, err
	}

	card := strings.ReplaceAll(info.CardNumber, " ", "")
	if !wellFormed(card) {
		return domain.PaymentResult{
			Success: false,
			Message: "invalid card number",
		}, nil
	}

	if strings.HasSuffix(card, declineSuffix) {
		g.log.Info("charge declined",
			"method", info.Method,
			"amount", info.Amount.StringFixed(2),
		)
		return domain.PaymentResult{
			Success: false,
			Message: "card declined by issuer",
		}, nil
	}

	txnID := fmt.Sprintf("TXN-%s", uuid.NewString())
	g.log.Info("charge accepted",
		"method", info.Method,
		"amount", info.Amount.StringFixed(2),
		"transaction_id", txnID,
	)
	return domain.PaymentResult{
		Success:       true,
		Message:       "ok",
		TransactionID: txnID,
	}, nil
}

func wellFormed(card string) bool {
	if len(card) < 12 || len(card) > 19 {
		return false
	}
	for _, r := range card {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
