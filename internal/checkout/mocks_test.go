package checkout

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/t3chE/online-bookstore-final-assessment/domain"
)

// MockGateway implements payment.Gateway with a scripted outcome.
type MockGateway struct {
	Result domain.PaymentResult
	Err    error
	calls  atomic.Int64

	// BeforeReturn, when set, runs inside Charge before the scripted
	// outcome is returned. Used to mutate the ledger mid-checkout and
	// exercise the post-payment stock anomaly.
	BeforeReturn func()
}

func (m *MockGateway) Charge(_ context.Context, _ domain.PaymentInfo) (domain.PaymentResult, error) {
	m.calls.Add(1)
	if m.BeforeReturn != nil {
		m.BeforeReturn()
	}
	if m.Err != nil {
		return domain.PaymentResult{}, m.Err
	}
	return m.Result, nil
}

func (m *MockGateway) Calls() int {
	return int(m.calls.Load())
}

func acceptAll() *MockGateway {
	return &MockGateway{
		Result: domain.PaymentResult{Success: true, Message: "ok", TransactionID: "TXN-test"},
	}
}

func declineAll() *MockGateway {
	return &MockGateway{
		Result: domain.PaymentResult{Success: false, Message: "card declined by issuer"},
	}
}

// MockSender implements notification.Sender and records deliveries.
type MockSender struct {
	mu     sync.Mutex
	sent   []string
	Refuse bool
}

func (m *MockSender) SendOrderConfirmation(email string, order *domain.Order) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, fmt.Sprintf("%s:%s", email, order.OrderID))
	return !m.Refuse
}

// Sent returns the recorded deliveries in order.
func (m *MockSender) Sent() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.sent))
	copy(out, m.sent)
	return out
}
