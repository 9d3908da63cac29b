package payment

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t3chE/online-bookstore-final-assessment/domain"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func chargeInfo(card string) domain.PaymentInfo {
	return domain.PaymentInfo{
		Method:     "credit_card",
		CardNumber: card,
		Expiry:     "12/30",
		CVV:        "123",
		Amount:     decimal.RequireFromString("30.97"),
	}
}

func TestMockGateway_Charge_Success(t *testing.T) {
	g := NewMockGateway(discard())

	result, err := g.Charge(context.Background(), chargeInfo("4000123456789012"))
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.True(t, strings.HasPrefix(result.TransactionID, "TXN-"))
	assert.NotEmpty(t, result.TransactionID)
}

func TestMockGateway_Charge_UniqueTransactionIDs(t *testing.T) {
	g := NewMockGateway(discard())

	first, err := g.Charge(context.Background(), chargeInfo("4242424242424242"))
	require.NoError(t, err)
	second, err := g.Charge(context.Background(), chargeInfo("4242424242424242"))
	require.NoError(t, err)

	assert.NotEqual(t, first.TransactionID, second.TransactionID)
}

func TestMockGateway_Charge_DeclineSuffix(t *testing.T) {
	g := NewMockGateway(discard())

	result, err := g.Charge(context.Background(), chargeInfo("4000111111111111"))
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Contains(t, strings.ToLower(result.Message), "declined")
	assert.Empty(t, result.TransactionID)
}

func TestMockGateway_Charge_MalformedCard(t *testing.T) {
	g := NewMockGateway(discard())

	for _, card := range []string{"", "1234", "4000-1234-5678-9012", "notanumber"} {
		result, err := g.Charge(context.Background(), chargeInfo(card))
		require.NoError(t, err)
		assert.False(t, result.Success, "card %q", card)
		assert.Contains(t, strings.ToLower(result.Message), "invalid")
	}
}

func TestMockGateway_Charge_CancelledContext(t *testing.T) {
	g := NewMockGateway(discard())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Charge(ctx, chargeInfo("4242424242424242"))
	assert.ErrorIs(t, err, context.Canceled)
}

// failingGateway simulates a processor that is down.
type failingGateway struct {
	calls int
}

func (g *failingGateway) Charge(context.Context, domain.PaymentInfo) (domain.PaymentResult, error) {
	g.calls++
	return domain.PaymentResult{}, errors.New("connection refused")
}

func TestBreakerGateway_PassesThroughResults(t *testing.T) {
	g := NewBreakerGateway(NewMockGateway(discard()))

	result, err := g.Charge(context.Background(), chargeInfo("4242424242424242"))
	require.NoError(t, err)
	assert.True(t, result.Success)

	// A business decline is a result, not a breaker failure
	result, err = g.Charge(context.Background(), chargeInfo("4000111111111111"))
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestBreakerGateway_OpensAfterConsecutiveFailures(t *testing.T) {
	inner := &failingGateway{}
	g := NewBreakerGateway(inner)

	for i := 0; i < 3; i++ {
		_, err := g.Charge(context.Background(), chargeInfo("4242424242424242"))
		require.Error(t, err)
	}

	// Breaker is open now; the inner gateway must not be reached
	callsBefore := inner.calls
	_, err := g.Charge(context.Background(), chargeInfo("4242424242424242"))
	require.Error(t, err)
	assert.Equal(t, callsBefore, inner.calls)
}
