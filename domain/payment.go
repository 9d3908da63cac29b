package domain

import "github.com/shopspring/decimal"

// PaymentInfo carries the buyer's payment details for a single charge
// attempt. It is transient input and is never persisted.
type PaymentInfo struct {
	Method     string
	CardNumber string
	Expiry     string
	CVV        string
	Amount     decimal.Decimal
}

// PaymentResult is the gateway's answer to a charge attempt.
// TransactionID is set only when Success is true.
type PaymentResult struct {
	Success       bool
	Message       string
	TransactionID string
}

// PaymentRecord is what an order keeps about how it was paid.
// Card details never make it past the checkout request.
type PaymentRecord struct {
	Method        string
	TransactionID string
}
