package notification

import (
	"log/slog"

	"github.com/t3chE/online-bookstore-final-assessment/domain"
)

// Sender delivers an order confirmation to a buyer. Delivery is best
// effort: a false return never unwinds the committed order behind it.
type Sender interface {
	SendOrderConfirmation(email string, order *domain.Order) bool
}

// EmailSender simulates an outbound mail service by writing the
// confirmation through the logger.
type EmailSender struct {
	log *slog.Logger
}

func NewEmailSender(log *slog.Logger) *EmailSender {
	return &EmailSender{log: log}
}

func (s *EmailSender) SendOrderConfirmation(email string, order *domain.Order) bool {
	s.log.Info("EMAIL SENT: order confirmation",
		"to", email,
		"order_id", order.OrderID,
		"total", order.TotalAmount.StringFixed(2),
		"items", len(order.Items),
	)
	return true
}
