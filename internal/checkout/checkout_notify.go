package checkout

import "github.com/t3chE/online-bookstore-final-assessment/domain"

// notify sends the confirmation after commit. Strictly best effort: the
// order and inventory decrement stand regardless of the outcome here.
func (s *Service) notify(email string, ord *domain.Order) {
	if sent := s.notifier.SendOrderConfirmation(email, ord); !sent {
		s.log.Warn("order confirmation not delivered",
			"order_id", ord.OrderID,
			"email", email,
		)
	}
}
