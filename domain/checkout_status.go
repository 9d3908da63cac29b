package domain

type CheckoutStatus string

const (
	CheckoutStatusStarted   CheckoutStatus = "STARTED"
	CheckoutStatusValidated CheckoutStatus = "VALIDATED"
	CheckoutStatusPaid      CheckoutStatus = "PAID"
	CheckoutStatusCommitted CheckoutStatus = "COMMITTED"
	CheckoutStatusNotified  CheckoutStatus = "NOTIFIED"

	CheckoutStatusRejectedEmptyCart       CheckoutStatus = "REJECTED_EMPTY_CART"
	CheckoutStatusRejectedOutOfStock      CheckoutStatus = "REJECTED_OUT_OF_STOCK"
	CheckoutStatusRejectedPaymentDeclined CheckoutStatus = "REJECTED_PAYMENT_DECLINED"
)

// transitions holds the legal moves of the checkout state machine.
// NOTIFIED is the only terminal success; the rejections are terminal
// failures with no partial commit behind them.
var transitions = map[CheckoutStatus][]CheckoutStatus{
	CheckoutStatusStarted: {
		CheckoutStatusValidated,
		CheckoutStatusRejectedEmptyCart,
		CheckoutStatusRejectedOutOfStock,
	},
	CheckoutStatusValidated: {
		CheckoutStatusPaid,
		CheckoutStatusRejectedPaymentDeclined,
	},
	CheckoutStatusPaid: {
		CheckoutStatusCommitted,
		// Stock can vanish between validation and commit; the
		// post-payment re-check surfaces it here.
		CheckoutStatusRejectedOutOfStock,
	},
	CheckoutStatusCommitted: {
		CheckoutStatusNotified,
	},
}

// CanTransitionTo reports whether moving from one status to another is a
// legal step of the checkout state machine.
func CanTransitionTo(from, to CheckoutStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s CheckoutStatus) IsTerminal() bool {
	return s == CheckoutStatusNotified || s.IsRejected()
}

func (s CheckoutStatus) IsRejected() bool {
	switch s {
	case CheckoutStatusRejectedEmptyCart,
		CheckoutStatusRejectedOutOfStock,
		CheckoutStatusRejectedPaymentDeclined:
		return true
	}
	return false
}

// String representation (for logging)
func (s CheckoutStatus) String() string {
	return string(s)
}
