package checkout

import (
	"context"
	"log/slog"
	"time"

	"github.com/t3chE/online-bookstore-final-assessment/domain"
	"github.com/t3chE/online-bookstore-final-assessment/internal/cart"
	"github.com/t3chE/online-bookstore-final-assessment/internal/discount"
	"github.com/t3chE/online-bookstore-final-assessment/internal/inventory"
	"github.com/t3chE/online-bookstore-final-assessment/internal/metrics"
	"github.com/t3chE/online-bookstore-final-assessment/internal/notification"
	"github.com/t3chE/online-bookstore-final-assessment/internal/order"
	"github.com/t3chE/online-bookstore-final-assessment/internal/payment"
	"github.com/t3chE/online-bookstore-final-assessment/internal/user"
)

// Request is one checkout attempt: a live cart plus the payloads the
// routing tier collected from the buyer.
type Request struct {
	Cart         *cart.Cart
	Email        string
	Shipping     domain.ShippingInfo
	Payment      domain.PaymentInfo
	DiscountCode string
}

// Result is the terminal outcome handed back for rendering. Order is
// set only when Status is NOTIFIED.
type Result struct {
	Status domain.CheckoutStatus
	Order  *domain.Order
}

// Service coordinates one checkout transaction: advisory stock
// validation, discount pricing, the gateway charge, the all-or-nothing
// inventory commit, order creation, and best-effort notification.
//
// Each Process call is a fresh transaction; deduplicating double
// submissions is the caller's responsibility.
type Service struct {
	ledger    inventory.Ledger
	discounts *discount.Registry
	gateway   payment.Gateway
	orders    *order.Store
	users     *user.Directory
	notifier  notification.Sender
	metrics   *metrics.CheckoutMetrics
	log       *slog.Logger
}

func NewService(
	ledger inventory.Ledger,
	discounts *discount.Registry,
	gateway payment.Gateway,
	orders *order.Store,
	users *user.Directory,
	notifier notification.Sender,
	m *metrics.CheckoutMetrics,
	log *slog.Logger,
) *Service {
	return &Service{
		ledger:    ledger,
		discounts: discounts,
		gateway:   gateway,
		orders:    orders,
		users:     users,
		notifier:  notifier,
		metrics:   m,
		log:       log,
	}
}

// Process runs the checkout state machine to a terminal status. On any
// rejection the ledger, order store, user history, and cart are exactly
// as they were before the call; the cart is cleared only on success.
func (s *Service) Process(ctx context.Context, req Request) (Result, error) {
	start := time.Now()
	status := domain.CheckoutStatusStarted

	finish := func(terminal domain.CheckoutStatus) {
		status = terminal
		s.metrics.Observe(terminal, time.Since(start))
	}

	if req.Cart == nil || req.Cart.IsEmpty() {
		finish(domain.CheckoutStatusRejectedEmptyCart)
		s.log.Info("checkout rejected", "status", status.String(), "email", req.Email)
		return Result{Status: status}, ErrEmptyCart
	}

	lines := req.Cart.Items()

	if err := s.validateStock(lines); err != nil {
		finish(domain.CheckoutStatusRejectedOutOfStock)
		s.log.Info("checkout rejected", "status", status.String(), "email", req.Email, "reason", err.Error())
		return Result{Status: status}, err
	}
	if err := advance(&status, domain.CheckoutStatusValidated); err != nil {
		return Result{Status: status}, err
	}

	total := s.discounts.Apply(req.Cart.TotalPrice(), req.DiscountCode)

	payResult, err := s.processPayment(ctx, req.Payment, total)
	if err != nil {
		finish(domain.CheckoutStatusRejectedPaymentDeclined)
		s.log.Info("checkout rejected", "status", status.String(), "email", req.Email, "reason", err.Error())
		return Result{Status: status}, err
	}
	if err := advance(&status, domain.CheckoutStatusPaid); err != nil {
		return Result{Status: status}, err
	}

	ord, err := s.commit(lines, req, total, payResult)
	if err != nil {
		// Stock vanished between validation and commit. Payment has
		// already been taken; surfacing the anomaly is the caller's
		// cue to refund out of band.
		finish(domain.CheckoutStatusRejectedOutOfStock)
		s.log.Warn("post-payment stock anomaly",
			"email", req.Email,
			"transaction_id", payResult.TransactionID,
			"reason", err.Error(),
		)
		return Result{Status: status}, err
	}
	if err := advance(&status, domain.CheckoutStatusCommitted); err != nil {
		return Result{Status: status}, err
	}

	s.notify(req.Email, ord)
	if err := advance(&status, domain.CheckoutStatusNotified); err != nil {
		return Result{Status: status}, err
	}

	req.Cart.Clear()
	s.metrics.Observe(status, time.Since(start))
	s.log.Info("checkout completed",
		"order_id", ord.OrderID,
		"email", req.Email,
		"total", ord.TotalAmount.StringFixed(2),
	)
	return Result{Status: status, Order: ord}, nil
}

// advance moves the state machine, guarding against steps running out
// of order.
func advance(status *domain.CheckoutStatus, next domain.CheckoutStatus) error {
	if !domain.CanTransitionTo(*status, next) {
		return ErrIllegalTransition
	}
	*status = next
	return nil
}
