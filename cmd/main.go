package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/t3chE/online-bookstore-final-assessment/configs"
	"github.com/t3chE/online-bookstore-final-assessment/domain"
	"github.com/t3chE/online-bookstore-final-assessment/internal/cart"
	"github.com/t3chE/online-bookstore-final-assessment/internal/catalog"
	"github.com/t3chE/online-bookstore-final-assessment/internal/checkout"
	"github.com/t3chE/online-bookstore-final-assessment/internal/discount"
	"github.com/t3chE/online-bookstore-final-assessment/internal/inventory"
	"github.com/t3chE/online-bookstore-final-assessment/internal/logging"
	"github.com/t3chE/online-bookstore-final-assessment/internal/metrics"
	"github.com/t3chE/online-bookstore-final-assessment/internal/notification"
	"github.com/t3chE/online-bookstore-final-assessment/internal/order"
	"github.com/t3chE/online-bookstore-final-assessment/internal/payment"
	"github.com/t3chE/online-bookstore-final-assessment/internal/user"
)

func main() {
	configPath := flag.String("config", "configs/base.yaml", "path to config file")
	demo := flag.Bool("demo", false, "run a scripted demo checkout after startup")
	flag.Parse()

	cfg, err := configs.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.Init(cfg.App.Name, cfg.App.LogPath)

	books := catalog.New(cfg.Books())
	ledger := inventory.NewMemoryLedger()
	for _, b := range books.List() {
		ledger.SetStock(b.Title, cfg.Inventory.DefaultStock)
	}

	carts := cart.NewStore()
	orders := order.NewStore()
	users := user.NewDirectory()
	discounts := discount.NewRegistry(cfg.Rules()...)
	gateway := payment.NewBreakerGateway(payment.NewMockGateway(logging.New("payment")))
	notifier := notification.NewEmailSender(logging.New("notification"))
	checkoutMetrics := metrics.NewCheckoutMetrics(prometheus.DefaultRegisterer)

	svc := checkout.NewService(
		ledger, discounts, gateway, orders, users, notifier,
		checkoutMetrics, logging.New("checkout"),
	)

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		logger.Info("metrics listening", "addr", cfg.App.MetricsAddr)
		if err := http.ListenAndServe(cfg.App.MetricsAddr, mux); err != nil {
			logger.Error("metrics server stopped", "error", err)
		}
	}()

	logger.Info("bookshop ready",
		"books", len(books.List()),
		"default_stock", cfg.Inventory.DefaultStock,
	)

	if *demo {
		runDemo(svc, books, carts, logger)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down")
}

// runDemo walks one full checkout against the seeded state.
func runDemo(svc *checkout.Service, books *catalog.Catalog, carts *cart.Store, logger *slog.Logger) {
	c := carts.GetOrCreate("demo-session")
	for i, b := range books.List() {
		if i >= 2 {
			break
		}
		if err := c.AddBook(b, i+1); err != nil {
			logger.Error("demo add failed", "error", err)
			return
		}
	}

	result, err := svc.Process(context.Background(), checkout.Request{
		Cart:  c,
		Email: "demo@example.com",
		Shipping: domain.ShippingInfo{
			Name:    "Demo Buyer",
			Address: "1 Demo Lane",
			City:    "Demo City",
			ZipCode: "00000",
		},
		Payment: domain.PaymentInfo{
			Method:     "credit_card",
			CardNumber: "4242424242424242",
			Expiry:     "12/30",
			CVV:        "123",
		},
		DiscountCode: "SAVE10",
	})
	if err != nil {
		logger.Error("demo checkout rejected", "status", result.Status.String(), "error", err)
		return
	}
	logger.Info("demo checkout done",
		"status", result.Status.String(),
		"order_id", result.Order.OrderID,
		"total", result.Order.TotalAmount.StringFixed(2),
	)
}
