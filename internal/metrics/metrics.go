package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/t3chE/online-bookstore-final-assessment/domain"
)

// CheckoutMetrics tracks terminal checkout outcomes and transaction
// latency.
type CheckoutMetrics struct {
	Outcomes *prometheus.CounterVec
	Duration prometheus.Histogram
}

func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bookshop",
		Subsystem: "checkout",
		Name:      "outcomes_total",
		Help:      "Terminal checkout outcomes by status.",
	}, []string{"status"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "bookshop",
		Subsystem: "checkout",
		Name:      "duration_ms",
		Help:      "Checkout transaction latency in milliseconds.",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	})

	reg.MustRegister(outcomes, duration)
	return &CheckoutMetrics{Outcomes: outcomes, Duration: duration}
}

// Observe records one finished checkout.
func (m *CheckoutMetrics) Observe(status domain.CheckoutStatus, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Outcomes.WithLabelValues(status.String()).Inc()
	m.Duration.Observe(float64(elapsed.Milliseconds()))
}

func Handler() http.Handler {
	return promhttp.Handler()
}
