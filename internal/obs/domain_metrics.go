package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// QuoteTotal counts checkout quote outcomes.
	QuoteTotal *prometheus.CounterVec
	// QuoteDiscount records the total discount per priced receipt, in minor units.
	QuoteDiscount prometheus.Histogram
)

// MustRegisterDomainMetrics initialises and registers domain-specific
// Prometheus collectors. Safe to call more than once.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		QuoteTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_quotes_total",
			Help:      "Count of checkout quote outcomes.",
		}, []string{"result"})
		QuoteDiscount = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "checkout_quote_discount_cents",
			Help:      "Total discount applied per priced receipt, in cents.",
			Buckets:   []float64{0, 50, 100, 200, 500, 1000, 2500, 5000},
		})
		reg.MustRegister(QuoteTotal, QuoteDiscount)
	})
}

// CountQuote records one quote outcome when metrics are registered.
func CountQuote(result string) {
	if QuoteTotal != nil {
		QuoteTotal.WithLabelValues(result).Inc()
	}
}

// ObserveQuoteDiscount records a receipt discount when metrics are registered.
func ObserveQuoteDiscount(cents int64) {
	if QuoteDiscount != nil {
		QuoteDiscount.Observe(float64(cents))
	}
}
