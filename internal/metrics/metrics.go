package metrics

import "github.com/prometheus/client_golang/prometheus"

// WizardMetrics exposes counters/histograms for the booking wizard.
type WizardMetrics struct {
	sessionsTotal     prometheus.Counter
	priceQueriesTotal *prometheus.CounterVec
	priceLatency      prometheus.Histogram
	submissionsTotal  *prometheus.CounterVec
	deliveriesTotal   *prometheus.CounterVec
}

func NewWizardMetrics(reg prometheus.Registerer) *WizardMetrics {
	m := &WizardMetrics{
		sessionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "booking",
			Subsystem: "wizard",
			Name:      "sessions_started_total",
			Help:      "Total wizard sessions started",
		}),
		priceQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "booking",
			Subsystem: "wizard",
			Name:      "price_queries_total",
			Help:      "Total pricing collaborator queries by outcome",
		}, []string{"status"}),
		priceLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "booking",
			Subsystem: "wizard",
			Name:      "price_query_latency_seconds",
			Help:      "Latency of pricing collaborator queries",
			Buckets:   prometheus.DefBuckets,
		}),
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "booking",
			Subsystem: "wizard",
			Name:      "submissions_total",
			Help:      "Total order submissions by outcome",
		}, []string{"status"}),
		deliveriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "booking",
			Subsystem: "orders",
			Name:      "deliveries_total",
			Help:      "Total order deliveries to the order service by outcome",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.sessionsTotal, m.priceQueriesTotal, m.priceLatency, m.submissionsTotal, m.deliveriesTotal)
	return m
}

func (m *WizardMetrics) ObserveSessionStarted() {
	if m == nil {
		return
	}
	m.sessionsTotal.Inc()
}

// ObservePriceQuery records a finished price query; status is ok, error or stale.
func (m *WizardMetrics) ObservePriceQuery(status string, seconds float64) {
	if m == nil {
		return
	}
	m.priceQueriesTotal.WithLabelValues(status).Inc()
	m.priceLatency.Observe(seconds)
}

func (m *WizardMetrics) ObserveSubmission(status string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(status).Inc()
}

func (m *WizardMetrics) ObserveDelivery(status string) {
	if m == nil {
		return
	}
	m.deliveriesTotal.WithLabelValues(status).Inc()
}
