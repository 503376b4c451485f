package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestWizardMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWizardMetrics(reg)

	m.ObserveSessionStarted()
	m.ObservePriceQuery("ok", 0.2)
	m.ObservePriceQuery("stale", 0.4)
	m.ObservePriceQuery("ok", 0.1)
	m.ObserveSubmission("ok")
	m.ObserveDelivery("failed")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.sessionsTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.priceQueriesTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.priceQueriesTotal.WithLabelValues("stale")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.deliveriesTotal.WithLabelValues("failed")))
}

func TestWizardMetricsNilSafe(t *testing.T) {
	var m *WizardMetrics
	m.ObserveSessionStarted()
	m.ObservePriceQuery("ok", 0.1)
	m.ObserveSubmission("blocked")
	m.ObserveDelivery("delivered")
}
