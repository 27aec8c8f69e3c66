//go:build unit

package metrics_test

import (
	"testing"
	"time"

	"parcel-registry/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	t.Run("counts by label", func(t *testing.T) {
		m := metrics.New(prometheus.NewRegistry())

		m.IncVerdict("assigned")
		m.IncVerdict("assigned")
		m.IncVerdict("available")
		m.IncAlert("double_attribution_attempt", "high")
		m.IncAlertDropped()

		assert.Equal(t, 2.0, testutil.ToFloat64(m.Verdicts.WithLabelValues("assigned")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.Verdicts.WithLabelValues("available")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.Alerts.WithLabelValues("double_attribution_attempt", "high")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.AlertsDropped))
	})

	t.Run("nil receiver is a no-op", func(t *testing.T) {
		var m *metrics.Metrics
		assert.NotPanics(t, func() {
			m.IncVerdict("available")
			m.IncReservation("created")
			m.IncMutationTransition("approved")
			m.IncAlert("conflict_detected", "medium")
			m.IncAlertDropped()
			m.ObserveTx("committed", time.Millisecond)
			m.IncHTTPRequest("GET", "/health", "200")
		})
	})
}
