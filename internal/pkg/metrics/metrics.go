package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics for the allocation core. All methods are safe on a nil receiver so
// tests can pass nil.
type Metrics struct {
	// Availability verdicts by reason (available, not_found, assigned, reserved)
	Verdicts *prometheus.CounterVec

	// Reservation outcomes: created, released, expired, rejected
	Reservations *prometheus.CounterVec

	// Mutation transitions by target status
	MutationTransitions *prometheus.CounterVec

	// Alerts raised by type and severity, plus dropped writes
	Alerts        *prometheus.CounterVec
	AlertsDropped prometheus.Counter

	// Time spent inside a unit of work, by outcome
	TxDuration *prometheus.HistogramVec

	// HTTP requests by route and status class
	HTTPRequests *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Verdicts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "parcel_availability_verdicts_total",
			Help: "Availability checks by verdict reason",
		}, []string{"reason"}),

		Reservations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "parcel_reservations_total",
			Help: "Reservation lifecycle events",
		}, []string{"event"}),

		MutationTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "parcel_mutation_transitions_total",
			Help: "Mutation state transitions by target status",
		}, []string{"status"}),

		Alerts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "parcel_alerts_total",
			Help: "Alerts raised by type and severity",
		}, []string{"type", "severity"}),

		AlertsDropped: f.NewCounter(prometheus.CounterOpts{
			Name: "parcel_alerts_dropped_total",
			Help: "Alerts dropped after exhausting write attempts",
		}),

		TxDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "parcel_unit_of_work_duration_seconds",
			Help:    "Duration of units of work including retries",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"outcome"}),

		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "parcel_http_requests_total",
			Help: "HTTP requests by route and status code",
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) IncVerdict(reason string) {
	if m != nil {
		m.Verdicts.WithLabelValues(reason).Inc()
	}
}

func (m *Metrics) IncReservation(event string) {
	if m != nil {
		m.Reservations.WithLabelValues(event).Inc()
	}
}

func (m *Metrics) IncMutationTransition(status string) {
	if m != nil {
		m.MutationTransitions.WithLabelValues(status).Inc()
	}
}

func (m *Metrics) IncAlert(alertType, severity string) {
	if m != nil {
		m.Alerts.WithLabelValues(alertType, severity).Inc()
	}
}

func (m *Metrics) IncAlertDropped() {
	if m != nil {
		m.AlertsDropped.Inc()
	}
}

func (m *Metrics) ObserveTx(outcome string, d time.Duration) {
	if m != nil {
		m.TxDuration.WithLabelValues(outcome).Observe(d.Seconds())
	}
}

func (m *Metrics) IncHTTPRequest(method, route, status string) {
	if m != nil {
		m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	}
}
