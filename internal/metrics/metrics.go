package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ncr_air_quality"

// Metrics groups the service's Prometheus collectors. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	estimates        *prometheus.CounterVec
	plans            prometheus.Counter
	validationErrors *prometheus.CounterVec
	stationAQI       *prometheus.GaugeVec
	refreshes        *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		estimates: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "estimates_total",
			Help:      "AQI estimates computed, by resulting category.",
		}, []string{"category"}),
		plans: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plans_total",
			Help:      "Resource plans computed.",
		}),
		validationErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_errors_total",
			Help:      "Rejected inputs, by operation.",
		}, []string{"operation"}),
		stationAQI: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "station_aqi",
			Help:      "Latest estimated AQI per dashboard station.",
		}, []string{"station"}),
		refreshes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "station_refreshes_total",
			Help:      "Station snapshot refreshes, by outcome.",
		}, []string{"station", "outcome"}),
	}
}

// ObserveEstimate counts a successful estimate under its category.
func (m *Metrics) ObserveEstimate(category string) {
	if m == nil {
		return
	}
	m.estimates.WithLabelValues(category).Inc()
}

// ObservePlan counts a computed resource plan.
func (m *Metrics) ObservePlan() {
	if m == nil {
		return
	}
	m.plans.Inc()
}

// ObserveValidationError counts a rejected request for operation.
func (m *Metrics) ObserveValidationError(operation string) {
	if m == nil {
		return
	}
	m.validationErrors.WithLabelValues(operation).Inc()
}

// ObserveRefresh records a station refresh; aqi is only used on success.
func (m *Metrics) ObserveRefresh(station string, aqi int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.refreshes.WithLabelValues(station, "error").Inc()
		return
	}
	m.refreshes.WithLabelValues(station, "ok").Inc()
	m.stationAQI.WithLabelValues(station).Set(float64(aqi))
}
