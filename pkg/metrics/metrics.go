// Package metrics holds the Prometheus collectors shared by the calculator
// service and the HTTP API.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .025, .05, .1} //nolint: gochecknoglobals

// Outcome labels.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics records conversion and calculation activity. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	Conversions         *prometheus.CounterVec
	Calculations        *prometheus.CounterVec
	CalculationDuration *prometheus.HistogramVec
}

// New registers the collectors with reg. Passing prometheus.DefaultRegisterer
// exposes them on the default /metrics handler.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Conversions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "unitconv_conversions_total",
			Help: "Quantity conversions by kind and outcome",
		}, []string{"kind", "outcome"}),

		Calculations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "unitconv_calculations_total",
			Help: "Formula evaluations by operation and outcome",
		}, []string{"operation", "outcome"}),

		CalculationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "unitconv_calculation_duration_seconds",
			Help:    "Duration of formula evaluations including argument parsing",
			Buckets: DefaultBuckets,
		}, []string{"operation"}),
	}
}

// ObserveConversion counts one conversion of the kind.
func (m *Metrics) ObserveConversion(kind string, err error) {
	if m != nil {
		m.Conversions.WithLabelValues(kind, outcome(err)).Inc()
	}
}

// ObserveCalculation counts one evaluation and records its duration.
func (m *Metrics) ObserveCalculation(operation string, d time.Duration, err error) {
	if m != nil {
		m.Calculations.WithLabelValues(operation, outcome(err)).Inc()
		m.CalculationDuration.WithLabelValues(operation).Observe(d.Seconds())
	}
}

func outcome(err error) string {
	if err != nil {
		return OutcomeError
	}

	return OutcomeOK
}
