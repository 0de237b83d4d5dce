// Package metrics exposes Prometheus instrumentation for the alert pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/fx"
)

// Metrics holds all application metrics
type Metrics struct {
	// Generation phase metrics
	AlertsGenerated prometheus.Counter
	AlertsSkipped   prometheus.Counter
	GroupsFailed    *prometheus.CounterVec

	// Dispatch phase metrics
	PushSent      prometheus.Counter
	PushFailed    prometheus.Counter
	InvalidTokens prometheus.Counter

	// Cycle metrics
	PhaseDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers all application metrics on the default registry
func NewMetrics(namespace string) *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer, namespace)
}

// NewMetricsWith creates and registers all application metrics on the given registerer
func NewMetricsWith(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		AlertsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_generated_total",
			Help:      "Total number of alerts created during generation",
		}),
		AlertsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_skipped_total",
			Help:      "Total number of alerts skipped as duplicates during generation",
		}),
		GroupsFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "groups_failed_total",
			Help:      "Total number of subject groups that failed a phase",
		}, []string{"phase"}),

		PushSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_sent_total",
			Help:      "Total number of push notifications accepted by the provider",
		}),
		PushFailed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_failed_total",
			Help:      "Total number of push notifications rejected by the provider",
		}),
		InvalidTokens: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_tokens_total",
			Help:      "Total number of device tokens deactivated after provider rejection",
		}),

		PhaseDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cycle_phase_duration_seconds",
			Help:      "Duration of alert cycle phases",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"phase"}),
	}
}

func newDefault() *Metrics {
	return NewMetrics("beacon")
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(newDefault),
)
