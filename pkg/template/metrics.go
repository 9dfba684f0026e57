package template

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// registryMetrics holds the Prometheus metrics for a registry.
// A nil receiver disables collection.
type registryMetrics struct {
	compilesTotal   prometheus.Counter
	templatesActive prometheus.Gauge
	templateNodes   prometheus.Histogram
}

// WithMetrics registers compile metrics with the given registerer.
//
// Metrics are per-registry; passing prometheus.DefaultRegisterer from
// more than one registry in the same process will panic on duplicate
// registration, so use dedicated registerers in tests.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(r *Registry) {
		factory := promauto.With(reg)
		r.metrics = &registryMetrics{
			compilesTotal: factory.NewCounter(prometheus.CounterOpts{
				Namespace: "quill",
				Name:      "template_compiles_total",
				Help:      "Total number of templates compiled",
			}),
			templatesActive: factory.NewGauge(prometheus.GaugeOpts{
				Namespace: "quill",
				Name:      "templates_active",
				Help:      "Number of templates currently registered",
			}),
			templateNodes: factory.NewHistogram(prometheus.HistogramOpts{
				Namespace: "quill",
				Name:      "template_nodes",
				Help:      "Flattened node-table size per compiled template",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
			}),
		}
	}
}

func (m *registryMetrics) observeCompile(tpl *Template) {
	if m == nil {
		return
	}
	m.compilesTotal.Inc()
	m.templatesActive.Inc()
	m.templateNodes.Observe(float64(tpl.NodeCount()))
}
