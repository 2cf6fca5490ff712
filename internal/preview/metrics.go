package preview

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the preview server's Prometheus metrics.
type Metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	reloadClients  prometheus.Gauge
	reloadsTotal   prometheus.Counter
}

// NewMetrics registers the preview metrics on the given registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "loom",
			Subsystem: "preview",
			Name:      "renders_total",
			Help:      "Component renders, by component name and status.",
		}, []string{"component", "status"}),
		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "loom",
			Subsystem: "preview",
			Name:      "render_duration_seconds",
			Help:      "Time spent resolving and rendering a component.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"component"}),
		reloadClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "loom",
			Subsystem: "preview",
			Name:      "reload_clients",
			Help:      "Browsers connected to the live-reload socket.",
		}),
		reloadsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "loom",
			Subsystem: "preview",
			Name:      "reloads_total",
			Help:      "Reload broadcasts triggered by override changes.",
		}),
	}
}

// ObserveRender records one component render.
func (m *Metrics) ObserveRender(component string, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.rendersTotal.WithLabelValues(component, status).Inc()
	m.renderDuration.WithLabelValues(component).Observe(d.Seconds())
}
