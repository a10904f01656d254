package web

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/umputun/empdir/app/store"
)

// metrics collected by the server, registered on a private registry
type metrics struct {
	registry  *prometheus.Registry
	changes   *prometheus.CounterVec
	employees prometheus.Gauge
	submits   *prometheus.CounterVec
}

func newMetrics(sessionsCount func() float64) *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		changes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "empdir",
			Name:      "store_changes_total",
			Help:      "Number of changes applied to the employee collection.",
		}, []string{"kind"}),
		employees: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "empdir",
			Name:      "employees",
			Help:      "Number of employees after the last change.",
		}),
		submits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "empdir",
			Name:      "form_submits_total",
			Help:      "Number of form submits by result.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		m.changes,
		m.employees,
		m.submits,
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "empdir",
			Name:      "form_sessions",
			Help:      "Number of live form sessions.",
		}, sessionsCount),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// onChange is the store subscriber
func (m *metrics) onChange(evt store.Event) {
	m.changes.WithLabelValues(evt.Kind.String()).Inc()
	m.employees.Set(float64(len(evt.Employees)))
}

// submit counts a form submit, result is one of ok, invalid or error
func (m *metrics) submit(result string) {
	m.submits.WithLabelValues(result).Inc()
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
