package tracker

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dshills/keychord/internal/input/key"
)

// Metrics exposes session activity as Prometheus collectors.
type Metrics struct {
	events  *prometheus.CounterVec
	fired   prometheus.Counter
	unbound prometheus.Counter
	active  prometheus.Gauge
	rebinds prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "keychord",
			Name:      "key_events_total",
			Help:      "Key events handled, by state.",
		}, []string{"state"}),
		fired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "keychord",
			Name:      "actions_fired_total",
			Help:      "Actions fired across all handled events.",
		}),
		unbound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "keychord",
			Name:      "unbound_events_total",
			Help:      "Key events that fired no action.",
		}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "keychord",
			Name:      "active_actions",
			Help:      "Actions currently held.",
		}),
		rebinds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "keychord",
			Name:      "rebinds_total",
			Help:      "Binding trees swapped in by Rebind.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.events, m.fired, m.unbound, m.active, m.rebinds)
	}
	return m
}

func (m *Metrics) observeEvent(e key.Event, fired, active int) {
	m.events.WithLabelValues(e.State.String()).Inc()
	m.fired.Add(float64(fired))
	if fired == 0 {
		m.unbound.Inc()
	}
	m.active.Set(float64(active))
}
