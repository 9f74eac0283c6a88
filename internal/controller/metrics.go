package controller

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics instruments completed cycles.
type Metrics struct {
	cycles   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	rejected prometheus.Counter
}

// NewMetrics creates the controller metrics and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		cycles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "homeprice",
				Subsystem: "form",
				Name:      "cycles_total",
				Help:      "Completed submit cycles by outcome",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "homeprice",
				Subsystem: "form",
				Name:      "cycle_duration_seconds",
				Help:      "Duration of submit cycles in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		rejected: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "homeprice",
				Subsystem: "form",
				Name:      "inflight_rejections_total",
				Help:      "Submits rejected because a cycle was already in flight",
			},
		),
	}
	if reg != nil {
		reg.MustRegister(m.cycles, m.duration, m.rejected)
	}
	return m
}

func outcomeLabel(o Outcome) string {
	if o.OK() {
		return "success"
	}
	return string(o.Kind)
}

func (m *Metrics) observe(o Outcome) {
	if m == nil {
		return
	}
	l := outcomeLabel(o)
	m.cycles.WithLabelValues(l).Inc()
	m.duration.WithLabelValues(l).Observe(o.Duration.Seconds())
}

func (m *Metrics) reject() {
	if m == nil {
		return
	}
	m.rejected.Inc()
}
