// SPDX-License-Identifier: MIT
// Package: ising
//
// metrics.go — Prometheus instrumentation of the averager.

package ising

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK             = "ok"
	resultBadTemperature = "bad_temperature"
	resultCapacity       = "capacity"
	resultDegenerate     = "degenerate"
	resultError          = "error"
)

// Metrics groups the averager collectors. A nil *Metrics records nothing.
type Metrics struct {
	configurations prometheus.Counter
	averages       *prometheus.CounterVec
	duration       prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered, which suits tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		configurations: f.NewCounter(prometheus.CounterOpts{
			Name: "ising_configurations_total",
			Help: "Spin configurations evaluated by successful averages.",
		}),
		averages: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ising_averages_total",
			Help: "Thermodynamic averages computed, by result.",
		}, []string{"result"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "ising_average_duration_seconds",
			Help:    "Wall time of one exhaustive average.",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 12),
		}),
	}
}

func (m *Metrics) observe(err error, configurations uint64, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.averages.WithLabelValues(resultLabel(err)).Inc()
	if err != nil {
		return
	}
	m.configurations.Add(float64(configurations))
	m.duration.Observe(elapsed.Seconds())
}
