/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package webhook

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Delivery outcomes.
const (
	outcomeHandled   = "handled"
	outcomeIgnored   = "ignored"
	outcomeRejected  = "rejected"
	outcomeMalformed = "malformed"
	outcomeFailed    = "failed"
)

// Metrics counts webhook deliveries.
type Metrics struct {
	events   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the webhook metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		events: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "owlcast_webhook_events_total",
				Help: "Total number of webhook deliveries by event, action and outcome",
			},
			[]string{"event", "action", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "owlcast_webhook_duration_seconds",
				Help:    "Time spent handling a webhook delivery",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
			},
			[]string{"event"},
		),
	}
}

func (m *Metrics) record(event, action, outcome string) {
	m.events.WithLabelValues(event, action, outcome).Inc()
}
