// Package metrics exposes prometheus instrumentation for the audit
// emission path.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AuditEventsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kaudit_events_submitted_total",
			Help: "Total number of audit events submitted to the queue",
		},
		[]string{"class"},
	)

	AuditEventsCoalesced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kaudit_events_coalesced_total",
			Help: "Total number of duplicate audit events folded into an existing entry",
		},
		[]string{"class"},
	)

	AuditEventsShipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kaudit_events_shipped_total",
			Help: "Total number of audit records shipped to the sink",
		},
	)

	AuditEventsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kaudit_events_dropped_total",
			Help: "Total number of audit records dropped after a sink failure",
		},
	)

	AuditQueueEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "kaudit_queue_entries",
			Help: "Current number of coalesced entries held in the audit queue",
		},
	)

	AuditFlushDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "kaudit_flush_duration_seconds",
			Help:    "Time taken to flush the audit queue to the sink",
			Buckets: prometheus.DefBuckets,
		},
	)

	JoinGroupRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kaudit_join_group_requests_total",
			Help: "Total number of join_group requests handled",
		},
		[]string{"result"},
	)
)
