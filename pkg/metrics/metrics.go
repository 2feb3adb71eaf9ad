// Package metrics exports the scheduler's Prometheus instrumentation:
// worker registrations, dispatches, event-processing latency and queue
// depth, and table sizes by status.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	WorkersTotal = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "nimbus_workers_total",
			Help: "Total number of known workers by state",
		},
		[]string{"state"},
	)

	WorkersRegisteredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "nimbus_workers_registered_total",
			Help: "Total number of successful worker registrations",
		},
	)

	WorkersRejectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nimbus_workers_rejected_total",
			Help: "Total number of rejected worker registrations by reason",
		},
		[]string{"reason"},
	)

	WorkloadsTotal = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "nimbus_workloads_total",
			Help: "Total number of workloads by status",
		},
		[]string{"status"},
	)

	InstancesTotal = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "nimbus_instances_total",
			Help: "Total number of instances by status",
		},
		[]string{"status"},
	)

	DispatchesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "nimbus_dispatches_total",
			Help: "Total number of instance dispatch frames sent to workers",
		},
	)

	DispatchFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "nimbus_dispatch_failures_total",
			Help: "Total number of dispatch frames that failed to send",
		},
	)

	EventQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "nimbus_event_queue_depth",
			Help: "Number of events currently buffered in the scheduling loop's queue",
		},
	)

	EventProcessingDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nimbus_event_processing_duration_seconds",
			Help:    "Time taken to process a single event through mutation, scan, placement, and cleanup",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"event_type"},
	)

	SchedulingLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "nimbus_scheduling_latency_seconds",
			Help:    "Time from instance insertion as Pending to its first dispatch emission",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(
		WorkersTotal,
		WorkersRegisteredTotal,
		WorkersRejectedTotal,
		WorkloadsTotal,
		InstancesTotal,
		DispatchesTotal,
		DispatchFailuresTotal,
		EventQueueDepth,
		EventProcessingDuration,
		SchedulingLatency,
	)
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer is a helper for timing operations.
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the duration to a histogram.
func (t *Timer) ObserveDuration(histogram prometheus.Histogram) {
	histogram.Observe(time.Since(t.start).Seconds())
}

// ObserveDurationVec records the duration to a histogram vec with labels.
func (t *Timer) ObserveDurationVec(histogram prometheus.ObserverVec, labels ...string) {
	histogram.WithLabelValues(labels...).Observe(time.Since(t.start).Seconds())
}

// Duration returns the elapsed time since the timer started.
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
