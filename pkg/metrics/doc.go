/*
Package metrics exports the scheduler's Prometheus instrumentation.

Metrics cover worker registration, placement dispatch, and the
scheduling loop's own event-processing latency and queue depth, scraped
over HTTP in the Prometheus text exposition format.

# Usage

	import "github.com/cuemby/nimbus/pkg/metrics"

	metrics.WorkersTotal.WithLabelValues("ready").Set(3)
	metrics.WorkersRegisteredTotal.Inc()

	timer := metrics.NewTimer()
	// ... process an event ...
	timer.ObserveDurationVec(metrics.EventProcessingDuration, "register")

	http.Handle("/metrics", metrics.Handler())

# See Also

  - Prometheus client library: https://github.com/prometheus/client_golang
*/
package metrics
