// Package observability holds the Prometheus collectors and OpenTelemetry setup shared by the service.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agora_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "agora_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// WebhookEventsTotal counts identity webhook deliveries by event type and outcome.
	WebhookEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agora_webhook_events_total",
		Help: "Identity webhook deliveries by event type and outcome",
	}, []string{"event_type", "outcome"})

	// UpvoteTogglesTotal counts upvote toggles by resulting direction.
	UpvoteTogglesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agora_upvote_toggles_total",
		Help: "Upvote toggles by direction (added or removed)",
	}, []string{"direction"})

	// SoftDeletesTotal counts soft deletes by resource.
	SoftDeletesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agora_soft_deletes_total",
		Help: "Soft deletes by resource",
	}, []string{"resource"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}

// RecordWebhook increments the webhook counter.
func RecordWebhook(eventType, outcome string) {
	if eventType == "" {
		eventType = "unknown"
	}
	WebhookEventsTotal.WithLabelValues(eventType, outcome).Inc()
}
