// Package metrics exposes Prometheus instrumentation for the dispatch worker.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// DispatchMetrics records dispatch outcomes per event type.
type DispatchMetrics struct {
	duration      *prometheus.HistogramVec
	success       *prometheus.CounterVec
	failure       *prometheus.CounterVec
	notifications *prometheus.CounterVec
}

// NewDispatchMetrics registers the dispatch metrics on the provided registerer.
func NewDispatchMetrics(reg prometheus.Registerer) *DispatchMetrics {
	if reg == nil {
		return &DispatchMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dispatch_duration_seconds",
		Help:    "Duration of dispatch handling in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"event_type"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_success",
		Help: "Successfully handled dispatch events.",
	}, []string{"event_type"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_failure",
		Help: "Dispatch events that ended in a retryable failure.",
	}, []string{"event_type"})
	notifications := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_notifications_total",
		Help: "Push notifications attempted, by delivery outcome.",
	}, []string{"event_type", "outcome"})
	reg.MustRegister(duration, success, failure, notifications)

	return &DispatchMetrics{
		duration:      duration,
		success:       success,
		failure:       failure,
		notifications: notifications,
	}
}

// ObserveDuration records the handling duration for the named event type.
func (m *DispatchMetrics) ObserveDuration(eventType string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(eventType)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named event type.
func (m *DispatchMetrics) IncSuccess(eventType string) {
	if m == nil || m.success == nil {
		return
	}
	m.success.WithLabelValues(normalizeLabel(eventType)).Inc()
}

// IncFailure increments the failure counter for the named event type.
func (m *DispatchMetrics) IncFailure(eventType string) {
	if m == nil || m.failure == nil {
		return
	}
	m.failure.WithLabelValues(normalizeLabel(eventType)).Inc()
}

// AddNotifications adds to the notification counter for an outcome, either
// "sent" or "failed".
func (m *DispatchMetrics) AddNotifications(eventType, outcome string, count int) {
	if m == nil || m.notifications == nil || count <= 0 {
		return
	}
	m.notifications.WithLabelValues(normalizeLabel(eventType), outcome).Add(float64(count))
}

func normalizeLabel(eventType string) string {
	if eventType == "" {
		return "unknown"
	}

	return eventType
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(func() *DispatchMetrics {
		return NewDispatchMetrics(prometheus.DefaultRegisterer)
	}),
)
