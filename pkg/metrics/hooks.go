package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HookMetrics records dispatch outcomes for host hook handlers.
type HookMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewHookMetrics registers the hook metrics on the provided registerer.
func NewHookMetrics(reg prometheus.Registerer) *HookMetrics {
	if reg == nil {
		return &HookMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vendor_payments_hook_duration_seconds",
		Help:    "Duration of hook handler executions in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"hook"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vendor_payments_hook_success_total",
		Help: "Hook handler executions that returned without error.",
	}, []string{"hook"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vendor_payments_hook_failure_total",
		Help: "Hook handler executions that returned an error.",
	}, []string{"hook"})
	reg.MustRegister(duration, success, failure)
	return &HookMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the duration for the named hook.
func (h *HookMetrics) ObserveDuration(hook string, duration time.Duration) {
	if h == nil || h.duration == nil {
		return
	}
	h.duration.WithLabelValues(normalizeLabel(hook)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named hook.
func (h *HookMetrics) IncSuccess(hook string) {
	if h == nil || h.success == nil {
		return
	}
	h.success.WithLabelValues(normalizeLabel(hook)).Inc()
}

// IncFailure increments the failure counter for the named hook.
func (h *HookMetrics) IncFailure(hook string) {
	if h == nil || h.failure == nil {
		return
	}
	h.failure.WithLabelValues(normalizeLabel(hook)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
