package service

import (
	"sync/atomic"
	"time"
)

// Metrics tracks service call metrics
type Metrics struct {
	upstreamCalls      int64
	upstreamErrors     int64
	upstreamLatency    int64 // Total latency in nanoseconds
	validationFailures int64
	proposalsGenerated int64
}

// Stats is the JSON view of Metrics exposed on the health endpoint.
type Stats struct {
	UpstreamCalls      int64   `json:"upstream_calls"`
	UpstreamErrors     int64   `json:"upstream_errors"`
	AvgLatencyMs       float64 `json:"upstream_avg_latency_ms"`
	ErrorRatePct       float64 `json:"upstream_error_rate_pct"`
	ValidationFailures int64   `json:"validation_failures"`
	ProposalsGenerated int64   `json:"proposals_generated"`
}

var globalMetrics = &Metrics{}

// GetMetrics returns the current metrics snapshot
func GetMetrics() Metrics {
	return Metrics{
		upstreamCalls:      atomic.LoadInt64(&globalMetrics.upstreamCalls),
		upstreamErrors:     atomic.LoadInt64(&globalMetrics.upstreamErrors),
		upstreamLatency:    atomic.LoadInt64(&globalMetrics.upstreamLatency),
		validationFailures: atomic.LoadInt64(&globalMetrics.validationFailures),
		proposalsGenerated: atomic.LoadInt64(&globalMetrics.proposalsGenerated),
	}
}

// ResetMetrics resets all metrics (useful for testing)
func ResetMetrics() {
	atomic.StoreInt64(&globalMetrics.upstreamCalls, 0)
	atomic.StoreInt64(&globalMetrics.upstreamErrors, 0)
	atomic.StoreInt64(&globalMetrics.upstreamLatency, 0)
	atomic.StoreInt64(&globalMetrics.validationFailures, 0)
	atomic.StoreInt64(&globalMetrics.proposalsGenerated, 0)
}

func recordUpstreamCall(duration time.Duration, err error) {
	atomic.AddInt64(&globalMetrics.upstreamCalls, 1)
	atomic.AddInt64(&globalMetrics.upstreamLatency, duration.Nanoseconds())
	if err != nil {
		atomic.AddInt64(&globalMetrics.upstreamErrors, 1)
	}
}

// recordValidationFailure counts requests rejected before any upstream call.
// They are kept out of upstreamCalls so the error rate reflects only the
// completion service.
func recordValidationFailure() {
	atomic.AddInt64(&globalMetrics.validationFailures, 1)
}

func recordProposalGenerated() {
	atomic.AddInt64(&globalMetrics.proposalsGenerated, 1)
}

// AverageUpstreamLatency returns the average latency in milliseconds
func (m Metrics) AverageUpstreamLatency() float64 {
	if m.upstreamCalls == 0 {
		return 0
	}
	avgNs := float64(m.upstreamLatency) / float64(m.upstreamCalls)
	return avgNs / 1e6
}

// UpstreamErrorRate returns the error rate as a percentage
func (m Metrics) UpstreamErrorRate() float64 {
	if m.upstreamCalls == 0 {
		return 0
	}
	return float64(m.upstreamErrors) / float64(m.upstreamCalls) * 100
}

// Stats flattens a snapshot for /health. Latency is in milliseconds and the
// error rate is a percentage of upstream calls.
func (m Metrics) Stats() Stats {
	return Stats{
		UpstreamCalls:      m.upstreamCalls,
		UpstreamErrors:     m.upstreamErrors,
		AvgLatencyMs:       m.AverageUpstreamLatency(),
		ErrorRatePct:       m.UpstreamErrorRate(),
		ValidationFailures: m.validationFailures,
		ProposalsGenerated: m.proposalsGenerated,
	}
}
