// Package monitoring exposes Prometheus metrics for the HTTP surface and
// the numerical engine's tool executions.
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Tool execution metrics
	ToolCalls    *prometheus.CounterVec
	ToolDuration *prometheus.HistogramVec
	ToolErrors   *prometheus.CounterVec

	// Degraded results by routine (differentiate, integrate, contour, root)
	DegradedResults *prometheus.CounterVec

	// Expression compilation
	CompileErrors prometheus.Counter

	// WebSocket metrics
	WSConnections prometheus.Gauge
	WSMessages    *prometheus.CounterVec

	Uptime    prometheus.Gauge
	startTime time.Time
}

// NewMetrics creates and registers all collectors on the default registry.
func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),

		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calcd_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "calcd_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		ToolCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calcd_tool_calls_total",
				Help: "Total tool executions by tool ID",
			},
			[]string{"tool", "status"},
		),
		ToolDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "calcd_tool_duration_seconds",
				Help:    "Tool execution duration in seconds",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
			},
			[]string{"tool"},
		),
		ToolErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calcd_tool_errors_total",
				Help: "Total failed tool executions by tool ID",
			},
			[]string{"tool"},
		),

		DegradedResults: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calcd_degraded_results_total",
				Help: "Results produced with reduced accuracy, by routine",
			},
			[]string{"routine"},
		),

		CompileErrors: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "calcd_compile_errors_total",
				Help: "Expression compilation failures",
			},
		),

		WSConnections: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "calcd_ws_connections",
				Help: "Active WebSocket connections",
			},
		),
		WSMessages: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calcd_ws_messages_total",
				Help: "WebSocket messages by direction",
			},
			[]string{"direction"},
		),

		Uptime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "calcd_uptime_seconds",
				Help: "Process uptime in seconds",
			},
		),
	}
}

// RecordHTTPRequest records one served request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordToolCall records one tool execution with its outcome.
func (m *Metrics) RecordToolCall(tool, status string, duration time.Duration) {
	m.ToolCalls.WithLabelValues(tool, status).Inc()
	m.ToolDuration.WithLabelValues(tool).Observe(duration.Seconds())
	if status == "error" {
		m.ToolErrors.WithLabelValues(tool).Inc()
	}
}

// RecordDegraded records a reduced-accuracy result from a routine.
func (m *Metrics) RecordDegraded(routine string) {
	m.DegradedResults.WithLabelValues(routine).Inc()
}

// UpdateUptime refreshes the uptime gauge.
func (m *Metrics) UpdateUptime() {
	m.Uptime.Set(time.Since(m.startTime).Seconds())
}
