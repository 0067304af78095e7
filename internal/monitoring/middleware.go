package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware records request counts and latencies for every route.
func Middleware(metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		metrics.RecordHTTPRequest(c.Request.Method, path, status, time.Since(start))
		metrics.UpdateUptime()
	}
}

// Timer measures one tool execution.
type Timer struct {
	start   time.Time
	metrics *Metrics
	tool    string
}

// NewTimer starts a timer for a tool.
func NewTimer(metrics *Metrics, tool string) *Timer {
	return &Timer{start: time.Now(), metrics: metrics, tool: tool}
}

// Stop records the duration with the outcome ("ok", "error", "degraded").
func (t *Timer) Stop(status string) {
	t.metrics.RecordToolCall(t.tool, status, time.Since(t.start))
}
