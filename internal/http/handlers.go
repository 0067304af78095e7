// Package http contains the REST handlers for the calculator service.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/grignard-labs/calcd/internal/logging"
	"github.com/grignard-labs/calcd/internal/monitoring"
	"github.com/grignard-labs/calcd/internal/service"
	"github.com/grignard-labs/calcd/internal/types"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
	log      *logging.Logger
	started  time.Time
}

// NewHandlers creates the handler set.
func NewHandlers(registry *service.Registry, metrics *monitoring.Metrics, log *logging.Logger) *Handlers {
	return &Handlers{
		registry: registry,
		metrics:  metrics,
		log:      log,
		started:  time.Now(),
	}
}

// Root handles the liveness check.
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "calcd",
		"version": "1.0.0",
	})
}

// Health reports registry state and uptime.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"uptime_seconds": time.Since(h.started).Seconds(),
		"registry":       h.registry.Stats(),
	})
}

// ListServices lists registered service definitions.
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if s := c.Query("category"); s != "" {
		cat := types.Category(s)
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(category),
		"stats":    h.registry.Stats(),
	})
}

// ExecuteService executes an arbitrary registered tool.
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.execute(c, req.ToolID, req.Params)
}

// Evaluate handles POST /calculus/evaluate.
func (h *Handlers) Evaluate(c *gin.Context) {
	var req types.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.execute(c, "calc.evaluate", map[string]interface{}{
		"expression": req.Expression,
		"variable":   req.Variable,
		"value":      req.Value,
	})
}

// Differentiate handles POST /calculus/differentiate.
func (h *Handlers) Differentiate(c *gin.Context) {
	var req types.DifferentiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.execute(c, "calc.differentiate", map[string]interface{}{
		"expression": req.Expression,
		"variable":   req.Variable,
		"point":      req.Point,
		"mode":       req.Mode,
	})
}

// Integrate handles POST /calculus/integrate.
func (h *Handlers) Integrate(c *gin.Context) {
	var req types.IntegrateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.execute(c, "calc.integrate", map[string]interface{}{
		"expression": req.Expression,
		"variable":   req.Variable,
		"low":        *req.Low,
		"high":       *req.High,
	})
}

// Contour handles POST /calculus/contour.
func (h *Handlers) Contour(c *gin.Context) {
	var req types.ContourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := map[string]interface{}{
		"expression": req.Expression,
		"variable":   req.Variable,
		"curve":      req.Curve,
		"parameter":  req.Parameter,
		"low":        *req.Low,
		"high":       *req.High,
	}
	if req.Steps != 0 {
		params["steps"] = req.Steps
	}
	h.execute(c, "calc.contour", params)
}

// FindRoot handles POST /calculus/root.
func (h *Handlers) FindRoot(c *gin.Context) {
	var req types.RootRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.execute(c, "calc.root", map[string]interface{}{
		"expression": req.Expression,
		"variable":   req.Variable,
		"guess":      req.Guess,
	})
}

// execute routes through the registry, recording tool metrics. Tool-level
// failures stay HTTP 200 with success=false in the envelope; only routing
// problems are 4xx/5xx.
func (h *Handlers) execute(c *gin.Context, toolID string, params map[string]interface{}) {
	timer := monitoring.NewTimer(h.metrics, toolID)

	result, err := h.registry.Execute(c.Request.Context(), toolID, params)
	if err != nil {
		timer.Stop("error")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	switch {
	case !result.Success:
		timer.Stop("error")
		h.log.Debug("tool execution failed",
			zap.String("tool", toolID),
			zap.Stringp("error", result.Error))
	case result.Data["status"] == "degraded":
		timer.Stop("degraded")
		h.metrics.RecordDegraded(toolID)
	default:
		timer.Stop("ok")
	}

	c.JSON(http.StatusOK, result)
}
