// Package ws streams calculator results over a WebSocket. One connection
// serves many requests; the evaluate message streams a value per point so
// clients can plot curves without re-posting the expression.
package ws

import (
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/grignard-labs/calcd/internal/expr"
	"github.com/grignard-labs/calcd/internal/logging"
	"github.com/grignard-labs/calcd/internal/monitoring"
	"github.com/grignard-labs/calcd/internal/providers/common"
	"github.com/grignard-labs/calcd/internal/service"
	"github.com/grignard-labs/calcd/internal/shared/num"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message is the client-to-server frame.
type Message struct {
	Type       string                 `json:"type"`
	ToolID     string                 `json:"tool_id,omitempty"`
	Params     map[string]interface{} `json:"params,omitempty"`
	Expression string                 `json:"expression,omitempty"`
	Variable   string                 `json:"variable,omitempty"`
	Points     []interface{}          `json:"points,omitempty"`
}

// Handler manages WebSocket connections.
type Handler struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
	log      *logging.Logger
}

// NewHandler creates the WebSocket handler.
func NewHandler(registry *service.Registry, metrics *monitoring.Metrics, log *logging.Logger) *Handler {
	return &Handler{registry: registry, metrics: metrics, log: log}
}

// HandleConnection upgrades the request and serves frames until the client
// disconnects.
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	h.metrics.WSConnections.Inc()
	defer h.metrics.WSConnections.Dec()

	h.send(conn, map[string]interface{}{
		"type":    "system",
		"message": "connected to calcd",
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug("websocket read error", zap.Error(err))
			}
			return
		}
		h.metrics.WSMessages.WithLabelValues("in").Inc()

		var msg Message
		if err := sonic.Unmarshal(raw, &msg); err != nil {
			h.sendError(conn, "malformed message")
			continue
		}

		switch msg.Type {
		case "execute":
			h.handleExecute(c, conn, msg)
		case "evaluate":
			h.handleEvaluate(conn, msg)
		case "ping":
			h.send(conn, map[string]interface{}{"type": "pong"})
		default:
			h.sendError(conn, "unknown message type")
		}
	}
}

// handleExecute runs one registered tool and returns its envelope.
func (h *Handler) handleExecute(c *gin.Context, conn *websocket.Conn, msg Message) {
	if msg.ToolID == "" {
		h.sendError(conn, "tool_id required")
		return
	}

	result, err := h.registry.Execute(c.Request.Context(), msg.ToolID, msg.Params)
	if err != nil {
		h.sendError(conn, err.Error())
		return
	}

	h.send(conn, map[string]interface{}{
		"type":      "result",
		"tool_id":   msg.ToolID,
		"result":    result,
		"timestamp": time.Now().Unix(),
	})
}

// handleEvaluate compiles once and streams a value frame per point.
// Unevaluable points produce error frames without ending the stream.
func (h *Handler) handleEvaluate(conn *websocket.Conn, msg Message) {
	if msg.Expression == "" {
		h.sendError(conn, "expression required")
		return
	}
	variable := msg.Variable
	if variable == "" {
		variable = "x"
	}

	compiled, err := expr.Compile(msg.Expression, variable)
	if err != nil {
		h.metrics.CompileErrors.Inc()
		h.sendError(conn, err.Error())
		return
	}

	for index, point := range msg.Points {
		z, ok := common.ToComplex(point)
		if !ok {
			h.send(conn, map[string]interface{}{
				"type":  "point_error",
				"index": index,
				"error": "unparseable point",
			})
			continue
		}

		value, err := compiled.Eval(z)
		if err != nil {
			h.send(conn, map[string]interface{}{
				"type":  "point_error",
				"index": index,
				"error": err.Error(),
			})
			continue
		}

		h.send(conn, map[string]interface{}{
			"type":   "value",
			"index":  index,
			"result": num.Format(value),
			"re":     real(value),
			"im":     imag(value),
		})
	}

	h.send(conn, map[string]interface{}{
		"type":      "complete",
		"count":     len(msg.Points),
		"timestamp": time.Now().Unix(),
	})
}

func (h *Handler) send(conn *websocket.Conn, data interface{}) {
	raw, err := sonic.Marshal(data)
	if err != nil {
		h.log.Warn("websocket marshal failed", zap.Error(err))
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, raw); err != nil {
		h.log.Debug("websocket write failed", zap.Error(err))
		return
	}
	h.metrics.WSMessages.WithLabelValues("out").Inc()
}

func (h *Handler) sendError(conn *websocket.Conn, msg string) {
	h.send(conn, map[string]interface{}{
		"type":      "error",
		"message":   msg,
		"timestamp": time.Now().Unix(),
	})
}
