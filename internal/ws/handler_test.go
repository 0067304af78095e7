package ws

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grignard-labs/calcd/internal/calculus"
	"github.com/grignard-labs/calcd/internal/logging"
	"github.com/grignard-labs/calcd/internal/monitoring"
	calcprovider "github.com/grignard-labs/calcd/internal/providers/calculus"
	"github.com/grignard-labs/calcd/internal/service"
)

var testMetrics = monitoring.NewMetrics()

func dialTestServer(t *testing.T) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := service.NewRegistry()
	require.NoError(t, registry.Register(calcprovider.NewProvider(calculus.NewDefault())))

	h := NewHandler(registry, testMetrics, logging.NewDevelopment())
	r := gin.New()
	r.GET("/stream", h.HandleConnection)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	// Discard the welcome frame.
	var welcome map[string]interface{}
	require.NoError(t, conn.ReadJSON(&welcome))
	require.Equal(t, "system", welcome["type"])

	return conn
}

func TestPing(t *testing.T) {
	conn := dialTestServer(t)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{"type": "ping"}))

	var reply map[string]interface{}
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "pong", reply["type"])
}

func TestExecuteTool(t *testing.T) {
	conn := dialTestServer(t)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type":    "execute",
		"tool_id": "calc.evaluate",
		"params":  map[string]interface{}{"expression": "x^2", "value": 3},
	}))

	var reply map[string]interface{}
	require.NoError(t, conn.ReadJSON(&reply))
	require.Equal(t, "result", reply["type"])

	result := reply["result"].(map[string]interface{})
	require.Equal(t, true, result["success"])
	data := result["data"].(map[string]interface{})
	assert.InDelta(t, 9, data["re"].(float64), 1e-9)
}

func TestEvaluateStream(t *testing.T) {
	conn := dialTestServer(t)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type":       "evaluate",
		"expression": "x^2",
		"points":     []interface{}{1, 2, "1+i"},
	}))

	wantRe := []float64{1, 4, 0}
	wantIm := []float64{0, 0, 2}
	for i := 0; i < 3; i++ {
		var frame map[string]interface{}
		require.NoError(t, conn.ReadJSON(&frame))
		require.Equal(t, "value", frame["type"])
		assert.Equal(t, float64(i), frame["index"])
		assert.InDelta(t, wantRe[i], frame["re"].(float64), 1e-9)
		assert.InDelta(t, wantIm[i], frame["im"].(float64), 1e-9)
	}

	var done map[string]interface{}
	require.NoError(t, conn.ReadJSON(&done))
	assert.Equal(t, "complete", done["type"])
	assert.Equal(t, float64(3), done["count"])
}

func TestEvaluateStreamSkipsBadPoints(t *testing.T) {
	conn := dialTestServer(t)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type":       "evaluate",
		"expression": "1/x",
		"points":     []interface{}{0, 2},
	}))

	var first map[string]interface{}
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, "point_error", first["type"])

	var second map[string]interface{}
	require.NoError(t, conn.ReadJSON(&second))
	require.Equal(t, "value", second["type"])
	assert.InDelta(t, 0.5, second["re"].(float64), 1e-12)
}

func TestCompileErrorEndsRequest(t *testing.T) {
	conn := dialTestServer(t)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type":       "evaluate",
		"expression": "x+*2",
		"points":     []interface{}{1},
	}))

	var reply map[string]interface{}
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "error", reply["type"])
}

func TestUnknownMessageType(t *testing.T) {
	conn := dialTestServer(t)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{"type": "mystery"}))

	var reply map[string]interface{}
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "error", reply["type"])
}
