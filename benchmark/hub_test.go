package benchmark

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTestHub(t *testing.T, interval time.Duration) *websocket.Conn {
	t.Helper()
	hub := NewHub(NewService(), interval)
	srv := httptest.NewServer(http.HandlerFunc(hub.Serve))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg map[string]any
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestRawPingGetsPong(t *testing.T) {
	conn := dialTestHub(t, time.Minute)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("ping")))

	msg := readMessage(t, conn)
	assert.Equal(t, "pong", msg["type"])
	ts, ok := msg["timestamp"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)
}

func TestSubscribeMetricsImmediateUpdate(t *testing.T) {
	conn := dialTestHub(t, time.Minute)
	require.NoError(t, conn.WriteJSON(map[string]any{
		"type":     "subscribe_metrics",
		"industry": "tech",
		"metrics":  []string{"digital_transformation"},
	}))

	update := readMessage(t, conn)
	require.Equal(t, "benchmark_update", update["type"])
	data, ok := update["data"].(map[string]any)
	require.True(t, ok)
	metric, ok := data["digital_transformation"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 80.0, metric["average"])
	assert.Equal(t, 95.0, metric["maxValue"])
	assert.Equal(t, "stable", metric["trend"])

	confirmed := readMessage(t, conn)
	assert.Equal(t, "subscription_confirmed", confirmed["type"])
	assert.Equal(t, "tech", confirmed["industry"])
}

func TestLegacySubscribe(t *testing.T) {
	conn := dialTestHub(t, time.Minute)
	require.NoError(t, conn.WriteJSON(map[string]any{"type": "subscribe", "channel": "market_share"}))

	confirmed := readMessage(t, conn)
	assert.Equal(t, "subscription_confirmed", confirmed["type"])
	assert.Equal(t, "market_share", confirmed["channel"])

	update := readMessage(t, conn)
	assert.Equal(t, "benchmark_update", update["type"])
	data := update["data"].(map[string]any)
	assert.Contains(t, data, "market_share")
}

func TestMalformedMessageGetsErrorReply(t *testing.T) {
	conn := dialTestHub(t, time.Minute)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))

	msg := readMessage(t, conn)
	assert.Equal(t, "error", msg["type"])

	// connection survives; a ping still works
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("ping")))
	assert.Equal(t, "pong", readMessage(t, conn)["type"])
}

func TestUnknownIndustryAndMetricFallback(t *testing.T) {
	conn := dialTestHub(t, time.Minute)
	require.NoError(t, conn.WriteJSON(map[string]any{
		"type":     "subscribe_metrics",
		"industry": "nowhere",
		"metrics":  []string{"no_such_metric"},
	}))

	update := readMessage(t, conn)
	data := update["data"].(map[string]any)
	metric := data["no_such_metric"].(map[string]any)
	assert.Equal(t, 50.0, metric["average"])
	assert.Equal(t, 90.0, metric["maxValue"])
}

func TestPeriodicBroadcastCarriesTrend(t *testing.T) {
	conn := dialTestHub(t, 50*time.Millisecond)
	require.NoError(t, conn.WriteJSON(map[string]any{
		"type":     "subscribe_metrics",
		"industry": "finance",
		"metrics":  []string{"revenue_growth", "profit_margin"},
	}))
	readMessage(t, conn) // immediate update
	readMessage(t, conn) // confirmation

	broadcast := readMessage(t, conn)
	require.Equal(t, "benchmark_update", broadcast["type"])
	data := broadcast["data"].(map[string]any)
	require.Len(t, data, 2)
	for name, raw := range data {
		var mu MetricUpdate
		b, err := json.Marshal(raw)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(b, &mu))
		assert.Contains(t, []string{"up", "down", "stable"}, mu.Trend, "metric %s", name)
		assert.InDelta(t, mu.Average*1.8, mu.MaxValue, 1e-9, "metric %s", name)
		assert.Equal(t, "finance", mu.Industry)
	}
}

func TestSubscribeWithoutChannelIsError(t *testing.T) {
	conn := dialTestHub(t, time.Minute)
	require.NoError(t, conn.WriteJSON(map[string]any{"type": "subscribe"}))
	assert.Equal(t, "error", readMessage(t, conn)["type"])

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "subscribe_metrics", "industry": ""}))
	assert.Equal(t, "error", readMessage(t, conn)["type"])
}
