package benchmark

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// inbound is the envelope for every client message except the raw "ping".
type inbound struct {
	Type        string   `json:"type"`
	Channel     string   `json:"channel,omitempty"`
	Industry    string   `json:"industry,omitempty"`
	Subcategory string   `json:"subcategory,omitempty"`
	Metrics     []string `json:"metrics,omitempty"`
}

// MetricUpdate is one metric's entry inside a benchmark_update payload.
type MetricUpdate struct {
	Average       float64 `json:"average"`
	MaxValue      float64 `json:"maxValue"`
	Trend         string  `json:"trend"`
	ChangePercent float64 `json:"changePercent"`
	Industry      string  `json:"industry,omitempty"`
}

type subKey struct {
	industry    string
	subcategory string
	metric      string
}

type client struct {
	conn *websocket.Conn
	send chan any
	// subscriptions keyed by (industry, subcategory, metric) so repeated
	// subscribes on a long-lived connection do not grow a list
	subs map[subKey]struct{}
	// last average sent per subscription, for per-client trend classification
	prev map[subKey]float64
}

// Hub accepts WebSocket connections at /ws and broadcasts benchmark updates.
// The broadcast ticker runs only while at least one connection is live.
type Hub struct {
	svc      *Service
	interval time.Duration
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	stop    chan struct{}
}

func NewHub(svc *Service, interval time.Duration) *Hub {
	return &Hub{
		svc:      svc,
		interval: interval,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: map[*client]struct{}{},
	}
}

// Serve upgrades an HTTP request and runs the connection until it closes.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	cl := &client{
		conn: conn,
		send: make(chan any, 16),
		subs: map[subKey]struct{}{},
		prev: map[subKey]float64{},
	}
	h.register(cl)
	go cl.writeLoop()
	h.readLoop(cl)
}

func (h *Hub) register(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[cl] = struct{}{}
	if len(h.clients) == 1 {
		h.stop = make(chan struct{})
		go h.broadcastLoop(h.stop)
	}
}

func (h *Hub) unregister(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[cl]; !ok {
		return
	}
	delete(h.clients, cl)
	close(cl.send)
	if len(h.clients) == 0 {
		close(h.stop)
		h.stop = nil
	}
}

func (cl *client) writeLoop() {
	for msg := range cl.send {
		if err := cl.conn.WriteJSON(msg); err != nil {
			break
		}
	}
	cl.conn.Close()
}

func (cl *client) reply(msg any) {
	select {
	case cl.send <- msg:
	default:
		// slow consumer; drop rather than stall the feed
	}
}

func (h *Hub) readLoop(cl *client) {
	defer h.unregister(cl)
	for {
		_, raw, err := cl.conn.ReadMessage()
		if err != nil {
			return
		}
		if string(raw) == "ping" {
			cl.reply(map[string]any{"type": "pong", "timestamp": timestamp()})
			continue
		}
		var msg inbound
		if err := json.Unmarshal(raw, &msg); err != nil {
			cl.reply(map[string]any{"type": "error", "message": "invalid JSON message"})
			continue
		}
		switch msg.Type {
		case "subscribe":
			h.handleSubscribe(cl, msg)
		case "subscribe_metrics":
			h.handleSubscribeMetrics(cl, msg)
		case "ping":
			cl.reply(map[string]any{"type": "pong", "timestamp": timestamp()})
		default:
			cl.reply(map[string]any{"type": "error", "message": "unknown message type: " + msg.Type})
		}
	}
}

// handleSubscribe keeps the legacy channel protocol alive: confirm, then push
// one synthetic sample so old dashboards render immediately.
func (h *Hub) handleSubscribe(cl *client, msg inbound) {
	if msg.Channel == "" {
		cl.reply(map[string]any{"type": "error", "message": "subscribe requires a channel"})
		return
	}
	cl.reply(map[string]any{"type": "subscription_confirmed", "channel": msg.Channel})
	v := h.svc.Lookup("", msg.Channel)
	cl.reply(map[string]any{
		"type":      "benchmark_update",
		"timestamp": timestamp(),
		"data": map[string]MetricUpdate{
			msg.Channel: {Average: v.Average, MaxValue: v.MaxValue, Trend: "stable"},
		},
	})
}

func (h *Hub) handleSubscribeMetrics(cl *client, msg inbound) {
	if msg.Industry == "" || len(msg.Metrics) == 0 {
		cl.reply(map[string]any{"type": "error", "message": "subscribe_metrics requires industry and metrics"})
		return
	}
	data := map[string]MetricUpdate{}
	// subs and prev are read by broadcast under the hub lock
	h.mu.Lock()
	for _, metric := range msg.Metrics {
		key := subKey{industry: msg.Industry, subcategory: msg.Subcategory, metric: metric}
		cl.subs[key] = struct{}{}
		v := h.svc.Lookup(msg.Industry, metric)
		data[metric] = MetricUpdate{
			Average:  v.Average,
			MaxValue: v.MaxValue,
			Trend:    "stable",
			Industry: msg.Industry,
		}
		cl.prev[key] = v.Average
	}
	h.mu.Unlock()
	cl.reply(map[string]any{"type": "benchmark_update", "timestamp": timestamp(), "data": data})
	cl.reply(map[string]any{
		"type":        "subscription_confirmed",
		"industry":    msg.Industry,
		"subcategory": msg.Subcategory,
		"metrics":     msg.Metrics,
	})
}

func (h *Hub) broadcastLoop(stop chan struct{}) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			h.svc.Advance()
			h.broadcast()
		}
	}
}

func (h *Hub) broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	ts := timestamp()
	for cl := range h.clients {
		if len(cl.subs) == 0 {
			continue
		}
		data := map[string]MetricUpdate{}
		for key := range cl.subs {
			v := h.svc.Lookup(key.industry, key.metric)
			prev, ok := cl.prev[key]
			if !ok {
				prev = v.Average
			}
			data[key.metric] = MetricUpdate{
				Average:       v.Average,
				MaxValue:      v.MaxValue,
				Trend:         Trend(prev, v.Average),
				ChangePercent: ChangePercent(prev, v.Average),
				Industry:      key.industry,
			}
			cl.prev[key] = v.Average
		}
		cl.reply(map[string]any{"type": "benchmark_update", "timestamp": ts, "data": data})
	}
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
