package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/osse101/CasinoBot_Go/internal/metrics"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string    `json:"status"`
	Uptime           string    `json:"uptime"`
	Connected        bool      `json:"connected"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitempty"`
	StoreReachable   bool      `json:"store_reachable"`
}

var (
	startTime       = time.Now()
	commandCounter  atomic.Int64
	lastCommandUnix atomic.Int64
)

// RecordCommand counts a handled interaction
func RecordCommand(name string) {
	commandCounter.Add(1)
	lastCommandUnix.Store(time.Now().UnixNano())
	metrics.DiscordCommands.WithLabelValues(name).Inc()
}

// HandleHealth reports gateway connectivity and store reachability
func (h *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	connected := h.bot.Session != nil && h.bot.Session.DataReady

	storeReachable := false
	if h.store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		storeReachable = h.store.Ping(ctx) == nil
		cancel()
	}

	status := "healthy"
	code := http.StatusOK
	if !connected || !storeReachable {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	health := HealthStatus{
		Status:           status,
		Uptime:           time.Since(startTime).String(),
		Connected:        connected,
		CommandsReceived: commandCounter.Load(),
		StoreReachable:   storeReachable,
	}
	if last := lastCommandUnix.Load(); last > 0 {
		health.LastCommandTime = time.Unix(0, last).UTC()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(health)
}
