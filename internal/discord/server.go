package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/CasinoBot_Go/internal/logger"
)

const (
	healthPingTimeout = 2 * time.Second
	serverStopTimeout = 5 * time.Second
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HTTPServer serves the bot's health and metrics endpoints
type HTTPServer struct {
	server *http.Server
	bot    *Bot
	store  Pinger
}

// NewHTTPServer creates a new HTTP server
func NewHTTPServer(port int, bot *Bot, store Pinger) *HTTPServer {
	mux := http.NewServeMux()

	srv := &HTTPServer{
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		bot:   bot,
		store: store,
	}

	mux.HandleFunc("/healthz", srv.HandleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	return srv
}

// Start starts the HTTP server in the background
func (s *HTTPServer) Start() {
	go func() {
		logger.Info(LogMsgHealthServerStart, "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(LogMsgHealthServerFailed, "error", err)
		}
	}()
}

// Stop stops the HTTP server, waiting at most serverStopTimeout past ctx
func (s *HTTPServer) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, serverStopTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}
