package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/CasinoBot_Go/internal/casino"
	"github.com/osse101/CasinoBot_Go/internal/duel"
	"github.com/osse101/CasinoBot_Go/internal/economy"
	"github.com/osse101/CasinoBot_Go/internal/handler"
	"github.com/osse101/CasinoBot_Go/internal/logger"
	"github.com/osse101/CasinoBot_Go/internal/metrics"
)

// Config holds the listener and auth settings
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string
}

// Services are the command backends the routes dispatch to
type Services struct {
	Store   handler.Pinger
	Casino  casino.Service
	Economy economy.Service
	Duels   duel.Service
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(cfg Config, svcs Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, svcs),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// NewRouter builds the middleware stack and the command routes
func NewRouter(cfg Config, svcs Services) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svcs.Store))
	r.Get("/version", handler.HandleVersion(cfg.Version))
	r.Handle("/metrics", promhttp.Handler())

	duels := handler.NewDuelHandler(svcs.Duels)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/games/{game}", handler.HandlePlay(svcs.Casino))

		r.Post("/daily", handler.HandleDaily(svcs.Economy))
		r.Post("/pay", handler.HandlePay(svcs.Economy))
		r.Get("/leaderboard", handler.HandleLeaderboard(svcs.Economy))

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/balance", handler.HandleBalance(svcs.Economy))
			r.Get("/profile", handler.HandleProfile(svcs.Economy))
			r.Get("/inventory", handler.HandleInventory(svcs.Economy))
			r.Get("/duels", duels.HandleGetPending)
		})

		r.Route("/shop", func(r chi.Router) {
			r.Get("/", handler.HandleShop(svcs.Economy))
			r.Post("/{itemID}/buy", handler.HandleBuy(svcs.Economy))
		})

		r.Route("/activity", func(r chi.Router) {
			r.Post("/message", handler.HandleMessageActivity(svcs.Economy))
			r.Post("/reaction", handler.HandleReactionActivity(svcs.Economy))
		})

		r.Route("/duels", func(r chi.Router) {
			r.Post("/", duels.HandleChallenge)
			r.Get("/{id}", duels.HandleGet)
			r.Post("/{id}/accept", duels.HandleAccept)
			r.Post("/{id}/decline", duels.HandleDecline)
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		for _, path := range quietPaths {
			if strings.HasPrefix(r.URL.Path, path) {
				next.ServeHTTP(w, r)
				return
			}
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start serves until Stop is called. It returns nil after a graceful shutdown.
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
