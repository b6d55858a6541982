package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CasinoBot_Go/internal/event"
	"github.com/osse101/CasinoBot_Go/internal/scheduler"
	"github.com/osse101/CasinoBot_Go/internal/worker"
)

// Stopper is an inbound surface that drains on shutdown, such as the HTTP
// server or the bot's health listener
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil members are skipped.
type ShutdownComponents struct {
	Servers            []Stopper
	Scheduler          *scheduler.Scheduler
	Pool               *worker.Pool
	ResilientPublisher *event.ResilientPublisher
	CloseStore         func()
}

// GracefulShutdown stops components in dependency order:
//  1. inbound surfaces (no new commands)
//  2. scheduler then workers (no new sweeps, in-flight ones finish)
//  3. event publisher (flush pending retries)
//  4. store
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	for _, srv := range c.Servers {
		if srv == nil {
			continue
		}
		if err := srv.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.Pool != nil {
		c.Pool.Stop()
	}

	if c.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if c.CloseStore != nil {
		c.CloseStore()
	}

	slog.Info(LogMsgStopped)
}
