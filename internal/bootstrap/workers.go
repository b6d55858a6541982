package bootstrap

import (
	"log/slog"

	"github.com/osse101/CasinoBot_Go/internal/config"
	"github.com/osse101/CasinoBot_Go/internal/scheduler"
	"github.com/osse101/CasinoBot_Go/internal/worker"
)

// StartWorkers starts the worker pool and schedules the periodic duel sweep
func StartWorkers(cfg *config.Config, sweeper worker.Sweeper) (*worker.Pool, *scheduler.Scheduler) {
	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize, worker.DefaultJobTimeout)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.DuelSweepInterval, worker.NewDuelSweepJob(sweeper))

	slog.Info(LogMsgWorkersStarted,
		"workers", cfg.WorkerCount,
		"duel_sweep_interval", cfg.DuelSweepInterval)
	return pool, sched
}
