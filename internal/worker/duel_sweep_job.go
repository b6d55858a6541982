package worker

import (
	"context"

	"github.com/osse101/CasinoBot_Go/internal/logger"
)

// Sweeper expires stale sessions and reports how many it removed
type Sweeper interface {
	Sweep(ctx context.Context) int
}

// DuelSweepJob expires duel challenges nobody accepted in time
type DuelSweepJob struct {
	sweeper Sweeper
}

// NewDuelSweepJob creates a sweep job over the duel registry
func NewDuelSweepJob(sweeper Sweeper) *DuelSweepJob {
	return &DuelSweepJob{sweeper: sweeper}
}

// Name implements Named
func (j *DuelSweepJob) Name() string {
	return JobNameDuelSweep
}

// Process runs one sweep
func (j *DuelSweepJob) Process(ctx context.Context) error {
	if n := j.sweeper.Sweep(ctx); n > 0 {
		logger.FromContext(ctx).Debug(LogMsgDuelSweepRan, "expired", n)
	}
	return ctx.Err()
}
