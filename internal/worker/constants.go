package worker

import "time"

// DefaultJobTimeout bounds a single job run
const DefaultJobTimeout = 30 * time.Second

// Job names
const (
	JobNameDuelSweep = "duel_sweep"
	UnnamedJob       = "unnamed"
)

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	// LogMsgWorkerJobFailed is logged when a worker fails to process a job
	LogMsgWorkerJobFailed = "Worker job failed"
	// LogMsgWorkerQueueFull is logged when a job is dropped because the queue is full
	LogMsgWorkerQueueFull = "Worker queue full, job skipped"
	// LogMsgDuelSweepRan is logged after a sweep that expired sessions
	LogMsgDuelSweepRan = "Duel sweep ran"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
