package config

import "time"

// Storage backends
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Defaults
const (
	DefaultLogLevel            = "info"
	DefaultLogFormat           = "text"
	DefaultEnvironment         = "dev"
	DefaultServiceName         = "casino-bot"
	DefaultVersion             = "dev"
	DefaultDBMaxConns          = 20
	DefaultDBMaxConnIdleTime   = 5 * time.Minute
	DefaultDBMaxConnLifetime   = 30 * time.Minute
	DefaultLeaderboardCacheTTL = 30 * time.Second
	DefaultEventMaxRetries     = 5
	DefaultEventRetryDelay     = 2 * time.Second
	DefaultEventDeadLetterPath = "deadletter.jsonl"
	DefaultWorkerCount         = 2
	DefaultWorkerQueueSize     = 16
)
