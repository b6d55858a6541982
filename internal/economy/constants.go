package economy

import "time"

// Cache settings
const (
	// CacheSchemaVersion is bumped when the cached leaderboard shape changes
	CacheSchemaVersion = "1.0"

	// LeaderboardCacheSize bounds the number of distinct limits cached
	LeaderboardCacheSize = 8

	// DefaultLeaderboardTTL is used when no TTL is configured
	DefaultLeaderboardTTL = 30 * time.Second
)

// Log messages
const (
	LogMsgDailyClaimed      = "Daily bonus claimed"
	LogMsgDailyOnCooldown   = "Daily bonus on cooldown"
	LogMsgTransferCompleted = "Points transferred"
	LogMsgItemPurchased     = "Item purchased"
	LogMsgMessageRewarded   = "Message rewarded"
	LogMsgReactionRewarded  = "Reaction rewarded"
	LogMsgLevelUp           = "Account leveled up"
	LogMsgStoreFailed       = "Store operation failed"
	LogMsgLeaderboardCached = "Leaderboard served from cache"
)

// Error messages
const (
	ErrMsgMinimumTransfer = "minimum transfer is %d points"
	ErrMsgBalanceLow      = "balance %d cannot cover %d"
	ErrMsgPriceTooHigh    = "%s costs %d points, you have %d"
)

// Level up sources
const (
	SourceDaily = "daily"
)
