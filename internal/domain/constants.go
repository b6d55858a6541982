package domain

import "time"

// Stake minimums
const (
	MinGameStake     int64 = 200
	MinPvPStake      int64 = 500
	MinTransferStake int64 = 200
)

// Account defaults applied when an account is first seen
const (
	StartingPoints int64 = 1000
	StartingLevel        = 1
)

// HouseAccountID is the casino's own principal. It can never play or receive transfers.
const HouseAccountID = "casino"

// Experience awards
const (
	DailyExperience     int64 = 25
	DuelWinExperience   int64 = 50
	DuelLossExperience  int64 = 25
	ExperiencePerLevel  int64 = 100
	DailyLevelBonusRate int64 = 10
)

// Daily bonus range: base plus a uniform integer in [0, DailyBonusSpread-1]
const (
	DailyBonusBase   int64 = 100
	DailyBonusSpread int64 = 50
)

// Timing
const (
	DailyCooldown       = 24 * time.Hour
	DuelAcceptanceTTL   = 5 * time.Minute
	DuelSweepInterval   = 60 * time.Second
	DefaultStoreTimeout = 5 * time.Second
)

// Passive earning
const (
	MessageRewardChance       = 0.5
	MessageRewardMin    int64 = 1
	MessageRewardMax    int64 = 5
	ReactionReward      int64 = 1
)

// LeaderboardSize is the number of accounts shown on the leaderboard
const LeaderboardSize = 10
