package duel

// Log messages
const (
	LogMsgDuelProposed       = "Duel proposed"
	LogMsgDuelResolved       = "Duel resolved"
	LogMsgDuelDeclined       = "Duel declined"
	LogMsgDuelExpired        = "Duel expired"
	LogMsgDuelAcceptRejected = "Duel acceptance lost a race"
	LogMsgDuelSettleFailed   = "Duel settlement failed, session returned to proposed"
	LogMsgSweepCompleted     = "Duel sweep completed"
	LogMsgLevelUp            = "Account leveled up"
)

// Error messages
const (
	ErrMsgMinimumStake = "minimum duel stake is %d points"
	ErrMsgBalanceLow   = "%s has %d points, the duel needs %d"
)

// Level up source
const SourceDuel = "duel"
