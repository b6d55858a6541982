package casino

// Log messages
const (
	LogMsgGamePlayed      = "Game played"
	LogMsgGameRejected    = "Game rejected"
	LogMsgGameStoreFailed = "Game settlement failed"
)

// Error messages
const (
	ErrMsgMinimumStake = "minimum bet is %d points"
	ErrMsgBalanceLow   = "balance %d cannot cover stake %d"
)
