package postgres

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgFailedToLockAccounts      = "failed to lock accounts"
	ErrMsgNoAccounts                = "transaction must lock at least one account"
	ErrMsgAccountNotLocked          = "account %s is not locked by this transaction"
)

// Error Messages - Account Operations
const (
	ErrMsgFailedToEnsureAccount  = "failed to ensure account"
	ErrMsgFailedToGetAccount     = "failed to get account"
	ErrMsgFailedToApplyDelta     = "failed to apply delta"
	ErrMsgFailedToUpdateProfile  = "failed to update profile"
	ErrMsgFailedToGetLeaderboard = "failed to get leaderboard"
	ErrMsgBalanceTooLow          = "balance cannot cover %d"
)

// Error Messages - Shop Operations
const (
	ErrMsgFailedToListShopItems = "failed to list shop items"
	ErrMsgFailedToGetShopItem   = "failed to get shop item"
	ErrMsgFailedToSeedShopItems = "failed to seed shop items"
	ErrMsgFailedToGetInventory  = "failed to get inventory"
	ErrMsgFailedToAddInventory  = "failed to add inventory"
	ErrMsgQuantityInvalid       = "quantity must be positive"
)
