package ledger

// Error messages
const (
	ErrMsgNoAccounts       = "transaction must lock at least one account"
	ErrMsgAccountNotLocked = "account %s is not locked by this transaction"
	ErrMsgBalanceTooLow    = "balance %d cannot cover %d"
	ErrMsgQuantityInvalid  = "quantity must be positive"
)
