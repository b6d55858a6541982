package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgInvalidArgument   = "invalid argument"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgNotFound          = "not found"
	ErrMsgForbidden         = "forbidden"
	ErrMsgAlreadyResolved   = "already resolved"
	ErrMsgOnCooldown        = "action on cooldown"
	ErrMsgUnavailable       = "store unavailable"
	ErrMsgTxClosed          = "tx is closed"
)

// Detail messages, wrapped onto the sentinels below
const (
	ErrMsgStakeBelowMinimum = "stake below minimum"
	ErrMsgSelfTarget        = "cannot target yourself"
	ErrMsgNotPlayable       = "target cannot play"
	ErrMsgUnknownGameKind   = "unknown game kind"
	ErrMsgUnknownSide       = "unknown coin side"
	ErrMsgUnknownColor      = "unknown roulette color"
	ErrMsgDuelCollision     = "a duel created by this user at the same instant already exists"
	ErrMsgDuelNotFound      = "duel not found or expired"
	ErrMsgNotDuelOpponent   = "you are not the challenged player"
	ErrMsgOwnDuel           = "cannot accept your own duel"
	ErrMsgNotDuelParty      = "you are not part of this duel"
	ErrMsgDuelInFlight      = "duel is already being resolved"
	ErrMsgItemNotFound      = "shop item not found"
	ErrMsgAccountNotFound   = "account not found"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidArgument   = errors.New(ErrMsgInvalidArgument)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrNotFound          = errors.New(ErrMsgNotFound)
	ErrForbidden         = errors.New(ErrMsgForbidden)
	ErrAlreadyResolved   = errors.New(ErrMsgAlreadyResolved)
	ErrOnCooldown        = errors.New(ErrMsgOnCooldown)

	// ErrUnavailable marks infrastructure failures of the ledger or profile store.
	// Everything else in this block is a recoverable rejection.
	ErrUnavailable = errors.New(ErrMsgUnavailable)

	ErrTxClosed = errors.New(ErrMsgTxClosed)
)

// IsRejection reports whether err is a recoverable rejection rather than an infrastructure failure
func IsRejection(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidArgument),
		errors.Is(err, ErrInsufficientFunds),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrForbidden),
		errors.Is(err, ErrAlreadyResolved),
		errors.Is(err, ErrOnCooldown):
		return true
	}
	return false
}
