package domain

import (
	"time"

	"github.com/google/uuid"
)

// DuelState represents the state of a duel
type DuelState string

const (
	DuelStateProposed DuelState = "proposed"
	DuelStateAccepted DuelState = "accepted"
	DuelStateResolved DuelState = "resolved"
	DuelStateDeclined DuelState = "declined"
	DuelStateExpired  DuelState = "expired"
)

// Terminal reports whether a session in this state is removed from the registry
func (s DuelState) Terminal() bool {
	return s == DuelStateResolved || s == DuelStateDeclined || s == DuelStateExpired
}

// DuelKind is the game a duel is settled with
type DuelKind string

const (
	DuelKindSlots    DuelKind = "slots"
	DuelKindCoinflip DuelKind = "coinflip"
	DuelKindDice     DuelKind = "dice"
)

// ParseDuelKind validates a user supplied game kind
func ParseDuelKind(s string) (DuelKind, bool) {
	switch k := DuelKind(s); k {
	case DuelKindSlots, DuelKindCoinflip, DuelKindDice:
		return k, true
	}
	return "", false
}

// Duel is a snapshot of a duel session. The registry owns the live session;
// callers only ever receive copies.
type Duel struct {
	ID         uuid.UUID `json:"id"`
	CreatorID  string    `json:"creator_id"`
	OpponentID string    `json:"opponent_id,omitempty"`
	Kind       DuelKind  `json:"kind"`
	Stake      int64     `json:"stake"`
	State      DuelState `json:"state"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Open reports whether any playable user may accept the challenge
func (d Duel) Open() bool {
	return d.OpponentID == ""
}

// DuelSide is one participant's roll in a resolved duel
type DuelSide struct {
	UserID string   `json:"user_id"`
	Score  int      `json:"score"`
	Reels  []string `json:"reels,omitempty"`
	Dice   []int    `json:"dice,omitempty"`
	Side   CoinSide `json:"side,omitempty"`
}

// DuelResult represents the outcome of a duel
type DuelResult struct {
	Duel     Duel      `json:"duel"`
	Creator  DuelSide  `json:"creator"`
	Opponent DuelSide  `json:"opponent"`
	Coin     CoinSide  `json:"coin,omitempty"`
	WinnerID string    `json:"winner_id,omitempty"`
	LoserID  string    `json:"loser_id,omitempty"`
	IsDraw   bool      `json:"is_draw"`
	Payout   int64     `json:"payout"`
	Resolved time.Time `json:"resolved_at"`
}
