package payout

import (
	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/random"
)

// DuelRoll is the outcome of a two-sided duel before any money moves
type DuelRoll struct {
	Creator  domain.DuelSide
	Opponent domain.DuelSide
	Coin     domain.CoinSide
	// Winner is +1 for the creator, -1 for the opponent, 0 for a draw
	Winner int
}

// RollDuel draws both sides of a duel. The creator's draws are taken first.
func (e *Engine) RollDuel(kind domain.DuelKind, creatorID, opponentID string) (DuelRoll, error) {
	roll := DuelRoll{
		Creator:  domain.DuelSide{UserID: creatorID},
		Opponent: domain.DuelSide{UserID: opponentID},
	}

	switch kind {
	case domain.DuelKindSlots:
		roll.Creator.Reels = e.SpinReels()
		roll.Opponent.Reels = e.SpinReels()
		roll.Creator.Score = ReelScore(roll.Creator.Reels)
		roll.Opponent.Score = ReelScore(roll.Opponent.Reels)

	case domain.DuelKindDice:
		roll.Creator.Dice = []int{random.Die(e.src), random.Die(e.src)}
		roll.Opponent.Dice = []int{random.Die(e.src), random.Die(e.src)}
		roll.Creator.Score = roll.Creator.Dice[0] + roll.Creator.Dice[1]
		roll.Opponent.Score = roll.Opponent.Dice[0] + roll.Opponent.Dice[1]

	case domain.DuelKindCoinflip:
		roll.Creator.Side = domain.CoinHeads
		roll.Opponent.Side = domain.CoinTails
		roll.Coin = CoinFor(e.src.Float64())
		if roll.Coin == roll.Creator.Side {
			roll.Creator.Score = 1
		} else {
			roll.Opponent.Score = 1
		}

	default:
		return DuelRoll{}, domain.ErrInvalidArgument
	}

	switch {
	case roll.Creator.Score > roll.Opponent.Score:
		roll.Winner = 1
	case roll.Creator.Score < roll.Opponent.Score:
		roll.Winner = -1
	}
	return roll, nil
}

// SpinReels draws three weighted reels, one draw each
func (e *Engine) SpinReels() []string {
	reels := make([]string, ReelCount)
	for i := range reels {
		reels[i] = SymbolFor(e.src.Float64())
	}
	return reels
}

// SymbolFor maps a draw onto the weighted symbol strip
func SymbolFor(r float64) string {
	roll := int(r * TotalSymbolWeight)

	cumulative := 0
	for _, symbol := range SymbolOrder {
		cumulative += SymbolWeights[symbol]
		if roll < cumulative {
			return symbol
		}
	}

	// Fallback (should never happen)
	return SymbolLemon
}

// ReelScore is 3 for three of a kind, 2 for a pair and 0 otherwise
func ReelScore(reels []string) int {
	if len(reels) != ReelCount {
		return ScoreNoMatch
	}
	a, b, c := reels[0], reels[1], reels[2]
	switch {
	case a == b && b == c:
		return ScoreTripleReel
	case a == b || b == c || a == c:
		return ScorePairReel
	default:
		return ScoreNoMatch
	}
}
