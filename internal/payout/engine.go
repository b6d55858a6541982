// Package payout resolves stakes against the casino's fixed probability tables.
//
// Every function here is a pure function of its arguments and the draws taken from
// the injected random.Source. Nothing here touches the ledger.
package payout

import (
	"fmt"
	"math"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/random"
)

var (
	classicTable = MustTable(string(domain.GameCasino), ClassicTiers)
	jackpotTable = MustTable(string(domain.GameJackpot), ClassicTiers)
)

// TableFor returns the weighted table for a game kind
func TableFor(kind domain.GameKind) (*Table, bool) {
	switch kind {
	case domain.GameCasino:
		return classicTable, true
	case domain.GameJackpot:
		return jackpotTable, true
	}
	return nil, false
}

// Request describes one solo round
type Request struct {
	Kind  domain.GameKind
	Stake int64
	Color domain.RouletteColor // roulette pick
	Side  domain.CoinSide      // coinflip pick
}

// Result is an Outcome plus whatever was drawn to reach it
type Result struct {
	Outcome domain.Outcome
	Color   domain.RouletteColor
	Coin    domain.CoinSide
	Dice    []int
}

// Engine resolves solo rounds and duel rolls from a random source
type Engine struct {
	src random.Source
}

// NewEngine creates an engine drawing from src
func NewEngine(src random.Source) *Engine {
	return &Engine{src: src}
}

// Resolve computes the outcome of one round
func (e *Engine) Resolve(req Request) (Result, error) {
	if req.Stake <= 0 {
		return Result{}, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgStakeNotPositive)
	}

	switch req.Kind {
	case domain.GameCasino, domain.GameJackpot:
		table, _ := TableFor(req.Kind)
		m := table.Select(e.src.Float64())
		return Result{Outcome: Settle(req.Stake, m)}, nil

	case domain.GameRoulette:
		if _, ok := domain.ParseRouletteColor(string(req.Color)); !ok {
			return Result{}, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, domain.ErrMsgUnknownColor)
		}
		color := RouletteColorFor(e.src.Float64())
		return Result{Outcome: Settle(req.Stake, RouletteMultiplier(req.Color, color)), Color: color}, nil

	case domain.GameDice:
		d1, d2 := random.Die(e.src), random.Die(e.src)
		return Result{Outcome: Settle(req.Stake, DiceMultiplier(d1+d2)), Dice: []int{d1, d2}}, nil

	case domain.GameCoinflip:
		if _, ok := domain.ParseCoinSide(string(req.Side)); !ok {
			return Result{}, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, domain.ErrMsgUnknownSide)
		}
		coin := CoinFor(e.src.Float64())
		m := 0.0
		if coin == req.Side {
			m = CoinflipWinMultiplier
		}
		return Result{Outcome: Settle(req.Stake, m), Coin: coin}, nil
	}

	return Result{}, fmt.Errorf("%w: "+ErrMsgUnsupportedGameKind, domain.ErrInvalidArgument, req.Kind)
}

// Settle converts a multiplier into a net delta: floor(stake*multiplier) - stake
func Settle(stake int64, multiplier float64) domain.Outcome {
	payout := int64(math.Floor(float64(stake) * multiplier))
	return domain.Outcome{Multiplier: multiplier, Delta: payout - stake}
}

// RouletteColorFor maps a draw onto the wheel bands
func RouletteColorFor(r float64) domain.RouletteColor {
	switch {
	case r < RouletteGreenUpper:
		return domain.RouletteGreen
	case r < RouletteRedUpper:
		return domain.RouletteRed
	default:
		return domain.RouletteBlack
	}
}

// RouletteMultiplier pays only a matched color
func RouletteMultiplier(pick, landed domain.RouletteColor) float64 {
	if pick != landed {
		return 0
	}
	if landed == domain.RouletteGreen {
		return RouletteGreenMultiplier
	}
	return RouletteColorMultiplier
}

// DiceMultiplier maps a two-dice sum onto its payout
func DiceMultiplier(sum int) float64 {
	switch {
	case sum > DicePushSum:
		return DiceWinMultiplier
	case sum == DicePushSum:
		return DicePushMultiplier
	default:
		return 0
	}
}

// CoinFor maps a draw onto a coin face
func CoinFor(r float64) domain.CoinSide {
	if r < CoinflipHeadsUpper {
		return domain.CoinHeads
	}
	return domain.CoinTails
}
