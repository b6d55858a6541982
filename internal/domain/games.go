package domain

// GameKind identifies a solo casino game
type GameKind string

const (
	GameCasino   GameKind = "casino"
	GameJackpot  GameKind = "jackpot"
	GameRoulette GameKind = "roulette"
	GameDice     GameKind = "dice"
	GameCoinflip GameKind = "coinflip"
)

// CoinSide is a face of the coin
type CoinSide string

const (
	CoinHeads CoinSide = "heads"
	CoinTails CoinSide = "tails"
)

// ParseCoinSide validates a user supplied coin side
func ParseCoinSide(s string) (CoinSide, bool) {
	switch c := CoinSide(s); c {
	case CoinHeads, CoinTails:
		return c, true
	}
	return "", false
}

// Opposite returns the other face
func (c CoinSide) Opposite() CoinSide {
	if c == CoinHeads {
		return CoinTails
	}
	return CoinHeads
}

// RouletteColor is a wheel band
type RouletteColor string

const (
	RouletteGreen RouletteColor = "green"
	RouletteRed   RouletteColor = "red"
	RouletteBlack RouletteColor = "black"
)

// ParseRouletteColor validates a user supplied color
func ParseRouletteColor(s string) (RouletteColor, bool) {
	switch c := RouletteColor(s); c {
	case RouletteGreen, RouletteRed, RouletteBlack:
		return c, true
	}
	return "", false
}

// Outcome is the pure result of resolving a stake against a game
type Outcome struct {
	Multiplier float64 `json:"multiplier"`
	Delta      int64   `json:"delta"`
}

// GameResult is what a solo game reports back to the caller after settlement
type GameResult struct {
	UserID  string        `json:"user_id"`
	Game    GameKind      `json:"game"`
	Stake   int64         `json:"stake"`
	Outcome Outcome       `json:"outcome"`
	Balance int64         `json:"balance"`
	Color   RouletteColor `json:"color,omitempty"`
	Pick    string        `json:"pick,omitempty"`
	Coin    CoinSide      `json:"coin,omitempty"`
	Dice    []int         `json:"dice,omitempty"`
}

// Won reports whether the player ended up ahead
func (r GameResult) Won() bool {
	return r.Outcome.Delta > 0
}
