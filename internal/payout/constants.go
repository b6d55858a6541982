package payout

// ClassicTiers is the weighted table for both casino and jackpot modes, in draw
// order. Order is significant: selection walks the accumulated probability mass
// and the first tier whose bound covers the draw wins.
var ClassicTiers = []Tier{
	{Multiplier: 0, Probability: 0.40},
	{Multiplier: 0.5, Probability: 0.25},
	{Multiplier: 1, Probability: 0.20},
	{Multiplier: 2, Probability: 0.10},
	{Multiplier: 5, Probability: 0.04},
	{Multiplier: 10, Probability: 0.01},
}

// BoundTolerance is how far the final cumulative bound may drift from 1.0
const BoundTolerance = 1e-9

// Roulette bands: [0, GreenUpper) green, [GreenUpper, RedUpper) red, [RedUpper, 1) black
const (
	RouletteGreenUpper = 0.027
	RouletteRedUpper   = 0.5135
)

// Roulette multipliers for a matched color
const (
	RouletteGreenMultiplier = 14.0
	RouletteColorMultiplier = 2.0
)

// Dice thresholds
const (
	DiceFaces             = 6
	DicePushSum           = 7
	DiceWinMultiplier     = 2.0
	DicePushMultiplier    = 1.0
	CoinflipWinMultiplier = 2.0
	CoinflipHeadsUpper    = 0.5
)

// Slot symbols used by slots duels
const (
	SymbolLemon   = "LEMON"
	SymbolCherry  = "CHERRY"
	SymbolBell    = "BELL"
	SymbolBar     = "BAR"
	SymbolSeven   = "SEVEN"
	SymbolDiamond = "DIAMOND"
	SymbolStar    = "STAR"
)

// SymbolOrder is the walk order for weighted reel selection
var SymbolOrder = []string{SymbolLemon, SymbolCherry, SymbolBell, SymbolBar, SymbolSeven, SymbolDiamond, SymbolStar}

// SymbolWeights for weighted random selection (out of TotalSymbolWeight)
var SymbolWeights = map[string]int{
	SymbolLemon:   400, // 40%
	SymbolCherry:  250, // 25%
	SymbolBell:    150, // 15%
	SymbolBar:     95,  // 9.5%
	SymbolSeven:   70,  // 7%
	SymbolDiamond: 25,  // 2.5%
	SymbolStar:    10,  // 1%
}

// TotalSymbolWeight is the sum of SymbolWeights
const TotalSymbolWeight = 1000

// Reel scores for slots duels
const (
	ReelCount       = 3
	ScoreTripleReel = 3
	ScorePairReel   = 2
	ScoreNoMatch    = 0
)

// Error messages
const (
	ErrMsgTableEmpty          = "payout table %q has no tiers"
	ErrMsgTierNotIncreasing   = "payout table %q: tier %d bound %v does not increase"
	ErrMsgTableBoundNotOne    = "payout table %q: final bound %v is not 1.0"
	ErrMsgStakeNotPositive    = "stake must be positive"
	ErrMsgUnsupportedGameKind = "unsupported game kind %q"
)
