package discord

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/CasinoBot_Go/internal/payout"
)

var (
	printer   = message.NewPrinter(language.English)
	titleCase = cases.Title(language.English)
)

// symbolEmojis maps reel symbols to their display emoji
var symbolEmojis = map[string]string{
	payout.SymbolLemon:   "🍋",
	payout.SymbolCherry:  "🍒",
	payout.SymbolBell:    "🔔",
	payout.SymbolBar:     "💰",
	payout.SymbolSeven:   "7️⃣",
	payout.SymbolDiamond: "💎",
	payout.SymbolStar:    "⭐",
}

// formatPoints renders an amount with thousands separators, e.g. "12,500"
func formatPoints(n int64) string {
	return printer.Sprintf("%d", n)
}

// title capitalizes a game or item name for display
func title(s string) string {
	return titleCase.String(s)
}

// mention renders a user mention
func mention(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}

func formatReels(reels []string) string {
	parts := make([]string, len(reels))
	for i, r := range reels {
		if e, ok := symbolEmojis[r]; ok {
			parts[i] = e
		} else {
			parts[i] = r
		}
	}
	return strings.Join(parts, " | ")
}

func formatDice(dice []int) string {
	parts := make([]string, len(dice))
	for i, d := range dice {
		parts[i] = fmt.Sprintf("🎲 %d", d)
	}
	return strings.Join(parts, "  ")
}
