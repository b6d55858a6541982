package discord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/CasinoBot_Go/internal/cooldown"
	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// Friendly message constants for Discord responses
const (
	MsgInsufficientFunds = "⚠️ **Not Enough Points!**\nYou don't have enough points for this."
	MsgNotFound          = "❓ **Not Found**"
	MsgForbidden         = "🚫 **Not Allowed**"
	MsgAlreadyResolved   = "⌛ **Too Late**\nThis duel has already been answered."
	MsgCooldownActive    = "⏳ **Whoa there!**"
	MsgInvalidArgument   = "❌"
	MsgUnavailable       = "🔌 The casino is temporarily closed. Try again in a moment."
	MsgGenericError      = "❌ Something went wrong."
	MsgNoPendingDuels    = "You have no pending duels."
	MsgEmptyInventory    = "Your inventory is empty. Check out `/shop`!"
	MsgEmptyLeaderboard  = "Nobody is on the leaderboard yet."
)

// Embed titles
const (
	TitleBalance     = "💰 Balance"
	TitleProfile     = "👤 Profile"
	TitleDaily       = "🎁 Daily Bonus"
	TitleTransfer    = "💸 Transfer Complete"
	TitleLeaderboard = "🏆 Top Players"
	TitleShop        = "🛒 Shop"
	TitlePurchase    = "🛍️ Purchase Complete"
	TitleInventory   = "🎒 Inventory"
	TitleDuel        = "⚔️ Duel Challenge"
	TitleDuelResult  = "⚔️ Duel Result"
	TitleDuelDecline = "🏳️ Duel Declined"
	TitlePending     = "⚔️ Pending Duels"
)

// Embed colors
const (
	ColorGold  = 0xf1c40f
	ColorGreen = 0x2ecc71
	ColorRed   = 0xe74c3c
	ColorBlue  = 0x3498db
	ColorGrey  = 0x95a5a6
)

const FooterCasinoBot = "CasinoBot"

// formatFriendlyError turns a service error into something a player can act on
func formatFriendlyError(err error) string {
	var cd cooldown.ErrOnCooldown
	switch {
	case errors.As(err, &cd):
		return fmt.Sprintf("%s\n%s.", MsgCooldownActive, cd.Error())
	case errors.Is(err, domain.ErrInsufficientFunds):
		return MsgInsufficientFunds
	case errors.Is(err, domain.ErrInvalidArgument):
		return MsgInvalidArgument + " " + detail(err, domain.ErrInvalidArgument)
	case errors.Is(err, domain.ErrNotFound):
		return MsgNotFound + "\n" + detail(err, domain.ErrNotFound)
	case errors.Is(err, domain.ErrForbidden):
		return MsgForbidden + "\n" + detail(err, domain.ErrForbidden)
	case errors.Is(err, domain.ErrAlreadyResolved):
		return MsgAlreadyResolved
	case errors.Is(err, domain.ErrUnavailable):
		return MsgUnavailable
	default:
		return MsgGenericError
	}
}

// detail strips the sentinel prefix from a wrapped error and capitalizes the rest
func detail(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
	if msg == "" {
		return sentinel.Error()
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
