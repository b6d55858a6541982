package discord

import "github.com/bwmarrin/discordgo"

// CommandFactory creates a Discord command and its handler
type CommandFactory func() (*discordgo.ApplicationCommand, CommandHandler)

// CommandFactories lists every slash command the bot serves
func CommandFactories() []CommandFactory {
	return []CommandFactory{
		// Economy
		BalanceCommand,
		ProfileCommand,
		DailyCommand,
		PayCommand,
		LeaderboardCommand,

		// Games
		CasinoCommand,
		JackpotCommand,
		CoinflipCommand,
		RouletteCommand,
		DiceCommand,

		// Duels
		DuelCommand,
		PendingDuelsCommand,

		// Shop
		ShopCommand,
		BuyCommand,
		InventoryCommand,
	}
}

// RegisterAll fills the registry with every command and component handler
func RegisterAll(r *CommandRegistry) {
	for _, factory := range CommandFactories() {
		cmd, handler := factory()
		r.Register(cmd, handler)
	}
	r.RegisterComponent(ComponentDuelAccept, DuelAcceptComponent)
	r.RegisterComponent(ComponentDuelDecline, DuelDeclineComponent)
}
