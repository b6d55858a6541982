package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

func amountOption(min int64) *discordgo.ApplicationCommandOption {
	minValue := float64(min)
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        OptionAmount,
		Description: fmt.Sprintf("Amount of points (minimum %d)", min),
		Required:    true,
		MinValue:    &minValue,
	}
}

// BalanceCommand returns the balance command definition and handler
func BalanceCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "balance",
		Description: "Show how many points you have",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		points, err := svc.Economy.Balance(commandContext(i), interactionPlayer(i))
		if err != nil {
			respondFriendlyError(s, i, cmd.Name, err)
			return
		}

		sendEmbed(s, i, createEmbed(TitleBalance,
			fmt.Sprintf("You have **%s** points", formatPoints(points)), ColorGold))
	}

	return cmd, handler
}

// ProfileCommand returns the profile command definition and handler
func ProfileCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "profile",
		Description: "Show level, experience and record",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        OptionUser,
				Description: "Whose profile to show (default: yours)",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		target := getInteractionUser(i)
		if opt, ok := getOptions(i)[OptionUser]; ok {
			target = optionUser(i, opt)
		}

		acc, err := svc.Economy.Profile(commandContext(i), target.ID)
		if err != nil {
			respondFriendlyError(s, i, cmd.Name, err)
			return
		}

		embed := createEmbed(TitleProfile, mention(acc.ID), ColorBlue)
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Points", Value: formatPoints(acc.Points), Inline: true},
			{Name: "Level", Value: fmt.Sprintf("%d", acc.Level), Inline: true},
			{Name: "Experience", Value: formatPoints(acc.Experience), Inline: true},
			{Name: "Wins", Value: fmt.Sprintf("%d", acc.Wins), Inline: true},
			{Name: "Games Played", Value: fmt.Sprintf("%d", acc.GamesPlayed), Inline: true},
		}
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// DailyCommand returns the daily command definition and handler
func DailyCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "daily",
		Description: "Claim your daily bonus",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		res, err := svc.Economy.Daily(commandContext(i), interactionPlayer(i))
		if err != nil {
			respondFriendlyError(s, i, cmd.Name, err)
			return
		}

		desc := fmt.Sprintf("**+%s** points!\nBalance: **%s**", formatPoints(res.Bonus), formatPoints(res.Balance))
		if res.LeveledUp {
			desc += fmt.Sprintf("\n🎉 You reached level **%d**!", res.Level)
		}
		sendEmbed(s, i, createEmbed(TitleDaily, desc, ColorGreen))
	}

	return cmd, handler
}

// PayCommand returns the pay command definition and handler
func PayCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "pay",
		Description: "Send points to another player",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        OptionUser,
				Description: "Who receives the points",
				Required:    true,
			},
			amountOption(domain.MinTransferStake),
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		opts := getOptions(i)
		to := optionUser(i, opts[OptionUser])
		amount := opts[OptionAmount].IntValue()

		res, err := svc.Economy.Pay(commandContext(i), interactionPlayer(i), toPlayer(to), amount)
		if err != nil {
			respondFriendlyError(s, i, cmd.Name, err)
			return
		}

		sendEmbed(s, i, createEmbed(TitleTransfer,
			fmt.Sprintf("Sent **%s** points to %s\nYour balance: **%s**",
				formatPoints(res.Amount), mention(res.ToUserID), formatPoints(res.FromBalance)),
			ColorGreen))
	}

	return cmd, handler
}

// LeaderboardCommand returns the leaderboard command definition and handler
func LeaderboardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "leaderboard",
		Description: "Show the top players",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		entries, err := svc.Economy.Leaderboard(commandContext(i))
		if err != nil {
			respondFriendlyError(s, i, cmd.Name, err)
			return
		}

		if len(entries) == 0 {
			sendEmbed(s, i, createEmbed(TitleLeaderboard, MsgEmptyLeaderboard, ColorGold))
			return
		}

		var sb strings.Builder
		for _, e := range entries {
			fmt.Fprintf(&sb, "**%d.** %s: %s points\n", e.Rank, mention(e.UserID), formatPoints(e.Points))
		}
		sendEmbed(s, i, createEmbed(TitleLeaderboard, sb.String(), ColorGold))
	}

	return cmd, handler
}
