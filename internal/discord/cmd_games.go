package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/payout"
)

// gameConfig describes one solo game command
type gameConfig struct {
	Kind        domain.GameKind
	Emoji       string
	Description string
	Pick        *discordgo.ApplicationCommandOption // optional extra option
	Apply       func(req *payout.Request, pick string)
}

func gameCommand(cfg gameConfig) (*discordgo.ApplicationCommand, CommandHandler) {
	options := []*discordgo.ApplicationCommandOption{amountOption(domain.MinGameStake)}
	if cfg.Pick != nil {
		options = append([]*discordgo.ApplicationCommandOption{cfg.Pick}, options...)
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        string(cfg.Kind),
		Description: cfg.Description,
		Options:     options,
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		opts := getOptions(i)
		req := payout.Request{Kind: cfg.Kind, Stake: opts[OptionAmount].IntValue()}
		if cfg.Pick != nil && cfg.Apply != nil {
			if opt, ok := opts[cfg.Pick.Name]; ok {
				cfg.Apply(&req, opt.StringValue())
			}
		}

		res, err := svc.Casino.Play(commandContext(i), interactionPlayer(i), req)
		if err != nil {
			respondFriendlyError(s, i, cmd.Name, err)
			return
		}

		sendEmbed(s, i, buildGameEmbed(cfg.Emoji, res))
	}

	return cmd, handler
}

// buildGameEmbed renders a settled solo game
func buildGameEmbed(emoji string, res *domain.GameResult) *discordgo.MessageEmbed {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Stake: **%s**\n", formatPoints(res.Stake))

	switch res.Game {
	case domain.GameRoulette:
		fmt.Fprintf(&sb, "You picked **%s**, the ball landed on **%s**\n", title(res.Pick), title(string(res.Color)))
	case domain.GameCoinflip:
		fmt.Fprintf(&sb, "You called **%s**, the coin shows **%s**\n", title(res.Pick), title(string(res.Coin)))
	case domain.GameDice:
		fmt.Fprintf(&sb, "%s (total %d)\n", formatDice(res.Dice), sumDice(res.Dice))
	}

	fmt.Fprintf(&sb, "Multiplier: **%gx**\n", res.Outcome.Multiplier)

	color := ColorGrey
	switch {
	case res.Outcome.Delta > 0:
		fmt.Fprintf(&sb, "🎉 You won **%s** points!", formatPoints(res.Outcome.Delta))
		color = ColorGreen
	case res.Outcome.Delta < 0:
		fmt.Fprintf(&sb, "You lost **%s** points.", formatPoints(-res.Outcome.Delta))
		color = ColorRed
	default:
		sb.WriteString("Your stake is returned.")
	}
	fmt.Fprintf(&sb, "\nBalance: **%s**", formatPoints(res.Balance))

	return createEmbed(fmt.Sprintf("%s %s", emoji, title(string(res.Game))), sb.String(), color)
}

func sumDice(dice []int) int {
	total := 0
	for _, d := range dice {
		total += d
	}
	return total
}

// CasinoCommand returns the weighted casino game
func CasinoCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return gameCommand(gameConfig{
		Kind:        domain.GameCasino,
		Emoji:       "🎰",
		Description: "Play the casino: stake points against a random multiplier",
	})
}

// JackpotCommand returns the high-variance jackpot game
func JackpotCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return gameCommand(gameConfig{
		Kind:        domain.GameJackpot,
		Emoji:       "💎",
		Description: "Go for the jackpot: rare wins, huge multipliers",
	})
}

// DiceCommand returns the two dice game
func DiceCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return gameCommand(gameConfig{
		Kind:        domain.GameDice,
		Emoji:       "🎲",
		Description: "Roll two dice: beat 7 to double your stake",
	})
}

// CoinflipCommand returns the coinflip game
func CoinflipCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return gameCommand(gameConfig{
		Kind:        domain.GameCoinflip,
		Emoji:       "🪙",
		Description: "Call heads or tails to double your stake",
		Pick: &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        OptionSide,
			Description: "Heads or tails",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "Heads", Value: string(domain.CoinHeads)},
				{Name: "Tails", Value: string(domain.CoinTails)},
			},
		},
		Apply: func(req *payout.Request, pick string) {
			req.Side = domain.CoinSide(pick)
		},
	})
}

// RouletteCommand returns the roulette game
func RouletteCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return gameCommand(gameConfig{
		Kind:        domain.GameRoulette,
		Emoji:       "🎡",
		Description: "Roulette: pick a color and place your stake",
		Pick: &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        OptionColor,
			Description: "Color to bet on",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "🔴 Red (x2)", Value: string(domain.RouletteRed)},
				{Name: "⚫ Black (x2)", Value: string(domain.RouletteBlack)},
				{Name: "🟢 Green (x14)", Value: string(domain.RouletteGreen)},
			},
		},
		Apply: func(req *payout.Request, pick string) {
			req.Color = domain.RouletteColor(pick)
		},
	})
}
