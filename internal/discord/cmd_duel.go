package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// DuelCommand returns the duel command definition and handler
func DuelCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "duel",
		Description: "Challenge another player to a head-to-head game",
		Options: []*discordgo.ApplicationCommandOption{
			amountOption(domain.MinPvPStake),
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionGame,
				Description: "Game that settles the duel",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "🎰 Slots", Value: string(domain.DuelKindSlots)},
					{Name: "🪙 Coinflip", Value: string(domain.DuelKindCoinflip)},
					{Name: "🎲 Dice", Value: string(domain.DuelKindDice)},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        OptionOpponent,
				Description: "Who you challenge (default: anyone)",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		opts := getOptions(i)
		var opponent *domain.Player
		if opt, ok := opts[OptionOpponent]; ok {
			p := toPlayer(optionUser(i, opt))
			opponent = &p
		}
		kind := domain.DuelKind(opts[OptionGame].StringValue())

		d, err := svc.Duels.Propose(commandContext(i), interactionPlayer(i), opponent, opts[OptionAmount].IntValue(), kind)
		if err != nil {
			respondFriendlyError(s, i, cmd.Name, err)
			return
		}

		sendEmbedWithComponents(s, i, buildChallengeEmbed(d), duelButtons(d.ID))
	}

	return cmd, handler
}

// PendingDuelsCommand returns the duels command definition and handler
func PendingDuelsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "duels",
		Description: "List duels waiting on you or your opponents",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		pending := svc.Duels.Pending(commandContext(i), user.ID)
		if len(pending) == 0 {
			sendEmbed(s, i, createEmbed(TitlePending, MsgNoPendingDuels, ColorGrey))
			return
		}

		var sb strings.Builder
		for _, d := range pending {
			opponent := "anyone"
			if !d.Open() {
				opponent = mention(d.OpponentID)
			}
			fmt.Fprintf(&sb, "%s vs %s: **%s** points on %s, expires <t:%d:R>\n",
				mention(d.CreatorID), opponent, formatPoints(d.Stake), title(string(d.Kind)), d.ExpiresAt.Unix())
		}
		sendEmbed(s, i, createEmbed(TitlePending, sb.String(), ColorBlue))
	}

	return cmd, handler
}

// DuelAcceptComponent handles the accept button on a challenge message
func DuelAcceptComponent(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
	if !deferUpdate(s, i) {
		return
	}
	id, ok := componentDuelID(s, i)
	if !ok {
		return
	}

	res, err := svc.Duels.Accept(commandContext(i), interactionPlayer(i), id)
	if err != nil {
		followupError(s, i, ComponentDuelAccept, err)
		return
	}

	sendEmbedWithComponents(s, i, buildDuelResultEmbed(res), nil)
}

// DuelDeclineComponent handles the decline button on a challenge message
func DuelDeclineComponent(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
	if !deferUpdate(s, i) {
		return
	}
	id, ok := componentDuelID(s, i)
	if !ok {
		return
	}

	user := getInteractionUser(i)
	d, err := svc.Duels.Decline(commandContext(i), toPlayer(user), id)
	if err != nil {
		followupError(s, i, ComponentDuelDecline, err)
		return
	}

	sendEmbedWithComponents(s, i, createEmbed(TitleDuelDecline,
		fmt.Sprintf("%s declined the **%s** point %s duel from %s.",
			mention(user.ID), formatPoints(d.Stake), title(string(d.Kind)), mention(d.CreatorID)),
		ColorGrey), nil)
}

// componentDuelID parses the duel handle out of a button's custom id
func componentDuelID(s *discordgo.Session, i *discordgo.InteractionCreate) (uuid.UUID, bool) {
	prefix, arg := splitCustomID(i.MessageComponentData().CustomID)
	id, err := uuid.Parse(arg)
	if err != nil {
		followupError(s, i, prefix, fmt.Errorf("%w: %s", domain.ErrNotFound, domain.ErrMsgDuelNotFound))
		return uuid.Nil, false
	}
	return id, true
}

func duelButtons(id uuid.UUID) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Accept",
					Style:    discordgo.SuccessButton,
					CustomID: customID(ComponentDuelAccept, id.String()),
				},
				discordgo.Button{
					Label:    "Decline",
					Style:    discordgo.DangerButton,
					CustomID: customID(ComponentDuelDecline, id.String()),
				},
			},
		},
	}
}

func buildChallengeEmbed(d *domain.Duel) *discordgo.MessageEmbed {
	target := "Anyone can accept."
	if !d.Open() {
		target = fmt.Sprintf("%s, do you accept?", mention(d.OpponentID))
	}
	desc := fmt.Sprintf("%s bets **%s** points on **%s**.\n%s\nExpires <t:%d:R>.",
		mention(d.CreatorID), formatPoints(d.Stake), title(string(d.Kind)), target, d.ExpiresAt.Unix())
	return createEmbed(TitleDuel, desc, ColorBlue)
}

func buildDuelResultEmbed(res *domain.DuelResult) *discordgo.MessageEmbed {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n%s\n", formatDuelSide(res.Creator), formatDuelSide(res.Opponent))
	if res.Duel.Kind == domain.DuelKindCoinflip {
		fmt.Fprintf(&sb, "The coin shows **%s**\n", title(string(res.Coin)))
	}

	if res.IsDraw {
		fmt.Fprintf(&sb, "\nIt's a draw! Both players keep their **%s** points.", formatPoints(res.Duel.Stake))
		return createEmbed(TitleDuelResult, sb.String(), ColorGrey)
	}

	fmt.Fprintf(&sb, "\n🏆 %s wins **%s** points from %s!",
		mention(res.WinnerID), formatPoints(res.Duel.Stake), mention(res.LoserID))
	return createEmbed(TitleDuelResult, sb.String(), ColorGold)
}

func formatDuelSide(side domain.DuelSide) string {
	switch {
	case len(side.Reels) > 0:
		return fmt.Sprintf("%s: %s", mention(side.UserID), formatReels(side.Reels))
	case len(side.Dice) > 0:
		return fmt.Sprintf("%s: %s (total %d)", mention(side.UserID), formatDice(side.Dice), side.Score)
	case side.Side != "":
		return fmt.Sprintf("%s: %s", mention(side.UserID), title(string(side.Side)))
	default:
		return fmt.Sprintf("%s: %d", mention(side.UserID), side.Score)
	}
}
