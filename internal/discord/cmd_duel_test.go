package discord

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// proposeDuel runs /duel and returns the accept and decline custom ids from the buttons
func proposeDuel(t *testing.T, ctx *TestContext, creator string, opponent *discordgo.User, amount int64, game string) (accept, decline string) {
	t.Helper()
	_, handler := DuelCommand()

	opts := []*discordgo.ApplicationCommandInteractionDataOption{intOpt(OptionAmount, amount), strOpt(OptionGame, game)}
	if opponent != nil {
		opts = append(opts, userOpt(OptionOpponent, opponent.ID))
	}
	i := commandInteraction("duel", testUser(creator), opts...)
	if opponent != nil {
		i = withResolvedUsers(i, opponent)
	}
	handler(ctx.Session, i, ctx.Services)

	edit := ctx.LastEdit(t)
	require.Len(t, edit.Components, 1, "challenge should carry one button row")
	buttons := edit.Components[0].Components
	require.Len(t, buttons, 2)
	assert.Equal(t, "Accept", buttons[0].Label)
	assert.Equal(t, "Decline", buttons[1].Label)
	return buttons[0].CustomID, buttons[1].CustomID
}

func TestDuelFlow_AcceptSettles(t *testing.T) {
	ctx := SetupTestContext(t, 0.9, 0.9, 0.0, 0.0)

	accept, decline := proposeDuel(t, ctx, "alice", testUser("bob"), 500, "dice")
	assert.True(t, strings.HasPrefix(accept, ComponentDuelAccept+":"))
	assert.True(t, strings.HasPrefix(decline, ComponentDuelDecline+":"))

	embed := ctx.LastEmbed(t)
	assert.Equal(t, TitleDuel, embed.Title)
	assert.Contains(t, embed.Description, "<@alice> bets **500** points on **Dice**")
	assert.Contains(t, embed.Description, "<@bob>, do you accept?")
	assert.Equal(t, 0, ctx.Random.Consumed(), "proposing draws nothing")

	DuelAcceptComponent(ctx.Session, componentInteraction(accept, testUser("bob")), ctx.Services)

	callbacks := ctx.Callbacks(t)
	assert.Equal(t, discordgo.InteractionResponseDeferredMessageUpdate, callbacks[len(callbacks)-1].Type)

	edit := ctx.LastEdit(t)
	assert.Empty(t, edit.Components, "buttons are cleared once settled")
	require.NotEmpty(t, edit.Embeds)
	result := edit.Embeds[0]
	assert.Equal(t, TitleDuelResult, result.Title)
	assert.Contains(t, result.Description, "<@alice>: 🎲 6  🎲 6 (total 12)")
	assert.Contains(t, result.Description, "<@alice> wins **500** points from <@bob>")

	assert.Equal(t, int64(1500), ctx.Balance(t, "alice"))
	assert.Equal(t, int64(500), ctx.Balance(t, "bob"))
}

func TestDuelAccept_WrongUserGetsEphemeralFollowup(t *testing.T) {
	ctx := SetupTestContext(t)
	accept, _ := proposeDuel(t, ctx, "alice", testUser("bob"), 500, "coinflip")
	challenge := ctx.LastEmbed(t)

	DuelAcceptComponent(ctx.Session, componentInteraction(accept, testUser("carol")), ctx.Services)

	followups := ctx.Followups(t)
	require.Len(t, followups, 1)
	assert.Contains(t, followups[0].Content, MsgForbidden)
	assert.Contains(t, followups[0].Content, "You are not the challenged player")
	assert.Equal(t, discordgo.MessageFlagsEphemeral, followups[0].Flags)

	assert.Equal(t, challenge.Description, ctx.LastEmbed(t).Description, "challenge message is untouched")
	assert.Equal(t, int64(1000), ctx.Balance(t, "alice"))
}

func TestDuelAccept_UnknownAndMalformedIDs(t *testing.T) {
	ctx := SetupTestContext(t)

	DuelAcceptComponent(ctx.Session, componentInteraction(customID(ComponentDuelAccept, "not-a-uuid"), testUser("bob")), ctx.Services)
	DuelAcceptComponent(ctx.Session,
		componentInteraction(customID(ComponentDuelAccept, "6f1c2b9e-3a4d-4c5e-8f70-123456789abc"), testUser("bob")), ctx.Services)

	followups := ctx.Followups(t)
	require.Len(t, followups, 2)
	for _, f := range followups {
		assert.Contains(t, f.Content, "Duel not found or expired")
	}
}

func TestDuelDecline(t *testing.T) {
	ctx := SetupTestContext(t)
	accept, decline := proposeDuel(t, ctx, "alice", testUser("bob"), 700, "slots")

	DuelDeclineComponent(ctx.Session, componentInteraction(decline, testUser("bob")), ctx.Services)

	edit := ctx.LastEdit(t)
	assert.Empty(t, edit.Components)
	require.NotEmpty(t, edit.Embeds)
	assert.Equal(t, TitleDuelDecline, edit.Embeds[0].Title)
	assert.Contains(t, edit.Embeds[0].Description, "<@bob> declined the **700** point Slots duel from <@alice>")

	// the session is gone; a late accept is told so
	DuelAcceptComponent(ctx.Session, componentInteraction(accept, testUser("bob")), ctx.Services)
	followups := ctx.Followups(t)
	require.Len(t, followups, 1)
	assert.Contains(t, followups[0].Content, MsgNotFound)
	assert.Equal(t, int64(1000), ctx.Balance(t, "alice"))
	assert.Equal(t, int64(1000), ctx.Balance(t, "bob"))
}

func TestDuelCommand_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		opponent *discordgo.User
		amount   int64
		contains string
	}{
		{"below minimum", testUser("bob"), 499, "Minimum duel stake is 500 points"},
		{"self", testUser("alice"), 500, "Cannot target yourself"},
		{"bot opponent", &discordgo.User{ID: "robot", Bot: true}, 500, "Target cannot play"},
		{"creator cannot cover", testUser("bob"), 1001, MsgInsufficientFunds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := SetupTestContext(t)
			_, handler := DuelCommand()

			i := withResolvedUsers(commandInteraction("duel", testUser("alice"),
				intOpt(OptionAmount, tt.amount), strOpt(OptionGame, "dice"), userOpt(OptionOpponent, tt.opponent.ID)), tt.opponent)
			handler(ctx.Session, i, ctx.Services)

			assert.Contains(t, ctx.LastContent(t), tt.contains)
			assert.Empty(t, ctx.Services.Duels.Pending(t.Context(), "alice"))
		})
	}
}

func TestOpenDuel_AnyoneCanAccept(t *testing.T) {
	ctx := SetupTestContext(t, 0.2)
	accept, _ := proposeDuel(t, ctx, "alice", nil, 500, "coinflip")
	assert.Contains(t, ctx.LastEmbed(t).Description, "Anyone can accept.")

	DuelAcceptComponent(ctx.Session, componentInteraction(accept, testUser("carol")), ctx.Services)

	result := ctx.LastEmbed(t)
	assert.Contains(t, result.Description, "The coin shows **Heads**")
	assert.Contains(t, result.Description, "<@alice> wins **500** points from <@carol>")
	assert.Equal(t, int64(500), ctx.Balance(t, "carol"))
}

func TestPendingDuelsCommand(t *testing.T) {
	ctx := SetupTestContext(t)
	_, handler := PendingDuelsCommand()

	handler(ctx.Session, commandInteraction("duels", testUser("bob")), ctx.Services)
	assert.Equal(t, MsgNoPendingDuels, ctx.LastEmbed(t).Description)

	proposeDuel(t, ctx, "alice", testUser("bob"), 600, "dice")

	handler(ctx.Session, commandInteraction("duels", testUser("bob")), ctx.Services)
	embed := ctx.LastEmbed(t)
	assert.Equal(t, TitlePending, embed.Title)
	assert.Contains(t, embed.Description, "<@alice> vs <@bob>: **600** points on Dice")
}
