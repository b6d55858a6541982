package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceCommand(t *testing.T) {
	ctx := SetupTestContext(t)
	_, handler := BalanceCommand()

	handler(ctx.Session, commandInteraction("balance", testUser("alice")), ctx.Services)

	callbacks := ctx.Callbacks(t)
	require.Len(t, callbacks, 1)
	assert.Equal(t, discordgo.InteractionResponseDeferredChannelMessageWithSource, callbacks[0].Type)

	embed := ctx.LastEmbed(t)
	assert.Equal(t, TitleBalance, embed.Title)
	assert.Contains(t, embed.Description, "**1,000** points")
	assert.Equal(t, FooterCasinoBot, embed.Footer.Text)
}

func TestProfileCommand_OtherUser(t *testing.T) {
	ctx := SetupTestContext(t)
	_, handler := ProfileCommand()

	i := withResolvedUsers(commandInteraction("profile", testUser("alice"), userOpt(OptionUser, "bob")), testUser("bob"))
	handler(ctx.Session, i, ctx.Services)

	embed := ctx.LastEmbed(t)
	assert.Equal(t, TitleProfile, embed.Title)
	assert.Equal(t, "<@bob>", embed.Description)
	require.Len(t, embed.Fields, 5)
	assert.Equal(t, "1,000", embed.Fields[0].Value)
	assert.Equal(t, "1", embed.Fields[1].Value)
}

func TestDailyCommand_ClaimThenCooldown(t *testing.T) {
	ctx := SetupTestContext(t, 0.0)
	_, handler := DailyCommand()

	handler(ctx.Session, commandInteraction("daily", testUser("alice")), ctx.Services)
	embed := ctx.LastEmbed(t)
	assert.Equal(t, TitleDaily, embed.Title)
	balance := ctx.Balance(t, "alice")
	assert.Greater(t, balance, int64(1000))

	handler(ctx.Session, commandInteraction("daily", testUser("alice")), ctx.Services)
	content := ctx.LastContent(t)
	assert.Contains(t, content, MsgCooldownActive)
	assert.Contains(t, content, "You can claim daily again in")
	assert.Equal(t, balance, ctx.Balance(t, "alice"))
	assert.Equal(t, 1, ctx.Random.Consumed())
}

func TestPayCommand(t *testing.T) {
	ctx := SetupTestContext(t)
	_, handler := PayCommand()

	i := withResolvedUsers(
		commandInteraction("pay", testUser("alice"), userOpt(OptionUser, "bob"), intOpt(OptionAmount, 300)),
		testUser("bob"))
	handler(ctx.Session, i, ctx.Services)

	embed := ctx.LastEmbed(t)
	assert.Equal(t, TitleTransfer, embed.Title)
	assert.Contains(t, embed.Description, "**300** points to <@bob>")
	assert.Contains(t, embed.Description, "**700**")
	assert.Equal(t, int64(700), ctx.Balance(t, "alice"))
	assert.Equal(t, int64(1300), ctx.Balance(t, "bob"))
}

func TestPayCommand_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		to       *discordgo.User
		amount   int64
		contains string
	}{
		{"below minimum", testUser("bob"), 199, MsgInvalidArgument},
		{"to self", testUser("alice"), 300, "Cannot target yourself"},
		{"to bot", &discordgo.User{ID: "robot", Bot: true}, 300, MsgInvalidArgument},
		{"more than balance", testUser("bob"), 5000, MsgInsufficientFunds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := SetupTestContext(t)
			_, handler := PayCommand()

			i := withResolvedUsers(
				commandInteraction("pay", testUser("alice"), userOpt(OptionUser, tt.to.ID), intOpt(OptionAmount, tt.amount)),
				tt.to)
			handler(ctx.Session, i, ctx.Services)

			assert.Contains(t, ctx.LastContent(t), tt.contains)
			assert.Equal(t, int64(1000), ctx.Balance(t, "alice"))
		})
	}
}

func TestLeaderboardCommand(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		ctx := SetupTestContext(t)
		_, handler := LeaderboardCommand()

		handler(ctx.Session, commandInteraction("leaderboard", testUser("alice")), ctx.Services)
		assert.Equal(t, MsgEmptyLeaderboard, ctx.LastEmbed(t).Description)
	})

	t.Run("ranked", func(t *testing.T) {
		ctx := SetupTestContext(t)
		_, handler := LeaderboardCommand()

		_, err := ctx.Store.ApplyDelta(t.Context(), "carol", 4000)
		require.NoError(t, err)
		ctx.Balance(t, "dave")

		handler(ctx.Session, commandInteraction("leaderboard", testUser("alice")), ctx.Services)

		embed := ctx.LastEmbed(t)
		assert.Equal(t, TitleLeaderboard, embed.Title)
		assert.Contains(t, embed.Description, "**1.** <@carol>: 5,000 points")
		assert.Contains(t, embed.Description, "**2.** <@dave>: 1,000 points")
	})
}
