package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

func TestDiceCommand_Win(t *testing.T) {
	ctx := SetupTestContext(t, 0.9, 0.9)
	cmd, handler := DiceCommand()
	require.Equal(t, "dice", cmd.Name)

	handler(ctx.Session, commandInteraction("dice", testUser("alice"), intOpt(OptionAmount, 500)), ctx.Services)

	embed := ctx.LastEmbed(t)
	assert.Equal(t, "🎲 Dice", embed.Title)
	assert.Contains(t, embed.Description, "🎲 6  🎲 6 (total 12)")
	assert.Contains(t, embed.Description, "Multiplier: **2x**")
	assert.Contains(t, embed.Description, "You won **500** points!")
	assert.Contains(t, embed.Description, "Balance: **1,500**")
	assert.Equal(t, ColorGreen, embed.Color)
	assert.Equal(t, int64(1500), ctx.Balance(t, "alice"))
}

func TestRouletteCommand(t *testing.T) {
	tests := []struct {
		name    string
		pick    domain.RouletteColor
		draw    float64
		balance int64
		landed  string
	}{
		{"green pays fourteen", domain.RouletteGreen, 0.02, 1000 + 13*200, "Green"},
		{"red on black loses", domain.RouletteRed, 0.9, 800, "Black"},
		{"red wins", domain.RouletteRed, 0.4, 1200, "Red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := SetupTestContext(t, tt.draw)
			_, handler := RouletteCommand()

			handler(ctx.Session, commandInteraction("roulette", testUser("alice"),
				strOpt(OptionColor, string(tt.pick)), intOpt(OptionAmount, 200)), ctx.Services)

			embed := ctx.LastEmbed(t)
			assert.Contains(t, embed.Description, "the ball landed on **"+tt.landed+"**")
			assert.Equal(t, tt.balance, ctx.Balance(t, "alice"))
		})
	}
}

func TestCoinflipCommand_Loss(t *testing.T) {
	ctx := SetupTestContext(t, 0.7)
	_, handler := CoinflipCommand()

	handler(ctx.Session, commandInteraction("coinflip", testUser("alice"),
		strOpt(OptionSide, string(domain.CoinHeads)), intOpt(OptionAmount, 300)), ctx.Services)

	embed := ctx.LastEmbed(t)
	assert.Contains(t, embed.Description, "You called **Heads**, the coin shows **Tails**")
	assert.Contains(t, embed.Description, "You lost **300** points.")
	assert.Equal(t, ColorRed, embed.Color)
	assert.Equal(t, int64(700), ctx.Balance(t, "alice"))
}

func TestGameCommands_Rejections(t *testing.T) {
	t.Run("below minimum consumes no draws", func(t *testing.T) {
		ctx := SetupTestContext(t)
		_, handler := CasinoCommand()

		handler(ctx.Session, commandInteraction("casino", testUser("alice"), intOpt(OptionAmount, 199)), ctx.Services)

		assert.Contains(t, ctx.LastContent(t), "Minimum bet is 200 points")
		assert.Equal(t, 0, ctx.Random.Consumed())
	})

	t.Run("stake above balance", func(t *testing.T) {
		ctx := SetupTestContext(t)
		_, handler := JackpotCommand()

		handler(ctx.Session, commandInteraction("jackpot", testUser("alice"), intOpt(OptionAmount, 1001)), ctx.Services)

		assert.Equal(t, MsgInsufficientFunds, ctx.LastContent(t))
		assert.Equal(t, int64(1000), ctx.Balance(t, "alice"))
	})
}

func TestGameCommands_Definitions(t *testing.T) {
	for _, factory := range []CommandFactory{CasinoCommand, JackpotCommand, DiceCommand, CoinflipCommand, RouletteCommand} {
		cmd, _ := factory()
		amount := cmd.Options[len(cmd.Options)-1]
		assert.Equal(t, OptionAmount, amount.Name, cmd.Name)
		require.NotNil(t, amount.MinValue, cmd.Name)
		assert.Equal(t, float64(domain.MinGameStake), *amount.MinValue, cmd.Name)
	}
}
