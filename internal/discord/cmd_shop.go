package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// ShopCommand returns the shop command definition and handler
func ShopCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "shop",
		Description: "Browse the item shop",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		items, err := svc.Economy.Shop(commandContext(i))
		if err != nil {
			respondFriendlyError(s, i, cmd.Name, err)
			return
		}

		embed := createEmbed(TitleShop, "Buy with `/buy item:<id>`", ColorBlue)
		for _, item := range items {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  fmt.Sprintf("%s %s (#%d)", item.Emoji, item.Name, item.ID),
				Value: fmt.Sprintf("%s\n**%s** points", item.Description, formatPoints(item.Price)),
			})
		}
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// BuyCommand returns the buy command definition and handler
func BuyCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minID := 1.0
	cmd := &discordgo.ApplicationCommand{
		Name:        "buy",
		Description: "Purchase an item from the shop",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptionItem,
				Description: "Item number from /shop",
				Required:    true,
				MinValue:    &minID,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		itemID := int(getOptions(i)[OptionItem].IntValue())
		res, err := svc.Economy.Buy(commandContext(i), interactionPlayer(i), itemID)
		if err != nil {
			respondFriendlyError(s, i, cmd.Name, err)
			return
		}

		sendEmbed(s, i, createEmbed(TitlePurchase,
			fmt.Sprintf("You bought %d× %s **%s** for **%s** points.\nBalance: **%s**",
				res.Quantity, res.Item.Emoji, res.Item.Name, formatPoints(res.Item.Price), formatPoints(res.Balance)),
			ColorGreen))
	}

	return cmd, handler
}

// InventoryCommand returns the inventory command definition and handler
func InventoryCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "inventory",
		Description: "Show the items you own",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		items, err := svc.Economy.Inventory(commandContext(i), interactionPlayer(i))
		if err != nil {
			respondFriendlyError(s, i, cmd.Name, err)
			return
		}

		if len(items) == 0 {
			sendEmbed(s, i, createEmbed(TitleInventory, MsgEmptyInventory, ColorGrey))
			return
		}

		var sb strings.Builder
		for _, inv := range items {
			fmt.Fprintf(&sb, "%s **%s** x%d\n", inv.Item.Emoji, inv.Item.Name, inv.Quantity)
		}
		sendEmbed(s, i, createEmbed(TitleInventory, sb.String(), ColorBlue))
	}

	return cmd, handler
}
