package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/logger"
)

// CommandHandler handles a slash command or a message component interaction
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services)

// CommandRegistry holds the registered commands and component handlers
type CommandRegistry struct {
	Commands   map[string]*discordgo.ApplicationCommand
	Handlers   map[string]CommandHandler
	Components map[string]CommandHandler // keyed by custom id prefix
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands:   make(map[string]*discordgo.ApplicationCommand),
		Handlers:   make(map[string]CommandHandler),
		Components: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// RegisterComponent routes buttons whose custom id starts with prefix
func (r *CommandRegistry) RegisterComponent(prefix string, handler CommandHandler) {
	r.Components[prefix] = handler
}

// Handle processes an interaction
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		h, ok := r.Handlers[name]
		if !ok {
			logger.Warn(LogMsgUnknownCommand, "command", name)
			return
		}
		RecordCommand(name)
		h(s, i, svc)
	case discordgo.InteractionMessageComponent:
		prefix, _ := splitCustomID(i.MessageComponentData().CustomID)
		h, ok := r.Components[prefix]
		if !ok {
			logger.Warn(LogMsgUnknownComponent, "custom_id", i.MessageComponentData().CustomID)
			return
		}
		RecordCommand(prefix)
		h(s, i, svc)
	}
}

// RegisterCommands registers or updates commands with Discord.
// Only performs updates if commands have changed to avoid rate limits.
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	logger.Info(LogMsgCheckingCommands, "guild_id", b.GuildID)

	existingCmds, err := b.Session.ApplicationCommands(b.AppID, b.GuildID)
	if err != nil {
		return fmt.Errorf("failed to fetch existing commands: %w", err)
	}

	desiredCmds := make([]*discordgo.ApplicationCommand, 0, len(registry.Commands))
	for _, cmd := range registry.Commands {
		desiredCmds = append(desiredCmds, cmd)
	}

	if !forceUpdate && commandsEqual(existingCmds, desiredCmds) {
		logger.Info(LogMsgCommandsUnchanged, "count", len(existingCmds))
		return nil
	}

	logger.Info(LogMsgCommandsUpdating,
		"existing", len(existingCmds),
		"desired", len(desiredCmds),
		"forced", forceUpdate)

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, b.GuildID, desiredCmds); err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}

	logger.Info(LogMsgCommandsUpdated, "count", len(desiredCmds))
	return nil
}

// commandsEqual checks if two command sets are equivalent
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, cmd := range existing {
		existingMap[cmd.Name] = cmd
	}

	for _, want := range desired {
		have, ok := existingMap[want.Name]
		if !ok || !commandEqual(have, want) {
			return false
		}
	}

	return true
}

// commandEqual checks if two commands are equivalent
func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}

	if (a.DefaultMemberPermissions == nil) != (b.DefaultMemberPermissions == nil) {
		return false
	}
	if a.DefaultMemberPermissions != nil && *a.DefaultMemberPermissions != *b.DefaultMemberPermissions {
		return false
	}

	if len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Options {
		if !optionEqual(a.Options[i], b.Options[i]) {
			return false
		}
	}

	return true
}

// optionEqual checks if two command options are equivalent
func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description || a.Required != b.Required {
		return false
	}

	if (a.MinValue == nil) != (b.MinValue == nil) {
		return false
	}
	if a.MinValue != nil && *a.MinValue != *b.MinValue {
		return false
	}

	if len(a.Choices) != len(b.Choices) {
		return false
	}
	for i := range a.Choices {
		if a.Choices[i].Name != b.Choices[i].Name || a.Choices[i].Value != b.Choices[i].Value {
			return false
		}
	}

	return true
}

// respondError replaces the deferred response with a plain message
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		logger.Error(LogMsgEditFailed, "error", err)
	}
}

// respondFriendlyError maps a service error onto a readable message.
// Rejections are logged at info; anything else is an infrastructure failure.
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, op string, err error) {
	logFailure(op, err)
	respondError(s, i, formatFriendlyError(err))
}

// followupError sends an ephemeral followup, leaving the original message untouched
func followupError(s *discordgo.Session, i *discordgo.InteractionCreate, op string, err error) {
	logFailure(op, err)
	if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: formatFriendlyError(err),
		Flags:   discordgo.MessageFlagsEphemeral,
	}); err != nil {
		logger.Error(LogMsgFollowupFailed, "error", err)
	}
}

func logFailure(op string, err error) {
	if domain.IsRejection(err) {
		logger.Info(LogMsgCommandRejected, "command", op, "reason", err.Error())
		return
	}
	logger.Error(LogMsgCommandFailed, "command", op, "error", err)
}

// deferResponse acknowledges an interaction with a deferred message.
// Returns false if deferral failed and the handler should return early.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	return deferWith(s, i, discordgo.InteractionResponseDeferredChannelMessageWithSource)
}

// deferUpdate acknowledges a component interaction; the edit then rewrites the message itself
func deferUpdate(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	return deferWith(s, i, discordgo.InteractionResponseDeferredMessageUpdate)
}

func deferWith(s *discordgo.Session, i *discordgo.InteractionCreate, kind discordgo.InteractionResponseType) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{Type: kind}); err != nil {
		logger.Error(LogMsgDeferFailed, "error", err)
		return false
	}
	return true
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	if i.User != nil {
		return i.User
	}
	return &discordgo.User{}
}

// toPlayer converts a Discord user into the principal the services understand
func toPlayer(u *discordgo.User) domain.Player {
	return domain.Player{ID: u.ID, Name: u.Username, Bot: u.Bot}
}

// interactionPlayer is the principal who invoked the interaction
func interactionPlayer(i *discordgo.InteractionCreate) domain.Player {
	return toPlayer(getInteractionUser(i))
}

// getOptions indexes the command options by name
func getOptions(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	byName := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		byName[opt.Name] = opt
	}
	return byName
}

// optionUser resolves a user option from the interaction's resolved data
func optionUser(i *discordgo.InteractionCreate, opt *discordgo.ApplicationCommandInteractionDataOption) *discordgo.User {
	id, _ := opt.Value.(string)
	if resolved := i.ApplicationCommandData().Resolved; resolved != nil {
		if u, ok := resolved.Users[id]; ok && u != nil {
			return u
		}
	}
	return &discordgo.User{ID: id}
}

// commandContext scopes a service call to one interaction
func commandContext(i *discordgo.InteractionCreate) context.Context {
	return logger.WithRequestID(context.Background(), i.ID)
}

// sendEmbed replaces the deferred response with an embed
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	sendEmbedWithComponents(s, i, embed, nil)
}

// sendEmbedWithComponents replaces the deferred response with an embed and a component set.
// A nil component set clears any buttons on the message.
func sendEmbedWithComponents(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	if components == nil {
		components = []discordgo.MessageComponent{}
	}
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &components,
	}); err != nil {
		logger.Error(LogMsgEditFailed, "error", err)
	}
}

// createEmbed creates a standard embed with the bot footer
func createEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterCasinoBot,
		},
	}
}

// customID joins a component prefix and its argument
func customID(prefix, arg string) string {
	return prefix + customIDSeparator + arg
}

func splitCustomID(id string) (prefix, arg string) {
	prefix, arg, _ = strings.Cut(id, customIDSeparator)
	return prefix, arg
}
