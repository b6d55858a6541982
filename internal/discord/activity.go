package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/logger"
)

// messageCreate may award the author a few points for chatting
func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || b.Services == nil {
		return
	}

	ctx := logger.WithRequestID(context.Background(), m.ID)
	if _, err := b.Services.Economy.RecordMessage(ctx, toPlayer(m.Author)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgActivityFailed, "source", "message", "user_id", m.Author.ID, "error", err)
	}
}

// messageReactionAdd awards the reacted message's author a point
func (b *Bot) messageReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if b.Services == nil {
		return
	}

	reactor := domain.Player{ID: r.UserID}
	if r.Member != nil && r.Member.User != nil {
		reactor = toPlayer(r.Member.User)
	}
	if reactor.Bot {
		return
	}

	author, ok := messageAuthor(s, r.ChannelID, r.MessageID)
	if !ok {
		return
	}

	ctx := logger.WithRequestID(context.Background(), r.MessageID)
	if _, err := b.Services.Economy.RecordReaction(ctx, reactor, toPlayer(author)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgActivityFailed, "source", "reaction", "user_id", author.ID, "error", err)
	}
}

// messageAuthor finds who wrote a message, preferring the state cache over a REST call
func messageAuthor(s *discordgo.Session, channelID, messageID string) (*discordgo.User, bool) {
	if s.State != nil {
		if msg, err := s.State.Message(channelID, messageID); err == nil && msg.Author != nil {
			return msg.Author, true
		}
	}

	msg, err := s.ChannelMessage(channelID, messageID)
	if err != nil {
		logger.Warn(LogMsgAuthorLookupFailed, "channel_id", channelID, "message_id", messageID, "error", err)
		return nil, false
	}
	if msg.Author == nil {
		return nil, false
	}
	return msg.Author, true
}
