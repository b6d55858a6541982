package economy

import (
	"context"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/event"
	"github.com/osse101/CasinoBot_Go/internal/logger"
	"github.com/osse101/CasinoBot_Go/internal/random"
)

// RecordMessage rolls the chat reward for a message. It returns the points
// awarded, zero when the roll misses or the author cannot earn.
func (s *service) RecordMessage(ctx context.Context, author domain.Player) (int64, error) {
	if !author.Playable() {
		return 0, nil
	}
	if s.src.Float64() >= domain.MessageRewardChance {
		return 0, nil
	}
	points := random.IntRange(s.src, domain.MessageRewardMin, domain.MessageRewardMax)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.store.ApplyDelta(ctx, author.ID, points); err != nil {
		logger.FromContext(ctx).Error(LogMsgStoreFailed, "op", "message", "user_id", author.ID, "error", err)
		return 0, err
	}

	logger.FromContext(ctx).Debug(LogMsgMessageRewarded, "user_id", author.ID, "points", points)
	s.publish(ctx, event.NewActivityEvent(event.MessageEarned, author.ID, points))
	return points, nil
}

// RecordReaction awards the message author a point when someone else reacts
func (s *service) RecordReaction(ctx context.Context, reactor, author domain.Player) (int64, error) {
	if reactor.Bot || !author.Playable() || reactor.ID == author.ID {
		return 0, nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.store.ApplyDelta(ctx, author.ID, domain.ReactionReward); err != nil {
		logger.FromContext(ctx).Error(LogMsgStoreFailed, "op", "reaction", "user_id", author.ID, "error", err)
		return 0, err
	}

	logger.FromContext(ctx).Debug(LogMsgReactionRewarded, "user_id", author.ID, "reactor", reactor.ID)
	s.publish(ctx, event.NewActivityEvent(event.ReactionEarned, author.ID, domain.ReactionReward))
	return domain.ReactionReward, nil
}
