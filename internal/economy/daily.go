package economy

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/CasinoBot_Go/internal/cooldown"
	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/event"
	"github.com/osse101/CasinoBot_Go/internal/leveling"
	"github.com/osse101/CasinoBot_Go/internal/logger"
	"github.com/osse101/CasinoBot_Go/internal/repository"
)

// Daily claims the daily bonus. The cooldown check, the credit, the experience
// grant and the claim timestamp all happen under the account lock.
func (s *service) Daily(ctx context.Context, player domain.Player) (*DailyResult, error) {
	log := logger.FromContext(ctx)

	if !player.Playable() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, domain.ErrMsgNotPlayable)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tx, err := s.store.BeginTx(ctx, player.ID)
	if err != nil {
		log.Error(LogMsgStoreFailed, "op", "daily", "user_id", player.ID, "error", err)
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	acc, err := tx.GetAccount(ctx, player.ID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if err := s.policy.Enforce(ctx, cooldown.ActionDaily, acc.LastDailyClaim, now); err != nil {
		var cd cooldown.ErrOnCooldown
		if errors.As(err, &cd) {
			log.Info(LogMsgDailyOnCooldown, "user_id", player.ID, "remaining", cd.Remaining)
		}
		return nil, err
	}

	oldLevel := acc.Level
	bonus := cooldown.DailyBonus(s.src, acc.Level)

	balance, err := tx.ApplyDelta(ctx, player.ID, bonus)
	if err != nil {
		return nil, err
	}

	grant := leveling.Apply(acc, domain.DailyExperience)
	update := grant.Update()
	update.LastDailyClaim = &now
	if err := tx.UpdateProfile(ctx, player.ID, update); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(LogMsgStoreFailed, "op", "daily", "user_id", player.ID, "error", err)
		return nil, err
	}

	log.Info(LogMsgDailyClaimed, "user_id", player.ID, "bonus", bonus, "balance", balance, "level", grant.Level)
	s.publish(ctx, event.NewDailyClaimedEvent(player.ID, bonus, grant.Level))
	if grant.LeveledUp {
		log.Info(LogMsgLevelUp, "user_id", player.ID, "old_level", oldLevel, "new_level", grant.Level)
		s.publish(ctx, event.NewLevelUpEvent(player.ID, oldLevel, grant.Level, SourceDaily))
	}

	return &DailyResult{
		Bonus:      bonus,
		Balance:    balance,
		Experience: grant.Experience,
		Level:      grant.Level,
		LeveledUp:  grant.LeveledUp,
		ClaimedAt:  now,
	}, nil
}
