package duel

import (
	"context"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/event"
	"github.com/osse101/CasinoBot_Go/internal/leveling"
	"github.com/osse101/CasinoBot_Go/internal/logger"
	"github.com/osse101/CasinoBot_Go/internal/repository"
)

type levelUp struct {
	userID   string
	oldLevel int
	newLevel int
}

// settle escrows both stakes, rolls the duel and pays out in one transaction.
// Any error leaves both balances and profiles untouched.
func (m *Manager) settle(ctx context.Context, duel domain.Duel) (*domain.DuelResult, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	tx, err := m.store.BeginTx(ctx, duel.CreatorID, duel.OpponentID)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	creator, err := tx.GetAccount(ctx, duel.CreatorID)
	if err != nil {
		return nil, err
	}
	opponent, err := tx.GetAccount(ctx, duel.OpponentID)
	if err != nil {
		return nil, err
	}

	if _, err := tx.ApplyDelta(ctx, creator.ID, -duel.Stake); err != nil {
		return nil, err
	}
	if _, err := tx.ApplyDelta(ctx, opponent.ID, -duel.Stake); err != nil {
		return nil, err
	}

	roll, err := m.engine.RollDuel(duel.Kind, creator.ID, opponent.ID)
	if err != nil {
		return nil, err
	}

	result := &domain.DuelResult{
		Duel:     duel,
		Creator:  roll.Creator,
		Opponent: roll.Opponent,
		Coin:     roll.Coin,
		IsDraw:   roll.Winner == 0,
		Resolved: m.now(),
	}
	result.Duel.State = domain.DuelStateResolved

	var ups []levelUp
	if result.IsDraw {
		for _, acc := range []*domain.Account{creator, opponent} {
			if _, err := tx.ApplyDelta(ctx, acc.ID, duel.Stake); err != nil {
				return nil, err
			}
			played := acc.GamesPlayed + 1
			if err := tx.UpdateProfile(ctx, acc.ID, domain.ProfileUpdate{GamesPlayed: &played}); err != nil {
				return nil, err
			}
		}
	} else {
		winner, loser := creator, opponent
		if roll.Winner < 0 {
			winner, loser = opponent, creator
		}
		result.WinnerID = winner.ID
		result.LoserID = loser.ID
		result.Payout = 2 * duel.Stake

		if _, err := tx.ApplyDelta(ctx, winner.ID, result.Payout); err != nil {
			return nil, err
		}

		for _, side := range []struct {
			acc  *domain.Account
			xp   int64
			wins int
		}{
			{winner, domain.DuelWinExperience, 1},
			{loser, domain.DuelLossExperience, 0},
		} {
			oldLevel := side.acc.Level
			grant := leveling.Apply(side.acc, side.xp)
			update := grant.Update()
			played, wins := side.acc.GamesPlayed+1, side.acc.Wins+side.wins
			update.GamesPlayed = &played
			update.Wins = &wins
			if err := tx.UpdateProfile(ctx, side.acc.ID, update); err != nil {
				return nil, err
			}
			if grant.LeveledUp {
				ups = append(ups, levelUp{userID: side.acc.ID, oldLevel: oldLevel, newLevel: grant.Level})
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	for _, up := range ups {
		log.Info(LogMsgLevelUp, "user_id", up.userID, "old_level", up.oldLevel, "new_level", up.newLevel)
		m.publish(ctx, event.NewLevelUpEvent(up.userID, up.oldLevel, up.newLevel, SourceDuel))
	}

	return result, nil
}
