// Package casino runs solo games: one stake, one resolution, one settlement.
package casino

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/event"
	"github.com/osse101/CasinoBot_Go/internal/logger"
	"github.com/osse101/CasinoBot_Go/internal/payout"
	"github.com/osse101/CasinoBot_Go/internal/repository"
)

// Service defines the interface for solo games
type Service interface {
	Play(ctx context.Context, player domain.Player, req payout.Request) (*domain.GameResult, error)
}

type service struct {
	store     repository.Store
	engine    *payout.Engine
	publisher event.Publisher
	timeout   time.Duration
}

// NewService creates a new casino service. A nil publisher disables events.
func NewService(store repository.Store, engine *payout.Engine, publisher event.Publisher, timeout time.Duration) Service {
	if timeout <= 0 {
		timeout = domain.DefaultStoreTimeout
	}
	return &service{
		store:     store,
		engine:    engine,
		publisher: publisher,
		timeout:   timeout,
	}
}

// Play stakes req.Stake on one round of req.Kind. The outcome is computed
// before any balance changes and settled in a single transaction.
func (s *service) Play(ctx context.Context, player domain.Player, req payout.Request) (*domain.GameResult, error) {
	log := logger.FromContext(ctx)

	if !player.Playable() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, domain.ErrMsgNotPlayable)
	}
	if req.Stake < domain.MinGameStake {
		return nil, fmt.Errorf("%w: "+ErrMsgMinimumStake, domain.ErrInvalidArgument, domain.MinGameStake)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tx, err := s.store.BeginTx(ctx, player.ID)
	if err != nil {
		log.Error(LogMsgGameStoreFailed, "user_id", player.ID, "error", err)
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	acc, err := tx.GetAccount(ctx, player.ID)
	if err != nil {
		return nil, err
	}
	if acc.Points < req.Stake {
		log.Info(LogMsgGameRejected, "user_id", player.ID, "game", req.Kind, "stake", req.Stake, "balance", acc.Points)
		return nil, fmt.Errorf("%w: "+ErrMsgBalanceLow, domain.ErrInsufficientFunds, acc.Points, req.Stake)
	}

	res, err := s.engine.Resolve(req)
	if err != nil {
		return nil, err
	}

	balance, err := tx.ApplyDelta(ctx, player.ID, res.Outcome.Delta)
	if err != nil {
		return nil, err
	}

	played := acc.GamesPlayed + 1
	update := domain.ProfileUpdate{GamesPlayed: &played}
	if res.Outcome.Delta > 0 {
		wins := acc.Wins + 1
		update.Wins = &wins
	}
	if err := tx.UpdateProfile(ctx, player.ID, update); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(LogMsgGameStoreFailed, "user_id", player.ID, "error", err)
		return nil, err
	}

	result := &domain.GameResult{
		UserID:  player.ID,
		Game:    req.Kind,
		Stake:   req.Stake,
		Outcome: res.Outcome,
		Balance: balance,
		Color:   res.Color,
		Coin:    res.Coin,
		Dice:    res.Dice,
	}
	switch req.Kind {
	case domain.GameRoulette:
		result.Pick = string(req.Color)
	case domain.GameCoinflip:
		result.Pick = string(req.Side)
	}

	log.Info(LogMsgGamePlayed, "user_id", player.ID, "game", req.Kind, "stake", req.Stake,
		"multiplier", res.Outcome.Multiplier, "delta", res.Outcome.Delta, "balance", balance)

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewGamePlayedEvent(*result))
	}

	return result, nil
}
