package economy

import (
	"context"
	"fmt"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/event"
	"github.com/osse101/CasinoBot_Go/internal/logger"
	"github.com/osse101/CasinoBot_Go/internal/repository"
)

// Pay moves amount points from one player to another in a single transaction
func (s *service) Pay(ctx context.Context, from, to domain.Player, amount int64) (*TransferResult, error) {
	log := logger.FromContext(ctx)

	switch {
	case !from.Playable() || !to.Playable():
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, domain.ErrMsgNotPlayable)
	case from.ID == to.ID:
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, domain.ErrMsgSelfTarget)
	case amount < domain.MinTransferStake:
		return nil, fmt.Errorf("%w: "+ErrMsgMinimumTransfer, domain.ErrInvalidArgument, domain.MinTransferStake)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tx, err := s.store.BeginTx(ctx, from.ID, to.ID)
	if err != nil {
		log.Error(LogMsgStoreFailed, "op", "pay", "error", err)
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	fromBalance, err := tx.ApplyDelta(ctx, from.ID, -amount)
	if err != nil {
		return nil, err
	}
	toBalance, err := tx.ApplyDelta(ctx, to.ID, amount)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(LogMsgStoreFailed, "op", "pay", "error", err)
		return nil, err
	}

	log.Info(LogMsgTransferCompleted, "from", from.ID, "to", to.ID, "amount", amount)
	s.publish(ctx, event.NewTransferEvent(from.ID, to.ID, amount))

	return &TransferResult{
		FromUserID:  from.ID,
		ToUserID:    to.ID,
		Amount:      amount,
		FromBalance: fromBalance,
		ToBalance:   toBalance,
	}, nil
}
