package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/repository"
)

// Tx implements repository.Tx over a pgx transaction holding row locks
type Tx struct {
	tx     pgx.Tx
	locked map[string]struct{}
	done   bool
}

// BeginTx starts a transaction and locks the named accounts in sorted order
func (s *Store) BeginTx(ctx context.Context, userIDs ...string) (repository.Tx, error) {
	ids := repository.SortedUnique(userIDs)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgNoAccounts)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, unavailable(ErrMsgFailedToBeginTransaction, err)
	}

	if err := ensureAccounts(ctx, tx, ids); err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}

	rows, err := tx.Query(ctx, `SELECT user_id FROM accounts WHERE user_id = ANY($1) ORDER BY user_id FOR UPDATE`, ids)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, unavailable(ErrMsgFailedToLockAccounts, err)
	}
	locked, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, unavailable(ErrMsgFailedToLockAccounts, err)
	}

	t := &Tx{tx: tx, locked: make(map[string]struct{}, len(locked))}
	for _, id := range locked {
		t.locked[id] = struct{}{}
	}
	return t, nil
}

func (t *Tx) check(userID string) error {
	if t.done {
		return domain.ErrTxClosed
	}
	if _, ok := t.locked[userID]; !ok {
		return fmt.Errorf("%w: "+ErrMsgAccountNotLocked, domain.ErrInvalidArgument, userID)
	}
	return nil
}

// GetAccount reads a locked account
func (t *Tx) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	if err := t.check(userID); err != nil {
		return nil, err
	}
	return getAccount(ctx, t.tx, userID, false)
}

// ApplyDelta adds delta to a locked account, refusing to go negative
func (t *Tx) ApplyDelta(ctx context.Context, userID string, delta int64) (int64, error) {
	if err := t.check(userID); err != nil {
		return 0, err
	}
	return applyDelta(ctx, t.tx, userID, delta)
}

// UpdateProfile overwrites the non-nil profile fields of a locked account
func (t *Tx) UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) error {
	if err := t.check(userID); err != nil {
		return err
	}
	if update.IsEmpty() {
		return nil
	}
	return updateProfile(ctx, t.tx, userID, update)
}

// AddInventory grants quantity of an item to a locked account
func (t *Tx) AddInventory(ctx context.Context, userID string, itemID, quantity int) error {
	if err := t.check(userID); err != nil {
		return err
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgQuantityInvalid)
	}
	if _, err := t.tx.Exec(ctx, addInventoryQuery, userID, itemID, quantity); err != nil {
		return unavailable(ErrMsgFailedToAddInventory, err)
	}
	return nil
}

// Commit commits the transaction
func (t *Tx) Commit(ctx context.Context) error {
	if t.done {
		return domain.ErrTxClosed
	}
	t.done = true
	if err := t.tx.Commit(ctx); err != nil {
		return unavailable(ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// Rollback rolls back the transaction
func (t *Tx) Rollback(ctx context.Context) error {
	if t.done {
		return domain.ErrTxClosed
	}
	t.done = true
	if err := t.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	return nil
}
