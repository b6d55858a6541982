package ledger

import (
	"context"
	"fmt"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/repository"
)

type memoryTx struct {
	store  *Store
	staged map[string]*domain.Account
	grants map[string]map[int]int
	unlock func()
	done   bool
}

// BeginTx locks the named accounts and stages copies of them
func (s *Store) BeginTx(ctx context.Context, userIDs ...string) (repository.Tx, error) {
	ids := repository.SortedUnique(userIDs)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgNoAccounts)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}

	unlock := s.locks.LockAll(ids...)

	staged := make(map[string]*domain.Account, len(ids))
	s.mu.Lock()
	for _, id := range ids {
		cp := *s.ensureLocked(id)
		staged[id] = &cp
	}
	s.mu.Unlock()

	return &memoryTx{
		store:  s,
		staged: staged,
		grants: make(map[string]map[int]int),
		unlock: unlock,
	}, nil
}

func (t *memoryTx) account(userID string) (*domain.Account, error) {
	if t.done {
		return nil, domain.ErrTxClosed
	}
	acc, ok := t.staged[userID]
	if !ok {
		return nil, fmt.Errorf("%w: "+ErrMsgAccountNotLocked, domain.ErrInvalidArgument, userID)
	}
	return acc, nil
}

func (t *memoryTx) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	acc, err := t.account(userID)
	if err != nil {
		return nil, err
	}
	cp := *acc
	return &cp, nil
}

func (t *memoryTx) ApplyDelta(ctx context.Context, userID string, delta int64) (int64, error) {
	acc, err := t.account(userID)
	if err != nil {
		return 0, err
	}
	if acc.Points+delta < 0 {
		return 0, fmt.Errorf("%w: "+ErrMsgBalanceTooLow, domain.ErrInsufficientFunds, acc.Points, -delta)
	}
	acc.Points += delta
	return acc.Points, nil
}

func (t *memoryTx) UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) error {
	acc, err := t.account(userID)
	if err != nil {
		return err
	}
	update.Apply(acc)
	return nil
}

func (t *memoryTx) AddInventory(ctx context.Context, userID string, itemID, quantity int) error {
	if _, err := t.account(userID); err != nil {
		return err
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgQuantityInvalid)
	}
	if t.grants[userID] == nil {
		t.grants[userID] = make(map[int]int)
	}
	t.grants[userID][itemID] += quantity
	return nil
}

func (t *memoryTx) Commit(ctx context.Context) error {
	if t.done {
		return domain.ErrTxClosed
	}
	t.done = true
	defer t.unlock()

	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, acc := range t.staged {
		s.accounts[id] = acc
	}
	for id, grants := range t.grants {
		owned := s.inventory[id]
		if owned == nil {
			owned = make(map[int]int)
			s.inventory[id] = owned
		}
		for itemID, qty := range grants {
			owned[itemID] += qty
		}
	}
	return nil
}

func (t *memoryTx) Rollback(ctx context.Context) error {
	if t.done {
		return domain.ErrTxClosed
	}
	t.done = true
	t.unlock()
	return nil
}
