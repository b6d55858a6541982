// Package ledger is the in-memory account store used by default and in tests.
//
// Balances, profiles and inventories live in maps guarded by a store-wide RWMutex.
// Every write goes through a transaction that first takes the per-account locks of
// every account it touches, in sorted order, so a check-and-debit is never split
// across two critical sections.
package ledger

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/osse101/CasinoBot_Go/internal/concurrency"
	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/repository"
)

// Store implements repository.Store in memory
type Store struct {
	mu        sync.RWMutex
	accounts  map[string]*domain.Account
	inventory map[string]map[int]int
	items     []domain.ShopItem
	locks     *concurrency.LockManager
}

var _ repository.Store = (*Store)(nil)

// NewMemoryStore creates an empty store with the given shop catalog
func NewMemoryStore(items []domain.ShopItem) *Store {
	return &Store{
		accounts:  make(map[string]*domain.Account),
		inventory: make(map[string]map[int]int),
		items:     slices.Clone(items),
		locks:     concurrency.NewLockManager(),
	}
}

// GetBalance returns the user's points, creating the account on first sight
func (s *Store) GetBalance(ctx context.Context, userID string) (int64, error) {
	acc, err := s.GetAccount(ctx, userID)
	if err != nil {
		return 0, err
	}
	return acc.Points, nil
}

// ApplyDelta atomically adds delta to the user's points
func (s *Store) ApplyDelta(ctx context.Context, userID string, delta int64) (int64, error) {
	tx, err := s.BeginTx(ctx, userID)
	if err != nil {
		return 0, err
	}
	defer repository.SafeRollback(ctx, tx)

	balance, err := tx.ApplyDelta(ctx, userID, delta)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return balance, nil
}

// GetAccount returns a copy of the account, creating it on first sight
func (s *Store) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, domain.ErrMsgAccountNotFound)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}

	s.mu.RLock()
	acc, ok := s.accounts[userID]
	if ok {
		cp := *acc
		s.mu.RUnlock()
		return &cp, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *s.ensureLocked(userID)
	return &cp, nil
}

// UpdateProfile overwrites the non-nil profile fields
func (s *Store) UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	tx, err := s.BeginTx(ctx, userID)
	if err != nil {
		return err
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.UpdateProfile(ctx, userID, update); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// TopAccounts ranks playable accounts by points, ties broken by id
func (s *Store) TopAccounts(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	s.mu.RLock()
	all := make([]domain.Account, 0, len(s.accounts))
	for id, acc := range s.accounts {
		if id == domain.HouseAccountID {
			continue
		}
		all = append(all, *acc)
	}
	s.mu.RUnlock()

	slices.SortFunc(all, func(a, b domain.Account) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}

	entries := make([]domain.LeaderboardEntry, len(all))
	for i, acc := range all {
		entries[i] = domain.LeaderboardEntry{Rank: i + 1, UserID: acc.ID, Points: acc.Points}
	}
	return entries, nil
}

// ListShopItems returns the catalog
func (s *Store) ListShopItems(ctx context.Context) ([]domain.ShopItem, error) {
	return slices.Clone(s.items), nil
}

// GetShopItem returns one catalog entry
func (s *Store) GetShopItem(ctx context.Context, itemID int) (*domain.ShopItem, error) {
	for _, item := range s.items {
		if item.ID == itemID {
			cp := item
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: %s %d", domain.ErrNotFound, domain.ErrMsgItemNotFound, itemID)
}

// GetInventory returns the user's owned items ordered by item id
func (s *Store) GetInventory(ctx context.Context, userID string) ([]domain.InventoryItem, error) {
	s.mu.RLock()
	owned := s.inventory[userID]
	out := make([]domain.InventoryItem, 0, len(owned))
	for _, item := range s.items {
		if qty := owned[item.ID]; qty > 0 {
			out = append(out, domain.InventoryItem{UserID: userID, Item: item, Quantity: qty})
		}
	}
	s.mu.RUnlock()
	return out, nil
}

// Ping always succeeds
func (s *Store) Ping(ctx context.Context) error {
	return nil
}

// ensureLocked creates the account if missing. Caller holds s.mu for writing.
func (s *Store) ensureLocked(userID string) *domain.Account {
	acc, ok := s.accounts[userID]
	if !ok {
		acc = domain.NewAccount(userID)
		s.accounts[userID] = acc
	}
	return acc
}
