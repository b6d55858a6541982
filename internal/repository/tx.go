package repository

import (
	"context"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// Tx is a unit of work over a locked set of accounts. Writes become visible on
// Commit; Rollback discards them. Only accounts named in BeginTx may be touched.
type Tx interface {
	GetAccount(ctx context.Context, userID string) (*domain.Account, error)
	ApplyDelta(ctx context.Context, userID string, delta int64) (int64, error)
	UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) error
	AddInventory(ctx context.Context, userID string, itemID, quantity int) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
