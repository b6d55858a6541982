package repository

import (
	"context"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// Ledger is the point balance contract. ApplyDelta is atomic per user and fails
// with domain.ErrInsufficientFunds when the result would be negative.
type Ledger interface {
	GetBalance(ctx context.Context, userID string) (int64, error)
	ApplyDelta(ctx context.Context, userID string, delta int64) (int64, error)
}

// Profiles is the account profile contract. Accounts are created on first sight.
type Profiles interface {
	GetAccount(ctx context.Context, userID string) (*domain.Account, error)
	UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) error
}

// Leaderboard ranks playable accounts by points
type Leaderboard interface {
	TopAccounts(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

// Shop is the item catalog and per-user inventory
type Shop interface {
	ListShopItems(ctx context.Context) ([]domain.ShopItem, error)
	GetShopItem(ctx context.Context, itemID int) (*domain.ShopItem, error)
	GetInventory(ctx context.Context, userID string) ([]domain.InventoryItem, error)
}

// Store is everything the services need from persistence
type Store interface {
	Ledger
	Profiles
	Leaderboard
	Shop

	// BeginTx locks the accounts of userIDs, creating missing ones, until Commit or Rollback.
	// Implementations lock in sorted order so concurrent transactions cannot deadlock.
	BeginTx(ctx context.Context, userIDs ...string) (Tx, error)

	Ping(ctx context.Context) error
}
