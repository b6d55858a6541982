// Package postgres is the PostgreSQL implementation of repository.Store.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/repository"
)

// Store implements repository.Store for PostgreSQL
type Store struct {
	db *pgxpool.Pool
}

var _ repository.Store = (*Store)(nil)

// NewStore creates a new Store
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// GetBalance returns the user's points, creating the account on first sight
func (s *Store) GetBalance(ctx context.Context, userID string) (int64, error) {
	acc, err := s.GetAccount(ctx, userID)
	if err != nil {
		return 0, err
	}
	return acc.Points, nil
}

// ApplyDelta adds delta to the user's points with a single conditional update
func (s *Store) ApplyDelta(ctx context.Context, userID string, delta int64) (int64, error) {
	if userID == "" {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, domain.ErrMsgAccountNotFound)
	}
	if err := ensureAccounts(ctx, s.db, []string{userID}); err != nil {
		return 0, err
	}
	return applyDelta(ctx, s.db, userID, delta)
}

// GetAccount returns the account, creating it on first sight
func (s *Store) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, domain.ErrMsgAccountNotFound)
	}
	if err := ensureAccounts(ctx, s.db, []string{userID}); err != nil {
		return nil, err
	}
	return getAccount(ctx, s.db, userID, false)
}

// UpdateProfile overwrites the non-nil profile fields
func (s *Store) UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) error {
	if update.IsEmpty() {
		return nil
	}
	if err := ensureAccounts(ctx, s.db, []string{userID}); err != nil {
		return err
	}
	return updateProfile(ctx, s.db, userID, update)
}

// TopAccounts ranks playable accounts by points, ties broken by id
func (s *Store) TopAccounts(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	query := `
		SELECT user_id, points
		FROM accounts
		WHERE user_id <> $1
		ORDER BY points DESC, user_id
		LIMIT $2
	`
	rows, err := s.db.Query(ctx, query, domain.HouseAccountID, limit)
	if err != nil {
		return nil, unavailable(ErrMsgFailedToGetLeaderboard, err)
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		e := domain.LeaderboardEntry{Rank: len(entries) + 1}
		if err := rows.Scan(&e.UserID, &e.Points); err != nil {
			return nil, unavailable(ErrMsgFailedToGetLeaderboard, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(ErrMsgFailedToGetLeaderboard, err)
	}
	return entries, nil
}

// ListShopItems returns the catalog ordered by id
func (s *Store) ListShopItems(ctx context.Context) ([]domain.ShopItem, error) {
	rows, err := s.db.Query(ctx, `SELECT item_id, name, description, price, emoji, category FROM shop_items ORDER BY item_id`)
	if err != nil {
		return nil, unavailable(ErrMsgFailedToListShopItems, err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ShopItem, error) {
		var it domain.ShopItem
		err := row.Scan(&it.ID, &it.Name, &it.Description, &it.Price, &it.Emoji, &it.Category)
		return it, err
	})
	if err != nil {
		return nil, unavailable(ErrMsgFailedToListShopItems, err)
	}
	return items, nil
}

// GetShopItem returns one catalog entry
func (s *Store) GetShopItem(ctx context.Context, itemID int) (*domain.ShopItem, error) {
	var it domain.ShopItem
	err := s.db.QueryRow(ctx, `
		SELECT item_id, name, description, price, emoji, category
		FROM shop_items WHERE item_id = $1
	`, itemID).Scan(&it.ID, &it.Name, &it.Description, &it.Price, &it.Emoji, &it.Category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s %d", domain.ErrNotFound, domain.ErrMsgItemNotFound, itemID)
		}
		return nil, unavailable(ErrMsgFailedToGetShopItem, err)
	}
	return &it, nil
}

// GetInventory returns the user's owned items ordered by item id
func (s *Store) GetInventory(ctx context.Context, userID string) ([]domain.InventoryItem, error) {
	rows, err := s.db.Query(ctx, `
		SELECT si.item_id, si.name, si.description, si.price, si.emoji, si.category, inv.quantity
		FROM inventory inv
		JOIN shop_items si ON si.item_id = inv.item_id
		WHERE inv.user_id = $1
		ORDER BY si.item_id
	`, userID)
	if err != nil {
		return nil, unavailable(ErrMsgFailedToGetInventory, err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.InventoryItem, error) {
		inv := domain.InventoryItem{UserID: userID}
		err := row.Scan(&inv.Item.ID, &inv.Item.Name, &inv.Item.Description, &inv.Item.Price,
			&inv.Item.Emoji, &inv.Item.Category, &inv.Quantity)
		return inv, err
	})
	if err != nil {
		return nil, unavailable(ErrMsgFailedToGetInventory, err)
	}
	return items, nil
}

// SeedShopItems upserts the catalog
func (s *Store) SeedShopItems(ctx context.Context, items []domain.ShopItem) error {
	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`
			INSERT INTO shop_items (item_id, name, description, price, emoji, category)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (item_id) DO UPDATE
			SET name = EXCLUDED.name, description = EXCLUDED.description, price = EXCLUDED.price,
			    emoji = EXCLUDED.emoji, category = EXCLUDED.category
		`, it.ID, it.Name, it.Description, it.Price, it.Emoji, it.Category)
	}
	if err := s.db.SendBatch(ctx, batch).Close(); err != nil {
		return unavailable(ErrMsgFailedToSeedShopItems, err)
	}
	return nil
}

// Ping checks the database connection
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	return nil
}
