package economy

import (
	"context"
	"fmt"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/event"
	"github.com/osse101/CasinoBot_Go/internal/logger"
	"github.com/osse101/CasinoBot_Go/internal/repository"
)

// Shop lists the catalog
func (s *service) Shop(ctx context.Context) ([]domain.ShopItem, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.ListShopItems(ctx)
}

// Buy purchases one unit of a catalog item
func (s *service) Buy(ctx context.Context, player domain.Player, itemID int) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)

	if !player.Playable() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, domain.ErrMsgNotPlayable)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	item, err := s.store.GetShopItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	tx, err := s.store.BeginTx(ctx, player.ID)
	if err != nil {
		log.Error(LogMsgStoreFailed, "op", "buy", "user_id", player.ID, "error", err)
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	acc, err := tx.GetAccount(ctx, player.ID)
	if err != nil {
		return nil, err
	}
	if acc.Points < item.Price {
		return nil, fmt.Errorf("%w: "+ErrMsgPriceTooHigh, domain.ErrInsufficientFunds, item.Name, item.Price, acc.Points)
	}

	balance, err := tx.ApplyDelta(ctx, player.ID, -item.Price)
	if err != nil {
		return nil, err
	}
	if err := tx.AddInventory(ctx, player.ID, item.ID, 1); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		log.Error(LogMsgStoreFailed, "op", "buy", "user_id", player.ID, "error", err)
		return nil, err
	}

	log.Info(LogMsgItemPurchased, "user_id", player.ID, "item", item.Name, "price", item.Price)
	s.publish(ctx, event.NewItemBoughtEvent(player.ID, *item))

	return &PurchaseResult{Item: *item, Balance: balance, Quantity: 1}, nil
}

// Inventory lists the items a player owns
func (s *service) Inventory(ctx context.Context, player domain.Player) ([]domain.InventoryItem, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.GetInventory(ctx, player.ID)
}
