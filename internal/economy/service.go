// Package economy owns every balance movement that is not a game: the daily bonus,
// transfers, shop purchases and passive earning from chat activity.
package economy

import (
	"context"
	"time"

	"github.com/osse101/CasinoBot_Go/internal/cooldown"
	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/event"
	"github.com/osse101/CasinoBot_Go/internal/random"
	"github.com/osse101/CasinoBot_Go/internal/repository"
)

// DailyResult is what a successful daily claim reports
type DailyResult struct {
	Bonus      int64     `json:"bonus"`
	Balance    int64     `json:"balance"`
	Experience int64     `json:"experience"`
	Level      int       `json:"level"`
	LeveledUp  bool      `json:"leveled_up"`
	ClaimedAt  time.Time `json:"claimed_at"`
}

// TransferResult reports both balances after a transfer
type TransferResult struct {
	FromUserID  string `json:"from_user_id"`
	ToUserID    string `json:"to_user_id"`
	Amount      int64  `json:"amount"`
	FromBalance int64  `json:"from_balance"`
	ToBalance   int64  `json:"to_balance"`
}

// PurchaseResult reports a shop purchase
type PurchaseResult struct {
	Item     domain.ShopItem `json:"item"`
	Balance  int64           `json:"balance"`
	Quantity int             `json:"quantity"`
}

// Service defines the interface for economy operations
type Service interface {
	Balance(ctx context.Context, player domain.Player) (int64, error)
	Profile(ctx context.Context, userID string) (*domain.Account, error)
	Daily(ctx context.Context, player domain.Player) (*DailyResult, error)
	Pay(ctx context.Context, from, to domain.Player, amount int64) (*TransferResult, error)
	Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
	Shop(ctx context.Context) ([]domain.ShopItem, error)
	Buy(ctx context.Context, player domain.Player, itemID int) (*PurchaseResult, error)
	Inventory(ctx context.Context, player domain.Player) ([]domain.InventoryItem, error)
	RecordMessage(ctx context.Context, author domain.Player) (int64, error)
	RecordReaction(ctx context.Context, reactor, author domain.Player) (int64, error)
}

// Config holds economy service settings
type Config struct {
	StoreTimeout   time.Duration
	LeaderboardTTL time.Duration
	Cooldown       cooldown.Config
}

type service struct {
	store     repository.Store
	policy    *cooldown.Policy
	src       random.Source
	publisher event.Publisher
	board     *leaderboardCache
	timeout   time.Duration
	now       func() time.Time
}

// NewService creates a new economy service. A nil publisher disables events.
func NewService(store repository.Store, src random.Source, publisher event.Publisher, cfg Config) Service {
	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = domain.DefaultStoreTimeout
	}
	if cfg.LeaderboardTTL <= 0 {
		cfg.LeaderboardTTL = DefaultLeaderboardTTL
	}
	return &service{
		store:     store,
		policy:    cooldown.NewPolicy(cfg.Cooldown),
		src:       src,
		publisher: publisher,
		board:     newLeaderboardCache(LeaderboardCacheSize, cfg.LeaderboardTTL),
		timeout:   cfg.StoreTimeout,
		now:       time.Now,
	}
}

func (s *service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, evt)
	}
}

// Balance returns the player's points, creating the account on first sight
func (s *service) Balance(ctx context.Context, player domain.Player) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.GetBalance(ctx, player.ID)
}

// Profile returns the full account of any user
func (s *service) Profile(ctx context.Context, userID string) (*domain.Account, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.GetAccount(ctx, userID)
}
