package bootstrap

import (
	"fmt"

	"github.com/osse101/CasinoBot_Go/internal/casino"
	"github.com/osse101/CasinoBot_Go/internal/config"
	"github.com/osse101/CasinoBot_Go/internal/cooldown"
	"github.com/osse101/CasinoBot_Go/internal/duel"
	"github.com/osse101/CasinoBot_Go/internal/economy"
	"github.com/osse101/CasinoBot_Go/internal/event"
	"github.com/osse101/CasinoBot_Go/internal/payout"
	"github.com/osse101/CasinoBot_Go/internal/random"
	"github.com/osse101/CasinoBot_Go/internal/repository"
)

// Services holds the command backends shared by the HTTP and Discord surfaces
type Services struct {
	Store   repository.Store
	Casino  casino.Service
	Economy economy.Service
	Duels   *duel.Manager
}

// InitializeServices wires the services over one store, one seeded random
// source and one publisher
func InitializeServices(cfg *config.Config, store repository.Store, publisher event.Publisher) (*Services, error) {
	src, err := random.New()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedInitRandom, err)
	}
	return NewServices(cfg, store, src, publisher), nil
}

// NewServices wires the services over an explicit random source
func NewServices(cfg *config.Config, store repository.Store, src random.Source, publisher event.Publisher) *Services {
	engine := payout.NewEngine(src)

	return &Services{
		Store:  store,
		Casino: casino.NewService(store, engine, publisher, cfg.StoreTimeout),
		Economy: economy.NewService(store, src, publisher, economy.Config{
			StoreTimeout:   cfg.StoreTimeout,
			LeaderboardTTL: cfg.LeaderboardCacheTTL,
			Cooldown:       cooldown.Config{DevMode: cfg.DevMode},
		}),
		Duels: duel.NewManager(store, engine, publisher, duel.Config{
			TTL:          cfg.DuelTTL,
			StoreTimeout: cfg.StoreTimeout,
		}),
	}
}
