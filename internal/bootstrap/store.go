package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/CasinoBot_Go/internal/config"
	"github.com/osse101/CasinoBot_Go/internal/database"
	"github.com/osse101/CasinoBot_Go/internal/database/postgres"
	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/ledger"
	"github.com/osse101/CasinoBot_Go/internal/repository"
)

// InitializeStore opens the configured account store. For PostgreSQL it
// applies pending migrations and syncs the shop catalog before returning.
// The returned close func releases the backend and is never nil.
func InitializeStore(ctx context.Context, cfg *config.Config) (repository.Store, func(), error) {
	if !cfg.UsePostgres() {
		slog.Info(LogMsgUsingMemoryStore)
		return ledger.NewMemoryStore(domain.DefaultShopItems), func() {}, nil
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedRunMigrations, err)
	}

	store := postgres.NewStore(pool)
	if err := SyncShopCatalog(ctx, store); err != nil {
		pool.Close()
		return nil, nil, err
	}

	slog.Info(LogMsgUsingPostgresStore, "host", cfg.DBHost, "db", cfg.DBName)
	return store, pool.Close, nil
}

// CatalogSeeder upserts shop items
type CatalogSeeder interface {
	SeedShopItems(ctx context.Context, items []domain.ShopItem) error
}

// SyncShopCatalog writes the built-in catalog so prices and descriptions
// follow the running release
func SyncShopCatalog(ctx context.Context, seeder CatalogSeeder) error {
	if err := seeder.SeedShopItems(ctx, domain.DefaultShopItems); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncShopCatalog, err)
	}
	slog.Info(LogMsgShopCatalogSynced, "items", len(domain.DefaultShopItems))
	return nil
}
