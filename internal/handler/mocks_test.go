package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/economy"
	"github.com/osse101/CasinoBot_Go/internal/payout"
)

type MockCasinoService struct {
	mock.Mock
}

func (m *MockCasinoService) Play(ctx context.Context, player domain.Player, req payout.Request) (*domain.GameResult, error) {
	args := m.Called(ctx, player, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameResult), args.Error(1)
}

type MockEconomyService struct {
	mock.Mock
}

func (m *MockEconomyService) Balance(ctx context.Context, player domain.Player) (int64, error) {
	args := m.Called(ctx, player)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEconomyService) Profile(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockEconomyService) Daily(ctx context.Context, player domain.Player) (*economy.DailyResult, error) {
	args := m.Called(ctx, player)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.DailyResult), args.Error(1)
}

func (m *MockEconomyService) Pay(ctx context.Context, from, to domain.Player, amount int64) (*economy.TransferResult, error) {
	args := m.Called(ctx, from, to, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.TransferResult), args.Error(1)
}

func (m *MockEconomyService) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

func (m *MockEconomyService) Shop(ctx context.Context) ([]domain.ShopItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShopItem), args.Error(1)
}

func (m *MockEconomyService) Buy(ctx context.Context, player domain.Player, itemID int) (*economy.PurchaseResult, error) {
	args := m.Called(ctx, player, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.PurchaseResult), args.Error(1)
}

func (m *MockEconomyService) Inventory(ctx context.Context, player domain.Player) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, player)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockEconomyService) RecordMessage(ctx context.Context, author domain.Player) (int64, error) {
	args := m.Called(ctx, author)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEconomyService) RecordReaction(ctx context.Context, reactor, author domain.Player) (int64, error) {
	args := m.Called(ctx, reactor, author)
	return args.Get(0).(int64), args.Error(1)
}

type MockDuelService struct {
	mock.Mock
}

func (m *MockDuelService) Propose(ctx context.Context, creator domain.Player, opponent *domain.Player, stake int64, kind domain.DuelKind) (*domain.Duel, error) {
	args := m.Called(ctx, creator, opponent, stake, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Duel), args.Error(1)
}

func (m *MockDuelService) Accept(ctx context.Context, actor domain.Player, id uuid.UUID) (*domain.DuelResult, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DuelResult), args.Error(1)
}

func (m *MockDuelService) Decline(ctx context.Context, actor domain.Player, id uuid.UUID) (*domain.Duel, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Duel), args.Error(1)
}

func (m *MockDuelService) Get(ctx context.Context, id uuid.UUID) (*domain.Duel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Duel), args.Error(1)
}

func (m *MockDuelService) Pending(ctx context.Context, userID string) []domain.Duel {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Duel)
}

func (m *MockDuelService) Sweep(ctx context.Context) int {
	return m.Called(ctx).Int(0)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
