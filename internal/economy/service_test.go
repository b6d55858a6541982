package economy

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CasinoBot_Go/internal/cooldown"
	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/event"
	"github.com/osse101/CasinoBot_Go/internal/ledger"
	"github.com/osse101/CasinoBot_Go/internal/random"
	"github.com/osse101/CasinoBot_Go/internal/repository"
)

var (
	alice = domain.Player{ID: "alice", Name: "Alice"}
	bob   = domain.Player{ID: "bob", Name: "Bob"}
	robot = domain.Player{ID: "robot", Bot: true}
	house = domain.Player{ID: domain.HouseAccountID}
)

type fixture struct {
	svc   *service
	store repository.Store
	pub   *MockPublisher
	seq   *random.Sequence
	clock time.Time
}

func newFixture(t *testing.T, store repository.Store, draws ...float64) *fixture {
	t.Helper()
	if store == nil {
		store = ledger.NewMemoryStore(domain.DefaultShopItems)
	}
	pub := &MockPublisher{}
	pub.On("PublishWithRetry", mock.Anything, mock.Anything).Return()
	seq := random.NewSequence(draws...)

	f := &fixture{
		store: store,
		pub:   pub,
		seq:   seq,
		clock: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	f.svc = NewService(store, seq, pub, Config{}).(*service)
	f.svc.now = func() time.Time { return f.clock }
	return f
}

func TestDaily_FirstClaim(t *testing.T) {
	f := newFixture(t, nil, 0.0)
	ctx := context.Background()

	res, err := f.svc.Daily(ctx, alice)
	require.NoError(t, err)

	// 100 base + 0 roll + level 1 * 10
	assert.Equal(t, int64(110), res.Bonus)
	assert.Equal(t, int64(1110), res.Balance)
	assert.Equal(t, domain.DailyExperience, res.Experience)
	assert.Equal(t, 1, res.Level)
	assert.False(t, res.LeveledUp)

	acc, err := f.store.GetAccount(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, f.clock.Equal(acc.LastDailyClaim))
	assert.Equal(t, []event.Type{event.DailyClaimed}, f.pub.Types())
}

func TestDaily_CooldownBoundaries(t *testing.T) {
	f := newFixture(t, nil, 0.5, 0.5)
	ctx := context.Background()

	_, err := f.svc.Daily(ctx, alice)
	require.NoError(t, err)
	balance, err := f.store.GetBalance(ctx, "alice")
	require.NoError(t, err)

	f.clock = f.clock.Add(86399999 * time.Millisecond)
	_, err = f.svc.Daily(ctx, alice)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOnCooldown)

	var cd cooldown.ErrOnCooldown
	require.True(t, errors.As(err, &cd))
	assert.Equal(t, time.Millisecond, cd.Remaining)

	after, err := f.store.GetBalance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, balance, after, "a rejected claim must not credit")

	f.clock = f.clock.Add(time.Millisecond)
	_, err = f.svc.Daily(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, 2, f.seq.Consumed())
}

func TestDaily_LevelUp(t *testing.T) {
	f := newFixture(t, nil, 0.0)
	ctx := context.Background()

	xp := int64(90)
	require.NoError(t, f.store.UpdateProfile(ctx, "alice", domain.ProfileUpdate{Experience: &xp}))

	res, err := f.svc.Daily(ctx, alice)
	require.NoError(t, err)
	assert.True(t, res.LeveledUp)
	assert.Equal(t, 2, res.Level)
	assert.Equal(t, int64(115), res.Experience)
	assert.Equal(t, []event.Type{event.DailyClaimed, event.LevelUp}, f.pub.Types())
}

func TestDaily_RejectsBots(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.svc.Daily(context.Background(), robot)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestDaily_ConcurrentClaimsPayOnce(t *testing.T) {
	const claimers = 20
	f := newFixture(t, nil)
	f.svc.src = random.NewSeeded(1, 2)
	ctx := context.Background()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		bonus     int64
		rejected  int
	)
	for range claimers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := f.svc.Daily(ctx, alice)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
				bonus = res.Bonus
			case errors.Is(err, domain.ErrOnCooldown):
				rejected++
			default:
				t.Errorf("unexpected daily error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, claimers-1, rejected)

	balance, err := f.store.GetBalance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.StartingPoints+bonus, balance)
}

func TestPay(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	res, err := f.svc.Pay(ctx, alice, bob, 250)
	require.NoError(t, err)
	assert.Equal(t, int64(750), res.FromBalance)
	assert.Equal(t, int64(1250), res.ToBalance)
	assert.Equal(t, []event.Type{event.Transfer}, f.pub.Types())
}

func TestPay_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.Player
		to      domain.Player
		amount  int64
		wantErr error
	}{
		{"below minimum", alice, bob, 199, domain.ErrInvalidArgument},
		{"self transfer", alice, alice, 500, domain.ErrInvalidArgument},
		{"to bot", alice, robot, 500, domain.ErrInvalidArgument},
		{"to house", alice, house, 500, domain.ErrInvalidArgument},
		{"more than balance", alice, bob, 1001, domain.ErrInsufficientFunds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			ctx := context.Background()

			_, err := f.svc.Pay(ctx, tt.from, tt.to, tt.amount)
			assert.ErrorIs(t, err, tt.wantErr)

			for _, id := range []string{"alice", "bob"} {
				balance, err := f.store.GetBalance(ctx, id)
				require.NoError(t, err)
				assert.Equal(t, domain.StartingPoints, balance)
			}
			assert.Empty(t, f.pub.Types())
		})
	}
}

func TestLeaderboard_Cached(t *testing.T) {
	store := &MockStore{Store: ledger.NewMemoryStore(nil)}
	entries := []domain.LeaderboardEntry{{Rank: 1, UserID: "alice", Points: 5000}}
	store.On("TopAccounts", mock.Anything, domain.LeaderboardSize).Return(entries, nil).Once()

	f := newFixture(t, store)
	ctx := context.Background()

	first, err := f.svc.Leaderboard(ctx)
	require.NoError(t, err)
	second, err := f.svc.Leaderboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, entries, first)
	assert.Equal(t, entries, second)
	store.AssertNumberOfCalls(t, "TopAccounts", 1)
}

func TestLeaderboard_ExcludesHouse(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.store.ApplyDelta(ctx, domain.HouseAccountID, 100000)
	require.NoError(t, err)
	_, err = f.store.ApplyDelta(ctx, "bob", 10)
	require.NoError(t, err)

	board, err := f.svc.Leaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.Equal(t, "bob", board[0].UserID)
}

func TestBuy(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.store.ApplyDelta(ctx, "alice", 4500)
	require.NoError(t, err)

	res, err := f.svc.Buy(ctx, alice, 1)
	require.NoError(t, err)
	assert.Equal(t, "Lucky Charm", res.Item.Name)
	assert.Equal(t, int64(500), res.Balance)

	_, err = f.svc.Buy(ctx, alice, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	_, err = f.svc.Buy(ctx, alice, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	inv, err := f.svc.Inventory(ctx, alice)
	require.NoError(t, err)
	require.Len(t, inv, 1)
	assert.Equal(t, 1, inv[0].Quantity)
	assert.Equal(t, []event.Type{event.ItemBought}, f.pub.Types())
}

func TestRecordMessage(t *testing.T) {
	tests := []struct {
		name   string
		author domain.Player
		draws  []float64
		want   int64
	}{
		{"roll hits lowest reward", alice, []float64{0.0, 0.0}, 1},
		{"roll hits highest reward", alice, []float64{0.49, 0.99}, 5},
		{"roll misses", alice, []float64{0.5}, 0},
		{"bot author ignored", robot, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil, tt.draws...)
			ctx := context.Background()

			got, err := f.svc.RecordMessage(ctx, tt.author)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.draws), f.seq.Consumed())

			if !tt.author.Bot {
				balance, err := f.store.GetBalance(ctx, tt.author.ID)
				require.NoError(t, err)
				assert.Equal(t, domain.StartingPoints+tt.want, balance)
			}
		})
	}
}

func TestRecordReaction(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	got, err := f.svc.RecordReaction(ctx, bob, alice)
	require.NoError(t, err)
	assert.Equal(t, domain.ReactionReward, got)

	got, err = f.svc.RecordReaction(ctx, alice, alice)
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = f.svc.RecordReaction(ctx, robot, alice)
	require.NoError(t, err)
	assert.Zero(t, got)

	balance, err := f.store.GetBalance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.StartingPoints+1, balance)
}

func TestRecordReaction_StoreFailure(t *testing.T) {
	store := &MockStore{Store: ledger.NewMemoryStore(nil)}
	store.On("ApplyDelta", mock.Anything, "alice", domain.ReactionReward).Return(int64(0), domain.ErrUnavailable)

	f := newFixture(t, store)
	_, err := f.svc.RecordReaction(context.Background(), bob, alice)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
	assert.Empty(t, f.pub.Types())
}
