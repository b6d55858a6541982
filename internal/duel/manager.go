// Package duel runs player-versus-player challenges.
//
// A Manager owns every live session. One mutex guards all transitions and the
// expiry sweep. Accepting a challenge marks the session accepted under that mutex
// and then settles it in a single store transaction, so no other transition can
// touch a session while its stakes are in escrow.
package duel

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/event"
	"github.com/osse101/CasinoBot_Go/internal/logger"
	"github.com/osse101/CasinoBot_Go/internal/payout"
	"github.com/osse101/CasinoBot_Go/internal/repository"
)

// Service defines the interface for duel operations
type Service interface {
	Propose(ctx context.Context, creator domain.Player, opponent *domain.Player, stake int64, kind domain.DuelKind) (*domain.Duel, error)
	Accept(ctx context.Context, actor domain.Player, id uuid.UUID) (*domain.DuelResult, error)
	Decline(ctx context.Context, actor domain.Player, id uuid.UUID) (*domain.Duel, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Duel, error)
	Pending(ctx context.Context, userID string) []domain.Duel
	Sweep(ctx context.Context) int
}

// Config holds duel settings
type Config struct {
	TTL          time.Duration
	StoreTimeout time.Duration
}

// creatorKey identifies a session by who created it and when
type creatorKey struct {
	creatorID string
	createdAt int64
}

// Manager is the duel registry
type Manager struct {
	mu        sync.Mutex
	sessions  map[uuid.UUID]*domain.Duel
	byCreator map[creatorKey]uuid.UUID

	store     repository.Store
	engine    *payout.Engine
	publisher event.Publisher
	ttl       time.Duration
	timeout   time.Duration
	now       func() time.Time
}

var _ Service = (*Manager)(nil)

// NewManager creates an empty registry. A nil publisher disables events.
func NewManager(store repository.Store, engine *payout.Engine, publisher event.Publisher, cfg Config) *Manager {
	if cfg.TTL <= 0 {
		cfg.TTL = domain.DuelAcceptanceTTL
	}
	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = domain.DefaultStoreTimeout
	}
	return &Manager{
		sessions:  make(map[uuid.UUID]*domain.Duel),
		byCreator: make(map[creatorKey]uuid.UUID),
		store:     store,
		engine:    engine,
		publisher: publisher,
		ttl:       cfg.TTL,
		timeout:   cfg.StoreTimeout,
		now:       time.Now,
	}
}

func (m *Manager) publish(ctx context.Context, evt event.Event) {
	if m.publisher != nil {
		m.publisher.PublishWithRetry(ctx, evt)
	}
}

// Propose registers a challenge. A nil opponent makes it open to any playable user.
// No funds move until the challenge is accepted.
func (m *Manager) Propose(ctx context.Context, creator domain.Player, opponent *domain.Player, stake int64, kind domain.DuelKind) (*domain.Duel, error) {
	log := logger.FromContext(ctx)

	if !creator.Playable() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, domain.ErrMsgNotPlayable)
	}
	if opponent != nil {
		if opponent.ID == creator.ID {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, domain.ErrMsgSelfTarget)
		}
		if !opponent.Playable() {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, domain.ErrMsgNotPlayable)
		}
	}
	if stake < domain.MinPvPStake {
		return nil, fmt.Errorf("%w: "+ErrMsgMinimumStake, domain.ErrInvalidArgument, domain.MinPvPStake)
	}
	if _, ok := domain.ParseDuelKind(string(kind)); !ok {
		return nil, fmt.Errorf("%w: %s %q", domain.ErrInvalidArgument, domain.ErrMsgUnknownGameKind, kind)
	}

	parties := []string{creator.ID}
	if opponent != nil {
		parties = append(parties, opponent.ID)
	}
	if err := m.checkFunds(ctx, stake, parties...); err != nil {
		return nil, err
	}

	now := m.now()
	duel := &domain.Duel{
		ID:        uuid.New(),
		CreatorID: creator.ID,
		Kind:      kind,
		Stake:     stake,
		State:     domain.DuelStateProposed,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if opponent != nil {
		duel.OpponentID = opponent.ID
	}

	key := creatorKey{creatorID: creator.ID, createdAt: now.UnixNano()}

	m.mu.Lock()
	if _, exists := m.byCreator[key]; exists {
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, domain.ErrMsgDuelCollision)
	}
	m.sessions[duel.ID] = duel
	m.byCreator[key] = duel.ID
	snapshot := *duel
	m.mu.Unlock()

	log.Info(LogMsgDuelProposed, "duel_id", snapshot.ID, "creator", snapshot.CreatorID,
		"opponent", snapshot.OpponentID, "kind", snapshot.Kind, "stake", snapshot.Stake)
	m.publish(ctx, event.NewDuelEvent(event.DuelProposed, snapshot))

	return &snapshot, nil
}

func (m *Manager) checkFunds(ctx context.Context, stake int64, userIDs ...string) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	for _, id := range userIDs {
		balance, err := m.store.GetBalance(ctx, id)
		if err != nil {
			return err
		}
		if balance < stake {
			return fmt.Errorf("%w: "+ErrMsgBalanceLow, domain.ErrInsufficientFunds, id, balance, stake)
		}
	}
	return nil
}

// Accept pins the actor as opponent and settles the duel
func (m *Manager) Accept(ctx context.Context, actor domain.Player, id uuid.UUID) (*domain.DuelResult, error) {
	log := logger.FromContext(ctx)

	m.mu.Lock()
	duel, ok := m.sessions[id]
	if !ok || expired(duel, m.now()) {
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, domain.ErrMsgDuelNotFound)
	}
	if actor.ID == duel.CreatorID {
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", domain.ErrForbidden, domain.ErrMsgOwnDuel)
	}
	if !duel.Open() && actor.ID != duel.OpponentID {
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", domain.ErrForbidden, domain.ErrMsgNotDuelOpponent)
	}
	if !actor.Playable() {
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, domain.ErrMsgNotPlayable)
	}
	if duel.State != domain.DuelStateProposed {
		m.mu.Unlock()
		log.Warn(LogMsgDuelAcceptRejected, "duel_id", id, "actor", actor.ID, "state", duel.State)
		return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyResolved, domain.ErrMsgDuelInFlight)
	}

	wasOpen := duel.Open()
	duel.OpponentID = actor.ID
	duel.State = domain.DuelStateAccepted
	snapshot := *duel
	m.mu.Unlock()

	result, err := m.settle(ctx, snapshot)
	if err != nil {
		m.mu.Lock()
		duel.State = domain.DuelStateProposed
		if wasOpen {
			duel.OpponentID = ""
		}
		m.mu.Unlock()
		log.Warn(LogMsgDuelSettleFailed, "duel_id", id, "error", err)
		return nil, err
	}

	m.mu.Lock()
	m.removeLocked(duel)
	m.mu.Unlock()

	log.Info(LogMsgDuelResolved, "duel_id", id, "winner", result.WinnerID, "draw", result.IsDraw, "stake", snapshot.Stake)
	m.publish(ctx, event.NewDuelResolvedEvent(*result))

	return result, nil
}

// Decline removes a proposed session. Either party may decline; the creator
// declining cancels the challenge.
func (m *Manager) Decline(ctx context.Context, actor domain.Player, id uuid.UUID) (*domain.Duel, error) {
	m.mu.Lock()
	duel, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, domain.ErrMsgDuelNotFound)
	}
	if actor.ID != duel.CreatorID && (duel.Open() || actor.ID != duel.OpponentID) {
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", domain.ErrForbidden, domain.ErrMsgNotDuelParty)
	}
	if duel.State != domain.DuelStateProposed {
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyResolved, domain.ErrMsgDuelInFlight)
	}

	duel.State = domain.DuelStateDeclined
	m.removeLocked(duel)
	snapshot := *duel
	m.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgDuelDeclined, "duel_id", id, "actor", actor.ID)
	m.publish(ctx, event.NewDuelEvent(event.DuelDeclined, snapshot))

	return &snapshot, nil
}

// Get returns a snapshot of a live session
func (m *Manager) Get(ctx context.Context, id uuid.UUID) (*domain.Duel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	duel, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, domain.ErrMsgDuelNotFound)
	}
	snapshot := *duel
	return &snapshot, nil
}

// Pending lists the live sessions userID created or is challenged in, oldest first
func (m *Manager) Pending(ctx context.Context, userID string) []domain.Duel {
	m.mu.Lock()
	out := make([]domain.Duel, 0)
	for _, duel := range m.sessions {
		if duel.CreatorID == userID || duel.OpponentID == userID {
			out = append(out, *duel)
		}
	}
	m.mu.Unlock()

	slices.SortFunc(out, func(a, b domain.Duel) int {
		return cmp.Compare(a.CreatedAt.UnixNano(), b.CreatedAt.UnixNano())
	})
	return out
}

// Sweep expires proposed sessions past their acceptance window and returns how
// many it removed. Sessions being settled are left alone.
func (m *Manager) Sweep(ctx context.Context) int {
	now := m.now()

	m.mu.Lock()
	var swept []domain.Duel
	for _, duel := range m.sessions {
		if expired(duel, now) {
			duel.State = domain.DuelStateExpired
			m.removeLocked(duel)
			swept = append(swept, *duel)
		}
	}
	m.mu.Unlock()

	log := logger.FromContext(ctx)
	for _, duel := range swept {
		log.Info(LogMsgDuelExpired, "duel_id", duel.ID, "creator", duel.CreatorID)
		m.publish(ctx, event.NewDuelEvent(event.DuelExpired, duel))
	}
	if len(swept) > 0 {
		log.Info(LogMsgSweepCompleted, "expired", len(swept))
	}
	return len(swept)
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// expired reports whether a proposed session is past its acceptance window.
// Unswept expired sessions cannot be accepted.
func expired(duel *domain.Duel, now time.Time) bool {
	return duel.State == domain.DuelStateProposed && now.After(duel.ExpiresAt)
}

// removeLocked drops a session from both indexes. Caller holds m.mu.
func (m *Manager) removeLocked(duel *domain.Duel) {
	delete(m.sessions, duel.ID)
	delete(m.byCreator, creatorKey{creatorID: duel.CreatorID, createdAt: duel.CreatedAt.UnixNano()})
}
