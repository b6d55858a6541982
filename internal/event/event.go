package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Casino event types
const (
	GamePlayed     Type = domain.EventTypeGamePlayed
	DailyClaimed   Type = domain.EventTypeDailyClaimed
	Transfer       Type = domain.EventTypeTransfer
	ItemBought     Type = domain.EventTypeItemBought
	MessageEarned  Type = domain.EventTypeMessageEarned
	ReactionEarned Type = domain.EventTypeReactionEarned
	DuelProposed   Type = domain.EventTypeDuelProposed
	DuelResolved   Type = domain.EventTypeDuelResolved
	DuelDeclined   Type = domain.EventTypeDuelDeclined
	DuelExpired    Type = domain.EventTypeDuelExpired
	LevelUp        Type = domain.EventTypeLevelUp
)

// Typed event payloads for type safety

// GamePlayedPayloadV1 is the typed payload for solo game events
type GamePlayedPayloadV1 struct {
	UserID     string  `json:"user_id"`
	Game       string  `json:"game"`
	Stake      int64   `json:"stake"`
	Multiplier float64 `json:"multiplier"`
	Delta      int64   `json:"delta"`
	Timestamp  int64   `json:"timestamp"`
}

// DailyClaimedPayloadV1 is the typed payload for daily bonus claims
type DailyClaimedPayloadV1 struct {
	UserID    string `json:"user_id"`
	Bonus     int64  `json:"bonus"`
	Level     int    `json:"level"`
	Timestamp int64  `json:"timestamp"`
}

// TransferPayloadV1 is the typed payload for point transfers
type TransferPayloadV1 struct {
	FromUserID string `json:"from_user_id"`
	ToUserID   string `json:"to_user_id"`
	Amount     int64  `json:"amount"`
	Timestamp  int64  `json:"timestamp"`
}

// ItemBoughtPayloadV1 is the typed payload for shop purchases
type ItemBoughtPayloadV1 struct {
	UserID    string `json:"user_id"`
	ItemID    int    `json:"item_id"`
	ItemName  string `json:"item_name"`
	Price     int64  `json:"price"`
	Timestamp int64  `json:"timestamp"`
}

// ActivityPayloadV1 is the typed payload for passive earning
type ActivityPayloadV1 struct {
	UserID    string `json:"user_id"`
	Points    int64  `json:"points"`
	Timestamp int64  `json:"timestamp"`
}

// DuelPayloadV1 is the typed payload for every duel transition
type DuelPayloadV1 struct {
	DuelID     string `json:"duel_id"`
	Kind       string `json:"kind"`
	Stake      int64  `json:"stake"`
	CreatorID  string `json:"creator_id"`
	OpponentID string `json:"opponent_id,omitempty"`
	WinnerID   string `json:"winner_id,omitempty"`
	IsDraw     bool   `json:"is_draw,omitempty"`
	Timestamp  int64  `json:"timestamp"`
}

// LevelUpPayloadV1 is the typed payload for level ups
type LevelUpPayloadV1 struct {
	UserID    string `json:"user_id"`
	OldLevel  int    `json:"old_level"`
	NewLevel  int    `json:"new_level"`
	Source    string `json:"source,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// Type-safe event constructors

func newEvent(t Type, payload interface{}) Event {
	return Event{Version: EventSchemaVersion, Type: t, Payload: payload}
}

// NewGamePlayedEvent creates a solo game event
func NewGamePlayedEvent(result domain.GameResult) Event {
	return newEvent(GamePlayed, GamePlayedPayloadV1{
		UserID:     result.UserID,
		Game:       string(result.Game),
		Stake:      result.Stake,
		Multiplier: result.Outcome.Multiplier,
		Delta:      result.Outcome.Delta,
		Timestamp:  time.Now().Unix(),
	})
}

// NewDailyClaimedEvent creates a daily bonus event
func NewDailyClaimedEvent(userID string, bonus int64, level int) Event {
	return newEvent(DailyClaimed, DailyClaimedPayloadV1{
		UserID:    userID,
		Bonus:     bonus,
		Level:     level,
		Timestamp: time.Now().Unix(),
	})
}

// NewTransferEvent creates a point transfer event
func NewTransferEvent(fromUserID, toUserID string, amount int64) Event {
	return newEvent(Transfer, TransferPayloadV1{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Amount:     amount,
		Timestamp:  time.Now().Unix(),
	})
}

// NewItemBoughtEvent creates a shop purchase event
func NewItemBoughtEvent(userID string, item domain.ShopItem) Event {
	return newEvent(ItemBought, ItemBoughtPayloadV1{
		UserID:    userID,
		ItemID:    item.ID,
		ItemName:  item.Name,
		Price:     item.Price,
		Timestamp: time.Now().Unix(),
	})
}

// NewActivityEvent creates a passive earning event of type MessageEarned or ReactionEarned
func NewActivityEvent(t Type, userID string, points int64) Event {
	return newEvent(t, ActivityPayloadV1{
		UserID:    userID,
		Points:    points,
		Timestamp: time.Now().Unix(),
	})
}

// NewDuelEvent creates a duel transition event
func NewDuelEvent(t Type, duel domain.Duel) Event {
	return newEvent(t, DuelPayloadV1{
		DuelID:     duel.ID.String(),
		Kind:       string(duel.Kind),
		Stake:      duel.Stake,
		CreatorID:  duel.CreatorID,
		OpponentID: duel.OpponentID,
		Timestamp:  time.Now().Unix(),
	})
}

// NewDuelResolvedEvent creates a duel resolution event
func NewDuelResolvedEvent(result domain.DuelResult) Event {
	evt := NewDuelEvent(DuelResolved, result.Duel)
	payload := evt.Payload.(DuelPayloadV1)
	payload.WinnerID = result.WinnerID
	payload.IsDraw = result.IsDraw
	evt.Payload = payload
	return evt
}

// NewLevelUpEvent creates a level up event
func NewLevelUpEvent(userID string, oldLevel, newLevel int, source string) Event {
	return newEvent(LevelUp, LevelUpPayloadV1{
		UserID:    userID,
		OldLevel:  oldLevel,
		NewLevel:  newLevel,
		Source:    source,
		Timestamp: time.Now().Unix(),
	})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// Publisher is what services publish through. Delivery failures never reach the caller.
type Publisher interface {
	PublishWithRetry(ctx context.Context, event Event)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously on the publishing goroutine
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
