package metrics

import (
	"context"

	"github.com/osse101/CasinoBot_Go/internal/event"
	"github.com/osse101/CasinoBot_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.GamePlayed,
		event.DailyClaimed,
		event.Transfer,
		event.ItemBought,
		event.MessageEarned,
		event.ReactionEarned,
		event.DuelProposed,
		event.DuelResolved,
		event.DuelDeclined,
		event.DuelExpired,
		event.LevelUp,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.GamePlayed:
		var p event.GamePlayedPayloadV1
		if p, err = event.DecodePayload[event.GamePlayedPayloadV1](evt.Payload); err == nil {
			GamesPlayed.WithLabelValues(p.Game, gameResult(p.Delta)).Inc()
			PointsWagered.WithLabelValues(p.Game).Add(float64(p.Stake))
			HouseNet.WithLabelValues(p.Game).Sub(float64(p.Delta))
		}

	case event.DailyClaimed:
		var p event.DailyClaimedPayloadV1
		if p, err = event.DecodePayload[event.DailyClaimedPayloadV1](evt.Payload); err == nil {
			DailyClaims.Inc()
			PointsIssued.WithLabelValues(SourceDaily).Add(float64(p.Bonus))
		}

	case event.MessageEarned, event.ReactionEarned:
		var p event.ActivityPayloadV1
		if p, err = event.DecodePayload[event.ActivityPayloadV1](evt.Payload); err == nil {
			source := SourceMessage
			if evt.Type == event.ReactionEarned {
				source = SourceReaction
			}
			PointsIssued.WithLabelValues(source).Add(float64(p.Points))
		}

	case event.Transfer:
		Transfers.Inc()

	case event.ItemBought:
		var p event.ItemBoughtPayloadV1
		if p, err = event.DecodePayload[event.ItemBoughtPayloadV1](evt.Payload); err == nil {
			ItemsBought.WithLabelValues(p.ItemName).Inc()
		}

	case event.DuelProposed, event.DuelResolved, event.DuelDeclined, event.DuelExpired:
		var p event.DuelPayloadV1
		if p, err = event.DecodePayload[event.DuelPayloadV1](evt.Payload); err == nil {
			DuelTransitions.WithLabelValues(string(evt.Type), p.Kind).Inc()
			if evt.Type == event.DuelProposed {
				DuelsPending.Inc()
			} else {
				DuelsPending.Dec()
			}
		}

	case event.LevelUp:
		LevelUps.Inc()
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadUndecodable, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func gameResult(delta int64) string {
	switch {
	case delta > 0:
		return ResultWin
	case delta < 0:
		return ResultLoss
	default:
		return ResultPush
	}
}
