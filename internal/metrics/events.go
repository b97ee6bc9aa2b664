package metrics

import (
	"context"

	"github.com/osse101/BattleArena_Go/internal/domain"
	"github.com/osse101/BattleArena_Go/internal/event"
	"github.com/osse101/BattleArena_Go/internal/logger"
)

// EventMetricsCollector subscribes to battle events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every battle lifecycle event
func (e *EventMetricsCollector) Register(bus event.Bus) {
	event.SubscribeBattle(bus, e.HandleEvent)
}

// HandleEvent processes events and updates metrics. Undecodable payloads
// are logged and skipped so metrics never fail a battle.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.BattleStarted:
		BattlesActive.Inc()

	case event.BattleRoundResolved:
		payload, err := event.DecodePayload[event.BattleRoundResolvedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		for _, rec := range payload.Damage {
			DamageDealt.WithLabelValues(rec.Side.String()).Add(float64(rec.Damage))
			ItemHits.WithLabelValues(rec.Item).Inc()
		}
		for _, c := range payload.Casualties {
			UnitsFallen.WithLabelValues(c.Side.String()).Inc()
		}

	case event.BattleFinished:
		BattlesActive.Dec()
		payload, err := event.DecodePayload[event.BattleFinishedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		BattlesTotal.WithLabelValues(outcomeLabel(payload)).Inc()
		BattleRounds.Observe(float64(payload.Rounds))
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func outcomeLabel(p event.BattleFinishedPayloadV1) string {
	if p.Outcome == domain.OutcomeContinue {
		return OutcomeRoundLimit
	}
	return p.Outcome.String()
}
