package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/BattleArena_Go/internal/domain"
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

// Battle lifecycle event types
const (
	BattleStarted       Type = "battle.started"
	BattleRoundResolved Type = "battle.round_resolved"
	BattleFinished      Type = "battle.finished"
)

// Metadata keys
const (
	MetadataKeyBattleID = "battle_id"
)

// Typed event payloads for type safety

// UnitSummaryV1 describes a unit as it entered the battle
type UnitSummaryV1 struct {
	Position int      `json:"position"`
	Name     string   `json:"name"`
	Items    []string `json:"items,omitempty"`
	HP       int      `json:"hp"`
}

// BattleStartedPayloadV1 is the typed payload for battle started events
type BattleStartedPayloadV1 struct {
	BattleID string          `json:"battle_id"`
	Army1    []UnitSummaryV1 `json:"army1"`
	Army2    []UnitSummaryV1 `json:"army2"`
}

// BattleRoundResolvedPayloadV1 is the typed payload for round resolved events
type BattleRoundResolvedPayloadV1 struct {
	BattleID   string                `json:"battle_id"`
	Round      int                   `json:"round"`
	Outcome    domain.Outcome        `json:"outcome"`
	Damage     []domain.DamageRecord `json:"damage"`
	Casualties []domain.Casualty     `json:"casualties,omitempty"`
}

// BattleFinishedPayloadV1 is the typed payload for battle finished events.
// Outcome stays OutcomeContinue when the battle hit the round limit.
type BattleFinishedPayloadV1 struct {
	BattleID   string         `json:"battle_id"`
	Outcome    domain.Outcome `json:"outcome"`
	Rounds     int            `json:"rounds"`
	Survivors1 int            `json:"survivors_army1"`
	Survivors2 int            `json:"survivors_army2"`
	Aborted    bool           `json:"aborted,omitempty"`
}

// Type-safe event constructors

func battleMetadata(battleID string) Metadata {
	return map[string]interface{}{
		MetadataKeyBattleID: battleID,
	}
}

// NewBattleStartedEvent creates a new battle started event
func NewBattleStartedEvent(battleID string, army1, army2 []UnitSummaryV1) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BattleStarted,
		Payload: BattleStartedPayloadV1{
			BattleID: battleID,
			Army1:    army1,
			Army2:    army2,
		},
		Metadata: battleMetadata(battleID),
	}
}

// NewBattleRoundResolvedEvent creates a new round resolved event
func NewBattleRoundResolvedEvent(battleID string, round int, outcome domain.Outcome, damage []domain.DamageRecord, casualties []domain.Casualty) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BattleRoundResolved,
		Payload: BattleRoundResolvedPayloadV1{
			BattleID:   battleID,
			Round:      round,
			Outcome:    outcome,
			Damage:     damage,
			Casualties: casualties,
		},
		Metadata: battleMetadata(battleID),
	}
}

// NewBattleFinishedEvent creates a new battle finished event
func NewBattleFinishedEvent(payload BattleFinishedPayloadV1) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     BattleFinished,
		Payload:  payload,
		Metadata: battleMetadata(payload.BattleID),
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
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

// Publish delivers an event to every subscriber synchronously. All
// handlers run even when some fail; their errors are joined.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

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

// SubscribeBattle subscribes handler to every battle lifecycle event
func SubscribeBattle(bus Bus, handler Handler) {
	for _, t := range []Type{BattleStarted, BattleRoundResolved, BattleFinished} {
		bus.Subscribe(t, handler)
	}
}
