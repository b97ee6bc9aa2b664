package event

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BattleArena_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		if event.Type != eventType {
			t.Errorf("Expected event type %s, got %s", eventType, event.Type)
		}
		if event.Payload.(string) != "payload" {
			t.Errorf("Expected payload 'payload', got %v", event.Payload)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	calls := 0

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		calls++
		return errors.New("handler error")
	})
	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
	if calls != 2 {
		t.Errorf("Expected every handler to run, got %d calls", calls)
	}
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: "nobody_listens"}))
}

func TestSubscribeBattle(t *testing.T) {
	bus := NewMemoryBus()
	var seen []Type
	SubscribeBattle(bus, func(ctx context.Context, event Event) error {
		seen = append(seen, event.Type)
		return nil
	})

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, NewBattleStartedEvent("b1", nil, nil)))
	require.NoError(t, bus.Publish(ctx, NewBattleRoundResolvedEvent("b1", 1, domain.OutcomeContinue, nil, nil)))
	require.NoError(t, bus.Publish(ctx, NewBattleFinishedEvent(BattleFinishedPayloadV1{BattleID: "b1", Outcome: domain.OutcomeDraw})))

	assert.Equal(t, []Type{BattleStarted, BattleRoundResolved, BattleFinished}, seen)
}

func TestBattleEvents_Metadata(t *testing.T) {
	evt := NewBattleRoundResolvedEvent("abc", 3, domain.OutcomeArmy1Wins, nil, nil)

	assert.Equal(t, EventSchemaVersion, evt.Version)
	assert.Equal(t, "abc", evt.GetMetadataValue(MetadataKeyBattleID))
	assert.Nil(t, evt.GetMetadataValue("missing"))
	assert.Nil(t, Event{}.GetMetadataValue(MetadataKeyBattleID))
}

func TestDecodePayload(t *testing.T) {
	evt := NewBattleFinishedEvent(BattleFinishedPayloadV1{BattleID: "b7", Outcome: domain.OutcomeArmy2Wins, Rounds: 4})

	t.Run("in-process payload", func(t *testing.T) {
		p, err := DecodePayload[BattleFinishedPayloadV1](evt.Payload)
		require.NoError(t, err)
		assert.Equal(t, 4, p.Rounds)
	})

	t.Run("serialized payload", func(t *testing.T) {
		data, err := json.Marshal(evt)
		require.NoError(t, err)

		var decoded Event
		require.NoError(t, json.Unmarshal(data, &decoded))

		p, err := DecodePayload[BattleFinishedPayloadV1](decoded.Payload)
		require.NoError(t, err)
		assert.Equal(t, "b7", p.BattleID)
		assert.Equal(t, domain.OutcomeArmy2Wins, p.Outcome)
	})

	t.Run("pointer payload", func(t *testing.T) {
		p, err := DecodePayload[BattleFinishedPayloadV1](&BattleFinishedPayloadV1{Rounds: 9})
		require.NoError(t, err)
		assert.Equal(t, 9, p.Rounds)

		_, err = DecodePayload[BattleFinishedPayloadV1]((*BattleFinishedPayloadV1)(nil))
		assert.ErrorContains(t, err, "nil")
	})

	t.Run("mismatched payload", func(t *testing.T) {
		_, err := DecodePayload[BattleFinishedPayloadV1](map[string]any{"rounds": "many"})
		assert.ErrorContains(t, err, "BattleFinishedPayloadV1")
	})
}

func TestJournalWriter(t *testing.T) {
	t.Run("writes one line per event", func(t *testing.T) {
		var buf bytes.Buffer
		j := NewJournalWriterTo(&buf)

		require.NoError(t, j.Handle(context.Background(), NewBattleStartedEvent("b1", nil, nil)))
		require.NoError(t, j.Handle(context.Background(), NewBattleFinishedEvent(BattleFinishedPayloadV1{BattleID: "b1"})))
		require.NoError(t, j.Close())

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)

		var entry JournalEntry
		require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
		assert.Equal(t, JournalSchemaVersion, entry.SchemaVersion)
		assert.Equal(t, BattleFinished, entry.Event.Type)
		assert.False(t, entry.Timestamp.IsZero())
	})

	t.Run("appends to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "battles.jsonl")

		for i := 0; i < 2; i++ {
			j, err := NewJournalWriter(path)
			require.NoError(t, err)
			require.NoError(t, j.Write(NewBattleStartedEvent("b", nil, nil)))
			require.NoError(t, j.Close())
		}

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(string(data), "\n"))
	})

	t.Run("bad path", func(t *testing.T) {
		_, err := NewJournalWriter(filepath.Join(t.TempDir(), "missing", "battles.jsonl"))
		assert.Error(t, err)
	})
}
