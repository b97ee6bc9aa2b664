package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/BattleArena_Go/internal/config"
	"github.com/osse101/BattleArena_Go/internal/event"
	"github.com/osse101/BattleArena_Go/internal/metrics"
)

// EventSystem is the battle event bus and the subscribers it feeds
type EventSystem struct {
	Bus     *event.MemoryBus
	Journal *event.JournalWriter
}

// Close flushes and closes the journal, if one is open
func (s *EventSystem) Close() error {
	if s == nil || s.Journal == nil {
		return nil
	}
	return s.Journal.Close()
}

// InitializeEventSystem creates the event bus, registers the metrics
// collector and, when BATTLE_JOURNAL_PATH is set, the JSONL journal.
func InitializeEventSystem(cfg *config.Config) (*EventSystem, error) {
	bus := event.NewMemoryBus()

	metrics.NewEventMetricsCollector().Register(bus)
	slog.Debug(LogMsgMetricsCollectorRegistered)

	system := &EventSystem{Bus: bus}

	if cfg.JournalPath != "" {
		if dir := filepath.Dir(cfg.JournalPath); dir != "." {
			if err := os.MkdirAll(dir, DirPermission); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateJournalDir, err)
			}
		}
		journal, err := event.NewJournalWriter(cfg.JournalPath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenJournal, err)
		}
		event.SubscribeBattle(bus, journal.Handle)
		system.Journal = journal
		slog.Info(LogMsgJournalOpened, "path", cfg.JournalPath)
	}

	slog.Info(LogMsgEventSystemInitialized, "journal", system.Journal != nil)
	return system, nil
}
