package event

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/osse101/BattleArena_Go/internal/logger"
)

// JournalWriter appends events to a JSON-lines file, one entry per line
type JournalWriter struct {
	w     io.Writer
	close func() error
	mu    sync.Mutex
}

// JournalEntry is one line of the journal
type JournalEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
}

// NewJournalWriter opens path in append mode, creating it when missing
func NewJournalWriter(path string) (*JournalWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, JournalFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal %s: %w", path, err)
	}
	return &JournalWriter{w: f, close: f.Close}, nil
}

// NewJournalWriterTo writes entries to w; Close is a no-op
func NewJournalWriterTo(w io.Writer) *JournalWriter {
	return &JournalWriter{w: w, close: func() error { return nil }}
}

// Write appends one event to the journal
func (j *JournalWriter) Write(event Event) error {
	data, err := json.Marshal(JournalEntry{
		SchemaVersion: JournalSchemaVersion,
		Timestamp:     time.Now().UTC(),
		Event:         event,
	})
	if err != nil {
		return fmt.Errorf("failed to encode journal entry: %w", err)
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	_, err = j.w.Write(append(data, '\n'))
	return err
}

// Handle is an event Handler that journals every event it receives
func (j *JournalWriter) Handle(ctx context.Context, event Event) error {
	if err := j.Write(event); err != nil {
		logger.FromContext(ctx).Warn(LogMsgJournalWriteFailed,
			"event_type", event.Type,
			"error", err)
		return err
	}
	return nil
}

// Close closes the journal file
func (j *JournalWriter) Close() error {
	return j.close()
}
