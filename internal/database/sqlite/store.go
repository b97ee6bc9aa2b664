// Package sqlite provides a SQLite-backed item catalog store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/osse101/BattleArena_Go/internal/database/migrations"
	"github.com/osse101/BattleArena_Go/internal/domain"
	"github.com/osse101/BattleArena_Go/internal/repository"
)

// Store persists the item catalog in SQLite
type Store struct {
	sqlDB *sql.DB
}

var _ repository.Catalog = (*Store)(nil)

func toMicros(value time.Time) int64 {
	return value.UTC().UnixMicro()
}

func fromMicros(value int64) time.Time {
	return time.UnixMicro(value).UTC()
}

// Open opens a SQLite catalog store and applies embedded migrations
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := migrations.Up(ctx, sqlDB, migrations.SQLite); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Ping checks the database handle
func (s *Store) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

// GetAllItems returns every stored item ordered by id
func (s *Store) GetAllItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT item_name, attack, defense, slots, item_range, radius FROM items ORDER BY item_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get all items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.Name, &item.Attack, &item.Defense, &item.Slots, &item.Range, &item.Radius); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return items, nil
}

// GetItemByName looks an item up ignoring case
func (s *Store) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	var item domain.Item
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT item_name, attack, defense, slots, item_range, radius FROM items WHERE item_name = ? COLLATE NOCASE`,
		name,
	).Scan(&item.Name, &item.Attack, &item.Defense, &item.Slots, &item.Range, &item.Radius)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &item, nil
}

// InsertItem stores a new item and returns its id
func (s *Store) InsertItem(ctx context.Context, item *domain.Item) (int, error) {
	now := toMicros(time.Now())
	res, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO items (item_name, attack, defense, slots, item_range, radius, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		item.Name, item.Attack, item.Defense, item.Slots, item.Range, item.Radius, now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %s", domain.ErrItemExists, item.Name)
		}
		return 0, fmt.Errorf("failed to insert item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read item id: %w", err)
	}
	return int(id), nil
}

// UpdateItem overwrites the attributes of the item with the same name
func (s *Store) UpdateItem(ctx context.Context, item *domain.Item) error {
	res, err := s.sqlDB.ExecContext(ctx,
		`UPDATE items SET attack = ?, defense = ?, slots = ?, item_range = ?, radius = ?, updated_at = ?
		 WHERE item_name = ? COLLATE NOCASE`,
		item.Attack, item.Defense, item.Slots, item.Range, item.Radius, toMicros(time.Now()), item.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, item.Name)
	}
	return nil
}

// CountItems returns the number of stored items
func (s *Store) CountItems(ctx context.Context) (int, error) {
	var count int
	if err := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return count, nil
}

// GetSyncMetadata returns the last recorded import of a catalog file
func (s *Store) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	var (
		meta            domain.SyncMetadata
		lastSync, modAt int64
	)
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT config_name, last_sync_time, file_hash, file_mod_time FROM sync_metadata WHERE config_name = ?`,
		configName,
	).Scan(&meta.ConfigName, &lastSync, &meta.FileHash, &modAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSyncMetadataNotFound
		}
		return nil, fmt.Errorf("failed to get sync metadata: %w", err)
	}
	meta.LastSyncTime = fromMicros(lastSync)
	meta.FileModTime = fromMicros(modAt)
	return &meta, nil
}

// UpsertSyncMetadata records an import of a catalog file
func (s *Store) UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error {
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO sync_metadata (config_name, last_sync_time, file_hash, file_mod_time)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(config_name) DO UPDATE SET
		   last_sync_time = excluded.last_sync_time,
		   file_hash = excluded.file_hash,
		   file_mod_time = excluded.file_mod_time`,
		metadata.ConfigName, toMicros(metadata.LastSyncTime), metadata.FileHash, toMicros(metadata.FileModTime),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert sync metadata: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
