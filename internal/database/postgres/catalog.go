package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BattleArena_Go/internal/domain"
	"github.com/osse101/BattleArena_Go/internal/repository"
)

// CatalogRepository implements repository.Catalog for PostgreSQL
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(pool *pgxpool.Pool) repository.Catalog {
	return &CatalogRepository{pool: pool}
}

const itemColumns = `item_name, attack, defense, slots, item_range, radius`

func scanItem(row pgx.Row) (*domain.Item, error) {
	var item domain.Item
	if err := row.Scan(&item.Name, &item.Attack, &item.Defense, &item.Slots, &item.Range, &item.Radius); err != nil {
		return nil, err
	}
	return &item, nil
}

// GetAllItems retrieves all items from the database
func (r *CatalogRepository) GetAllItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+itemColumns+` FROM items ORDER BY item_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItems, err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanItem, err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItems, err)
	}
	return items, nil
}

// GetItemByName retrieves an item by name, ignoring case
func (r *CatalogRepository) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE LOWER(item_name) = LOWER($1)`, name)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItem, err)
	}
	return item, nil
}

// InsertItem inserts a new item into the database
func (r *CatalogRepository) InsertItem(ctx context.Context, item *domain.Item) (int, error) {
	var id int32
	err := r.pool.QueryRow(ctx, `
		INSERT INTO items (item_name, attack, defense, slots, item_range, radius)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING item_id`,
		item.Name, item.Attack, item.Defense, item.Slots, item.Range, item.Radius,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return 0, fmt.Errorf("%w: %s", domain.ErrItemExists, item.Name)
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertItem, err)
	}
	return int(id), nil
}

// UpdateItem overwrites the attributes of the item with the same name
func (r *CatalogRepository) UpdateItem(ctx context.Context, item *domain.Item) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE items
		SET attack = $2, defense = $3, slots = $4, item_range = $5, radius = $6, updated_at = NOW()
		WHERE LOWER(item_name) = LOWER($1)`,
		item.Name, item.Attack, item.Defense, item.Slots, item.Range, item.Radius,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateItem, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, item.Name)
	}
	return nil
}

// CountItems returns the number of stored items
func (r *CatalogRepository) CountItems(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM items`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountItems, err)
	}
	return count, nil
}

// GetSyncMetadata retrieves sync metadata for a config file
func (r *CatalogRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	var meta domain.SyncMetadata
	err := r.pool.QueryRow(ctx, `
		SELECT config_name, last_sync_time, file_hash, file_mod_time
		FROM sync_metadata WHERE config_name = $1`,
		configName,
	).Scan(&meta.ConfigName, &meta.LastSyncTime, &meta.FileHash, &meta.FileModTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSyncMetadataNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSyncMetadata, err)
	}
	return &meta, nil
}

// UpsertSyncMetadata inserts or updates sync metadata for a config file
func (r *CatalogRepository) UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO sync_metadata (config_name, last_sync_time, file_hash, file_mod_time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (config_name) DO UPDATE SET
			last_sync_time = EXCLUDED.last_sync_time,
			file_hash = EXCLUDED.file_hash,
			file_mod_time = EXCLUDED.file_mod_time`,
		metadata.ConfigName, metadata.LastSyncTime, metadata.FileHash, metadata.FileModTime,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertSyncMetadata, err)
	}
	return nil
}

// Ping checks the connection pool
func (r *CatalogRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
