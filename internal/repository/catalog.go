package repository

import (
	"context"

	"github.com/osse101/BattleArena_Go/internal/domain"
)

// Catalog defines the interface for item catalog persistence.
// Names are matched case-insensitively.
type Catalog interface {
	GetAllItems(ctx context.Context) ([]domain.Item, error)
	// GetItemByName returns domain.ErrItemNotFound when no item matches
	GetItemByName(ctx context.Context, name string) (*domain.Item, error)
	InsertItem(ctx context.Context, item *domain.Item) (int, error)
	// UpdateItem overwrites the attributes of the item with the same name
	UpdateItem(ctx context.Context, item *domain.Item) error
	CountItems(ctx context.Context) (int, error)

	// Sync metadata operations
	GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error)
	UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error

	Ping(ctx context.Context) error
}
