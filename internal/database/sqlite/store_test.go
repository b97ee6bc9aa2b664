package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BattleArena_Go/internal/catalog"
	"github.com/osse101/BattleArena_Go/internal/domain"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open(context.Background(), "   ")
	assert.ErrorContains(t, err, "storage path is required")
}

func TestOpen_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	store, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = store.InsertItem(ctx, &domain.Item{Name: "Sword", Attack: 20, Slots: 1})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// migrations are not reapplied and data survives
	store, err = Open(ctx, path)
	require.NoError(t, err)
	defer store.Close()

	count, err := store.CountItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStore_Close_Nil(t *testing.T) {
	var s *Store
	assert.NoError(t, s.Close())
}

func TestStore_Items(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)

	require.NoError(t, store.Ping(ctx))

	sword := &domain.Item{Name: "Sword", Attack: 20, Defense: 0, Slots: 1, Range: 0, Radius: 0}
	bow := &domain.Item{Name: "Longbow", Attack: 15, Slots: 2, Range: 4, Radius: 1}

	id1, err := store.InsertItem(ctx, sword)
	require.NoError(t, err)
	id2, err := store.InsertItem(ctx, bow)
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	t.Run("lookup ignores case", func(t *testing.T) {
		got, err := store.GetItemByName(ctx, "LONGBOW")
		require.NoError(t, err)
		assert.True(t, bow.Equal(got))
	})

	t.Run("missing item", func(t *testing.T) {
		_, err := store.GetItemByName(ctx, "Trident")
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("duplicate name in other case", func(t *testing.T) {
		_, err := store.InsertItem(ctx, &domain.Item{Name: "sword"})
		assert.ErrorIs(t, err, domain.ErrItemExists)
	})

	t.Run("all items in insertion order", func(t *testing.T) {
		items, err := store.GetAllItems(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Sword", items[0].Name)
		assert.Equal(t, "Longbow", items[1].Name)
	})

	t.Run("update", func(t *testing.T) {
		require.NoError(t, store.UpdateItem(ctx, &domain.Item{Name: "sword", Attack: 25, Slots: 1}))

		got, err := store.GetItemByName(ctx, "Sword")
		require.NoError(t, err)
		assert.Equal(t, 25, got.Attack)
		assert.Equal(t, "Sword", got.Name)

		err = store.UpdateItem(ctx, &domain.Item{Name: "Trident"})
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	count, err := store.CountItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestStore_SyncMetadata(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)

	_, err := store.GetSyncMetadata(ctx, "items.json")
	assert.ErrorIs(t, err, domain.ErrSyncMetadataNotFound)

	modTime := time.Date(2024, 3, 1, 12, 0, 0, 123456000, time.UTC)
	meta := &domain.SyncMetadata{
		ConfigName:   "items.json",
		LastSyncTime: time.Now(),
		FileHash:     "abc",
		FileModTime:  modTime,
	}
	require.NoError(t, store.UpsertSyncMetadata(ctx, meta))

	got, err := store.GetSyncMetadata(ctx, "items.json")
	require.NoError(t, err)
	assert.Equal(t, "abc", got.FileHash)
	assert.True(t, got.FileModTime.Equal(modTime))

	meta.FileHash = "def"
	require.NoError(t, store.UpsertSyncMetadata(ctx, meta))
	got, err = store.GetSyncMetadata(ctx, "items.json")
	require.NoError(t, err)
	assert.Equal(t, "def", got.FileHash)
}

func TestStore_ConcurrentReads(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)
	_, err := store.InsertItem(ctx, &domain.Item{Name: "Axe", Attack: 25, Slots: 2})
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.GetItemByName(ctx, "axe"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent read failed: %v", err)
	}
}

func TestStore_CatalogSync(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)

	path := filepath.Join(t.TempDir(), catalog.ConfigFileName)
	data := `{"version": "1.0", "items": [
		{"name": "Sword", "att": 20, "def": 0, "slots": 1, "range": 0, "radius": 0},
		{"name": "Buckler", "att": 0, "def": 10, "slots": 1, "range": 0, "radius": 0}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	loader := catalog.NewLoader()
	cfg, err := loader.Load(path)
	require.NoError(t, err)

	result, err := loader.SyncToRepository(ctx, cfg, store, path)
	require.NoError(t, err)
	assert.Equal(t, 2, result.ItemsInserted)

	// unchanged file is skipped on the second run
	result, err = loader.SyncToRepository(ctx, cfg, store, path)
	require.NoError(t, err)
	assert.Zero(t, result.ItemsInserted)
	assert.Zero(t, result.ItemsUpdated)

	c, err := catalog.FromRepository(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	item, ok := c.Lookup("BUCKLER")
	require.True(t, ok)
	assert.Equal(t, 10, item.Defense)
}
