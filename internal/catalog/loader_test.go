package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BattleArena_Go/internal/domain"
)

const objectCatalog = `{
	"version": "1.0",
	"description": "Test items",
	"items": [
		{"name": "Sword", "att": 20, "def": 0, "slots": 1, "range": 0, "radius": 0},
		{"name": "Buckler", "att": 2, "def": 4, "slots": 1, "range": 0, "radius": 0}
	]
}`

const arrayCatalog = `[
	{"name": "Spear", "att": 15, "def": 0, "slots": 1, "range": 1, "radius": 0}
]`

func TestItemLoader_Load(t *testing.T) {
	loader := NewLoader()

	t.Run("object form", func(t *testing.T) {
		config, err := loader.Load(createTempFile(t, objectCatalog))
		require.NoError(t, err)

		assert.Equal(t, "1.0", config.Version)
		require.Len(t, config.Items, 2)
		assert.Equal(t, domain.Item{Name: "Sword", Attack: 20, Slots: 1}, config.Items[0])
		assert.Equal(t, 4, config.Items[1].Defense)
	})

	t.Run("bare array form", func(t *testing.T) {
		config, err := loader.Load(createTempFile(t, arrayCatalog))
		require.NoError(t, err)

		require.Len(t, config.Items, 1)
		assert.Equal(t, "Spear", config.Items[0].Name)
		assert.Equal(t, 1, config.Items[0].Range)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/path.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read items config file")
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := loader.Load(createTempFile(t, `{invalid json}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse items config")
	})
}

func TestItemLoader_LoadBytes_Schema(t *testing.T) {
	loader := NewLoader()

	tests := []struct {
		name string
		data string
	}{
		{"missing radius", `[{"name": "Sword", "att": 20, "def": 0, "slots": 1, "range": 0}]`},
		{"missing name", `[{"att": 20, "def": 0, "slots": 1, "range": 0, "radius": 0}]`},
		{"negative defense", `[{"name": "Sword", "att": 20, "def": -1, "slots": 1, "range": 0, "radius": 0}]`},
		{"string attack", `[{"name": "Sword", "att": "20", "def": 0, "slots": 1, "range": 0, "radius": 0}]`},
		{"fractional range", `[{"name": "Sword", "att": 20, "def": 0, "slots": 1, "range": 0.5, "radius": 0}]`},
		{"empty name", `[{"name": "", "att": 20, "def": 0, "slots": 1, "range": 0, "radius": 0}]`},
		{"object without items", `{"version": "1.0"}`},
		{"scalar document", `42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.LoadBytes([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestItemLoader_Validate(t *testing.T) {
	loader := NewLoader()

	t.Run("valid config", func(t *testing.T) {
		err := loader.Validate(&Config{Items: sampleItems()})
		assert.NoError(t, err)
	})

	t.Run("nil config", func(t *testing.T) {
		err := loader.Validate(nil)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("empty items", func(t *testing.T) {
		err := loader.Validate(&Config{Items: []domain.Item{}})
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), ErrMsgNoItemsDefined)
	})

	t.Run("duplicate names", func(t *testing.T) {
		err := loader.Validate(&Config{Items: []domain.Item{{Name: "Axe"}, {Name: "aXe"}}})
		assert.ErrorIs(t, err, ErrDuplicateItem)
		assert.Contains(t, err.Error(), "aXe")
	})

	t.Run("invalid item", func(t *testing.T) {
		err := loader.Validate(&Config{Items: []domain.Item{{Name: "Axe", Slots: -1}}})
		assert.ErrorIs(t, err, ErrInvalidItem)
		assert.Contains(t, err.Error(), "slots")
	})
}

func TestItemLoader_Build(t *testing.T) {
	loader := NewLoader()

	config, err := loader.LoadBytes([]byte(objectCatalog))
	require.NoError(t, err)

	c, err := loader.Build(config)
	require.NoError(t, err)

	item, ok := c.Lookup("buckler")
	require.True(t, ok)
	assert.Equal(t, 2, item.Attack)

	_, err = loader.Build(&Config{})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestItemLoader_SyncToRepository(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader()
	byName := func(name string) interface{} {
		return mock.MatchedBy(func(item *domain.Item) bool { return item.Name == name })
	}

	t.Run("inserts updates and skips", func(t *testing.T) {
		config := &Config{Items: []domain.Item{
			{Name: "Sword", Attack: 20, Slots: 1},
			{Name: "Buckler", Attack: 2, Defense: 4, Slots: 1},
			{Name: "Spear", Attack: 15, Slots: 1, Range: 1},
		}}

		repo := new(MockRepository)
		repo.On("GetAllItems", ctx).Return([]domain.Item{
			{Name: "sword", Attack: 20, Slots: 1},
			{Name: "Buckler", Attack: 2, Defense: 4, Slots: 1},
		}, nil)
		repo.On("UpdateItem", ctx, byName("Sword")).Return(nil)
		repo.On("InsertItem", ctx, byName("Spear")).Return(3, nil)

		result, err := loader.SyncToRepository(ctx, config, repo, "")
		require.NoError(t, err)
		assert.Equal(t, &SyncResult{ItemsInserted: 1, ItemsUpdated: 1, ItemsSkipped: 1}, result)
		repo.AssertExpectations(t)
		repo.AssertNotCalled(t, "GetSyncMetadata", mock.Anything, mock.Anything)
	})

	t.Run("insert failure", func(t *testing.T) {
		config := &Config{Items: []domain.Item{{Name: "Sword", Attack: 20, Slots: 1}}}

		repo := new(MockRepository)
		repo.On("GetAllItems", ctx).Return([]domain.Item{}, nil)
		repo.On("InsertItem", ctx, byName("Sword")).Return(0, errors.New("constraint"))

		_, err := loader.SyncToRepository(ctx, config, repo, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to insert item 'Sword'")
	})

	t.Run("invalid config is not synced", func(t *testing.T) {
		repo := new(MockRepository)

		_, err := loader.SyncToRepository(ctx, &Config{}, repo, "")
		assert.ErrorIs(t, err, ErrInvalidConfig)
		repo.AssertNotCalled(t, "GetAllItems", mock.Anything)
	})

	t.Run("first sync records metadata", func(t *testing.T) {
		path := createTempFile(t, arrayCatalog)
		config, err := loader.Load(path)
		require.NoError(t, err)

		repo := new(MockRepository)
		repo.On("GetSyncMetadata", ctx, ConfigFileName).Return(nil, errors.New("no rows"))
		repo.On("GetAllItems", ctx).Return([]domain.Item{}, nil)
		repo.On("InsertItem", ctx, byName("Spear")).Return(1, nil)
		repo.On("UpsertSyncMetadata", ctx, mock.MatchedBy(func(m *domain.SyncMetadata) bool {
			return m.ConfigName == ConfigFileName && m.FileHash == fileHash(t, path)
		})).Return(nil)

		result, err := loader.SyncToRepository(ctx, config, repo, path)
		require.NoError(t, err)
		assert.Equal(t, 1, result.ItemsInserted)
		repo.AssertExpectations(t)
	})

	t.Run("unchanged file is skipped", func(t *testing.T) {
		path := createTempFile(t, arrayCatalog)
		config, err := loader.Load(path)
		require.NoError(t, err)

		info, err := os.Stat(path)
		require.NoError(t, err)

		repo := new(MockRepository)
		repo.On("GetSyncMetadata", ctx, ConfigFileName).Return(&domain.SyncMetadata{
			ConfigName:  ConfigFileName,
			FileHash:    fileHash(t, path),
			FileModTime: info.ModTime(),
		}, nil)

		result, err := loader.SyncToRepository(ctx, config, repo, path)
		require.NoError(t, err)
		assert.Equal(t, &SyncResult{}, result)
		repo.AssertNotCalled(t, "GetAllItems", mock.Anything)
	})
}

func TestItemLoader_LoadActualConfig(t *testing.T) {
	loader := NewLoader()

	configPath := filepath.Join("..", "..", "configs", "items.json")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Skip("items.json not found, skipping")
	}

	config, err := loader.Load(configPath)
	require.NoError(t, err, "Should load actual config file")

	c, err := loader.Build(config)
	require.NoError(t, err, "Actual config should be valid")
	assert.Equal(t, 16, c.Len())

	for _, name := range []string{"Sword", "Tower Shield", "Longbow", "Catapult"} {
		_, ok := c.Lookup(name)
		assert.True(t, ok, "Expected item '%s' to exist", name)
	}
	for _, item := range c.Items() {
		assert.LessOrEqual(t, item.Slots, domain.MaxSlots, "item %s can never be equipped", item.Name)
	}
}

// Helper functions

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func fileHash(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
