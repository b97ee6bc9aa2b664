package catalog

import (
	"bytes"
	"context"
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/osse101/BattleArena_Go/internal/domain"
	"github.com/osse101/BattleArena_Go/internal/logger"
	"github.com/osse101/BattleArena_Go/internal/repository"
	"github.com/osse101/BattleArena_Go/internal/validation"
)

//go:embed schemas/items.schema.json
var schemaFiles embed.FS

// ErrInvalidConfig marks a catalog file that cannot be used
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the decoded catalog file. The file is either a bare array
// of items or an object with an "items" array.
type Config struct {
	Version     string        `json:"version,omitempty"`
	Description string        `json:"description,omitempty"`
	Items       []domain.Item `json:"items"`
}

// Loader handles loading and validating the item catalog file
type Loader interface {
	Load(path string) (*Config, error)
	LoadBytes(data []byte) (*Config, error)
	Validate(config *Config) error
	Build(config *Config) (*Catalog, error)
	SyncToRepository(ctx context.Context, config *Config, repo repository.Catalog, configPath string) (*SyncResult, error)
}

// SyncResult contains the result of syncing items to a store
type SyncResult struct {
	ItemsInserted int
	ItemsUpdated  int
	ItemsSkipped  int
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader that checks files against the embedded schema
func NewLoader() Loader {
	return &itemLoader{
		schemaValidator: validation.NewSchemaValidator(schemaFiles),
	}
}

// Load reads, schema-checks and decodes a catalog file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	config, err := l.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// LoadBytes schema-checks and decodes catalog JSON
func (l *itemLoader) LoadBytes(data []byte) (*Config, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, fmt.Errorf("%w: malformed JSON", ErrInvalidConfig))
	}

	if err := l.schemaValidator.ValidateBytes(data, SchemaFileName); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var config Config
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &config.Items); err != nil {
			return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
		}
		return &config, nil
	}

	if err := json.Unmarshal(trimmed, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}
	return &config, nil
}

// Validate checks the decoded catalog for errors the schema cannot express
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	names := make(map[string]bool, len(config.Items))
	for i := range config.Items {
		item := &config.Items[i]

		if err := checkItem(i, item); err != nil {
			return err
		}

		key := foldName(item.Name)
		if names[key] {
			return fmt.Errorf(ErrFmtDuplicateItem, ErrDuplicateItem, item.Name)
		}
		names[key] = true
	}

	return nil
}

// Build validates the config and turns it into a Catalog
func (l *itemLoader) Build(config *Config) (*Catalog, error) {
	if err := l.Validate(config); err != nil {
		return nil, err
	}
	return New(config.Items)
}

// SyncToRepository imports the catalog into a store idempotently. When
// configPath is set and the file is unchanged since the last sync, the
// store is left alone.
func (l *itemLoader) SyncToRepository(ctx context.Context, config *Config, repo repository.Catalog, configPath string) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	if err := l.Validate(config); err != nil {
		return nil, err
	}

	if configPath != "" {
		hasChanged, err := hasFileChanged(ctx, repo, configPath)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgCheckFileChangeFailed, err)
		}

		if !hasChanged {
			log.Info(LogMsgConfigUnchanged, "path", configPath)
			return &SyncResult{}, nil
		}
	}

	existingItems, err := repo.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetExistingItemsFailed, err)
	}

	existingByName := make(map[string]*domain.Item, len(existingItems))
	for i := range existingItems {
		existingByName[foldName(existingItems[i].Name)] = &existingItems[i]
	}

	result := &SyncResult{}
	for i := range config.Items {
		if err := syncOneItem(ctx, repo, &config.Items[i], existingByName, result); err != nil {
			return nil, err
		}
	}

	if configPath != "" {
		if err := updateSyncMetadata(ctx, repo, configPath); err != nil {
			log.Warn(LogMsgUpdateMetadataFailed, "error", err)
		}
	}

	log.Info(LogMsgSyncCompleted,
		"inserted", result.ItemsInserted,
		"updated", result.ItemsUpdated,
		"skipped", result.ItemsSkipped)

	return result, nil
}

func syncOneItem(ctx context.Context, repo repository.Catalog, item *domain.Item, existingByName map[string]*domain.Item, result *SyncResult) error {
	log := logger.FromContext(ctx)

	existing, ok := existingByName[foldName(item.Name)]
	if !ok {
		id, err := repo.InsertItem(ctx, item)
		if err != nil {
			return fmt.Errorf(ErrMsgInsertItemFailed, item.Name, err)
		}
		result.ItemsInserted++
		log.Info(LogMsgInsertedItem, "name", item.Name, "id", id)
		return nil
	}

	if existing.Equal(item) {
		result.ItemsSkipped++
		return nil
	}

	if err := repo.UpdateItem(ctx, item); err != nil {
		return fmt.Errorf(ErrMsgUpdateItemFailed, item.Name, err)
	}
	result.ItemsUpdated++
	log.Info(LogMsgUpdatedItem, "name", item.Name)
	return nil
}

// hasFileChanged checks if the config file has changed since last sync
func hasFileChanged(ctx context.Context, repo repository.Catalog, configPath string) (bool, error) {
	modTime, fileHash, err := fingerprint(configPath)
	if err != nil {
		return false, err
	}

	syncMeta, err := repo.GetSyncMetadata(ctx, ConfigFileName)
	if err != nil {
		// First sync - no metadata exists
		return true, nil
	}

	return syncMeta.FileHash != fileHash || !syncMeta.FileModTime.Equal(modTime), nil
}

// updateSyncMetadata records the file fingerprint after a successful sync
func updateSyncMetadata(ctx context.Context, repo repository.Catalog, configPath string) error {
	modTime, fileHash, err := fingerprint(configPath)
	if err != nil {
		return err
	}

	return repo.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
		ConfigName:   ConfigFileName,
		LastSyncTime: time.Now(),
		FileHash:     fileHash,
		FileModTime:  modTime,
	})
}

func fingerprint(configPath string) (time.Time, string, error) {
	fileInfo, err := os.Stat(configPath)
	if err != nil {
		return time.Time{}, "", fmt.Errorf(ErrMsgStatConfigFileFailed, err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return time.Time{}, "", fmt.Errorf(ErrMsgReadForHashFailed, err)
	}

	// stores keep microseconds at most
	hash := sha256.Sum256(data)
	return fileInfo.ModTime().UTC().Truncate(time.Microsecond), hex.EncodeToString(hash[:]), nil
}
