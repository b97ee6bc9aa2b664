package catalog

// ==================== Configuration File Names ====================

const (
	// ConfigFileName is the sync metadata key for the catalog file
	ConfigFileName = "items.json"

	// SchemaFileName is the embedded schema the catalog file is checked against
	SchemaFileName = "schemas/items.schema.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgStatConfigFileFailed = "failed to stat config file: %w"
	ErrMsgReadForHashFailed    = "failed to read config file: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// Repository operation error messages
const (
	ErrMsgCheckFileChangeFailed  = "failed to check if file changed: %w"
	ErrMsgGetExistingItemsFailed = "failed to get existing items: %w"
	ErrMsgUpdateItemFailed       = "failed to update item '%s': %w"
	ErrMsgInsertItemFailed       = "failed to insert item '%s': %w"
	ErrMsgLoadStoredItemsFailed  = "failed to load stored items: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgConfigUnchanged      = "Items config file unchanged, skipping sync"
	LogMsgSyncCompleted        = "Items sync completed"
	LogMsgUpdatedItem          = "Updated item"
	LogMsgInsertedItem         = "Inserted item"
	LogMsgUpdateMetadataFailed = "Failed to update sync metadata"
	LogMsgCatalogLoaded        = "Item catalog loaded"
)

// ==================== Format Strings for Error Construction ====================

const (
	ErrFmtItemAtIndexEmpty  = "%w: item at index %d has empty name"
	ErrFmtItemNameTooLong   = "%w: item '%s' name exceeds %d characters"
	ErrFmtItemNegativeField = "%w: item '%s' has negative %s"
	ErrFmtDuplicateItem     = "%w: '%s'"
)
