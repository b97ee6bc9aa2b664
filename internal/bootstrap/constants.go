package bootstrap

const (
	// DirPermission is the standard permission for creating data directories
	DirPermission = 0755
)

// Log messages for startup
const (
	LogMsgStarting            = "Starting Battle Arena"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
)

// Catalog loading messages
const (
	LogMsgCatalogLoaded       = "Item catalog loaded"
	LogMsgSyncingItems        = "Syncing items from JSON config..."
	LogMsgItemsSynced         = "Items synced successfully"
	LogMsgCatalogFileMissing  = "Catalog file not found, using stored items"
	LogMsgMigrationsApplied   = "Catalog migrations applied"
	ErrMsgFailedLoadItems     = "failed to load items config"
	ErrMsgFailedSyncItems     = "failed to sync items to store"
	ErrMsgFailedOpenStore     = "failed to open catalog store"
	ErrMsgFailedReadCatalog   = "failed to read catalog from store"
	ErrMsgUnknownSource       = "unknown catalog source %q"
	ErrMsgFailedCreateDataDir = "failed to create data directory"
)

// Event system messages
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgJournalOpened              = "Battle journal opened"
	ErrMsgFailedCreateJournalDir     = "failed to create journal directory"
	ErrMsgFailedOpenJournal          = "failed to open battle journal"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgCloseFailed          = "Close failed"
)
