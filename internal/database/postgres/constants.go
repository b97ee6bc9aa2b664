package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToGetItems           = "failed to get all items"
	ErrMsgFailedToGetItem            = "failed to get item"
	ErrMsgFailedToScanItem           = "failed to scan item"
	ErrMsgFailedToInsertItem         = "failed to insert item"
	ErrMsgFailedToUpdateItem         = "failed to update item"
	ErrMsgFailedToCountItems         = "failed to count items"
	ErrMsgFailedToGetSyncMetadata    = "failed to get sync metadata"
	ErrMsgFailedToUpsertSyncMetadata = "failed to upsert sync metadata"
)
