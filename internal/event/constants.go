package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"

	// JournalSchemaVersion is the current version of the journal line format.
	// Increment this when changing the JournalEntry structure.
	JournalSchemaVersion = "1.0"
)

// Journal file configuration
const (
	// JournalFilePermissions is the file permission mode for journal files
	JournalFilePermissions = 0644
)

// Log message constants
const (
	LogMsgJournalWriteFailed = "Failed to write event to journal"

	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)

// Payload decoding errors; the verb receives the zero target value
const (
	ErrMsgNilPayload    = "nil %T payload"
	ErrMsgDecodePayload = "decode %T payload: %w"
)
