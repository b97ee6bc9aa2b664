package battle

// Log message constants
const (
	LogMsgBattleStarted      = "Battle started"
	LogMsgBattleFinished     = "Battle finished"
	LogMsgBattleAborted      = "Battle stopped before a decision"
	LogMsgRoundResolved      = "Round resolved"
	LogMsgEventPublishFailed = "Failed to publish battle event"
	LogMsgReportCached       = "Battle report stored"
)

// Error message formats
const (
	ErrMsgArmiesRequired  = "%w: both armies need at least one unit"
	ErrMsgRoundLimit      = "%w: no decision after %d rounds"
	ErrMsgBuildArmyFailed = "%w: %s: %w"
	ErrMsgRenderFailed    = "failed to render round %d: %w"
	ErrMsgRenderResult    = "failed to render result: %w"
)

// CacheSchemaVersion is the current version of the cached report layout.
// Increment this when Report changes to invalidate old entries.
const CacheSchemaVersion = "1.0"
