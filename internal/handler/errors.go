package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPathParam      = "Missing %s path parameter"

	ErrMsgStartBattleFailed = "Failed to start battle"
	ErrMsgGetBattleFailed   = "Failed to get battle"
)

// User-facing error messages derived from domain errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgItemNotFoundError   = "Item not found"
	ErrMsgBattleNotFoundError = "Battle not found"
	ErrMsgSlotsExceededError  = "A unit cannot carry items using more than 2 slots"
	ErrMsgArmyFullError       = "An army holds at most 5 units"
	ErrMsgArmyEmptyError      = "Each army needs at least one unit"
	ErrMsgUnitNameError       = "Unit names must be 1 to 100 characters"
	ErrMsgTooManyItemsError   = "A unit carries at most 2 items"
)

// Log messages
const (
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgDecodeFailed      = "Failed to decode %s request"
	LogMsgRequestDecoded    = "%s request decoded"
	LogMsgServiceCallFailed = "%s failed"
	LogMsgBattleStarted     = "Battle started via API"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
)
