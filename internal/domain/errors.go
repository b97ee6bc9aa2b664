package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound         = "item not found"
	ErrMsgItemExists           = "item already exists"
	ErrMsgSyncMetadataNotFound = "sync metadata not found"

	// Unit errors
	ErrMsgSlotsExceeded   = "item slots exceeded"
	ErrMsgInvalidUnitName = "invalid unit name"
	ErrMsgTooManyItems    = "too many items"

	// Army errors
	ErrMsgArmyFull  = "army is full"
	ErrMsgArmyEmpty = "army is empty"

	// Battle errors
	ErrMsgRoundLimitReached = "round limit reached"
	ErrMsgBattleNotFound    = "battle not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound         = errors.New(ErrMsgItemNotFound)
	ErrItemExists           = errors.New(ErrMsgItemExists)
	ErrSyncMetadataNotFound = errors.New(ErrMsgSyncMetadataNotFound)

	ErrSlotsExceeded   = errors.New(ErrMsgSlotsExceeded)
	ErrInvalidUnitName = errors.New(ErrMsgInvalidUnitName)
	ErrTooManyItems    = errors.New(ErrMsgTooManyItems)

	ErrArmyFull  = errors.New(ErrMsgArmyFull)
	ErrArmyEmpty = errors.New(ErrMsgArmyEmpty)

	ErrRoundLimitReached = errors.New(ErrMsgRoundLimitReached)
	ErrBattleNotFound    = errors.New(ErrMsgBattleNotFound)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
