package domain

// Army and unit limits
const (
	// MaxArmySize is the number of units an army can hold
	MaxArmySize = 5

	// MinArmySize is the smallest army that can enter a battle
	MinArmySize = 1

	// MaxUnitItems is the number of item slots a unit exposes
	MaxUnitItems = 2

	// MaxSlots is the combined slot cost a unit may carry
	MaxSlots = 2

	// StartingHP is the hit points every unit is created with
	StartingHP = 100

	// MaxNameLength bounds unit and item names (in characters)
	MaxNameLength = 100
)

// Item slot numbers, as reported in damage records
const (
	ItemSlotFirst  = 1
	ItemSlotSecond = 2
)
