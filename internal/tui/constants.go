package tui

// Screen text
const (
	TitleMenu        = "BATTLE ARENA"
	TitleBattlefield = "BATTLEFIELD"

	MenuCreateArmy1 = "1. Create Army 1"
	MenuCreateArmy2 = "2. Create Army 2"
	MenuStartBattle = "3. Start Battle"
	MenuExit        = "4. Exit"
	PromptChoice    = "Select an option: "

	PromptUnitName    = "Enter unit name (or leave empty to finish): "
	PromptFirstItem   = "Select first item for %s:"
	PromptSecondItem  = "Select second item for %s:"
	PromptItemNumber  = "Enter item number: "
	PromptItemOrNone  = "Enter item number (or 0 for none): "
	PromptNextRound   = "Round %d: Press Enter for next round..."
	PromptExit        = "Press Enter to exit..."
	ResultDraw        = "Draw!"
	ResultArmy1Wins   = "Army 1 wins!"
	ResultArmy2Wins   = "Army 2 wins!"
	ResultUndecided   = "No winner after %d rounds."
	ColumnHeaderLeft  = "Army 1"
	ColumnHeaderRight = "Army 2"
)

// Feedback messages
const (
	MsgInvalidChoice    = "Invalid choice. Try again."
	MsgInvalidSelection = "Invalid selection. Try again."
	MsgInvalidName      = "Invalid name: %v"
	MsgSlotsExceeded    = "%s cannot carry both items (%v). Enter the unit again."
	MsgArmyFull         = "Army %d is full."
	MsgArmyCreated      = "Army %d has %d unit(s)."
	MsgArmiesRequired   = "Both armies need at least one unit before the battle can start."
	MsgHit              = "[Army %d] %s (%s) hits %s for %d damage (HP: %d)"
	MsgFallen           = "[Army %d] %s has fallen"
)

// Layout
const (
	columnWidth = 25
	marginLeft  = "     "
)

// Log messages
const (
	LogMsgArmyCreated   = "Army created"
	LogMsgUnitRejected  = "Unit rejected"
	LogMsgBattleStopped = "Battle stopped early"
)
