package domain

import "fmt"

// Side identifies one of the two armies in a battle
type Side int

const (
	Army1 Side = 1
	Army2 Side = 2
)

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == Army1 {
		return Army2
	}
	return Army1
}

func (s Side) String() string {
	return fmt.Sprintf("army%d", int(s))
}

// Outcome is the result code of a resolved round
type Outcome int

const (
	OutcomeContinue  Outcome = -1
	OutcomeDraw      Outcome = 0
	OutcomeArmy1Wins Outcome = 1
	OutcomeArmy2Wins Outcome = 2
)

// IsTerminal reports whether the battle is decided. Terminal outcomes are absorbing.
func (o Outcome) IsTerminal() bool {
	return o == OutcomeDraw || o == OutcomeArmy1Wins || o == OutcomeArmy2Wins
}

// Winner returns the winning side, false for draws and undecided rounds
func (o Outcome) Winner() (Side, bool) {
	switch o {
	case OutcomeArmy1Wins:
		return Army1, true
	case OutcomeArmy2Wins:
		return Army2, true
	default:
		return 0, false
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeDraw:
		return "draw"
	case OutcomeArmy1Wins:
		return "army1_wins"
	case OutcomeArmy2Wins:
		return "army2_wins"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// MarshalText encodes the outcome by name
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes an outcome name produced by MarshalText
func (o *Outcome) UnmarshalText(text []byte) error {
	for _, candidate := range []Outcome{OutcomeContinue, OutcomeDraw, OutcomeArmy1Wins, OutcomeArmy2Wins} {
		if candidate.String() == string(text) {
			*o = candidate
			return nil
		}
	}
	return fmt.Errorf("%w: unknown outcome %q", ErrInvalidInput, text)
}

// DamageRecord describes one hit landed during an attack phase
type DamageRecord struct {
	Side             Side   `json:"side"`
	Attacker         string `json:"attacker"`
	AttackerPosition int    `json:"attacker_position"`
	Item             string `json:"item"`
	ItemSlot         int    `json:"item_slot"` // 1 or 2
	Defender         string `json:"defender"`
	DefenderPosition int    `json:"defender_position"`
	Damage           int    `json:"damage"`
	DefenderHP       int    `json:"defender_hp"` // after the hit
}

// Casualty is a unit removed from its army at the end of a round
type Casualty struct {
	Side     Side   `json:"side"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}
